package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("bookings").
		Where(squirrel.Eq{"tenant_id": "t"}).
		Where(squirrel.Eq{"interviewer_id": "u"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM bookings WHERE tenant_id = $1 AND interviewer_id = $2", query)
	assert.Equal(t, []interface{}{"t", "u"}, args)
}

func TestInsert_UsesDollarPlaceholders(t *testing.T) {
	query, _, err := Insert("notes").Columns("a", "b").Values(1, 2).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO notes (a,b) VALUES ($1,$2)", query)
}
