package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterviewScheduler/pkg/dbmetrics"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs  []*fakeTx
	opts []*sql.TxOptions
	next *fakeTx
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx := b.next
	if tx == nil {
		tx = &fakeTx{}
	}
	b.next = nil
	b.txs = append(b.txs, tx)
	b.opts = append(b.opts, opts)
	return tx, nil
}

func TestDoSerializable_Commits(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	require.Len(t, db.txs, 1)
	assert.True(t, db.txs[0].committed)
	assert.Equal(t, sql.LevelSerializable, db.opts[0].Isolation)
}

func TestDoSerializable_RollsBackOnError(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)
	boom := errors.New("boom")

	err := m.DoSerializable(context.Background(), func(context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.False(t, db.txs[0].committed)
	assert.True(t, db.txs[0].rolledBack)
}

func TestDo_NestedReusesOuterTransaction(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.DoSerializable(ctx, func(context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Len(t, db.txs, 1)
}

func TestDoSerializable_MapsSerializationFailure(t *testing.T) {
	t.Run("from callback", func(t *testing.T) {
		m := NewTransactionManager(&fakeBeginner{})

		err := m.DoSerializable(context.Background(), func(context.Context) error {
			return fmt.Errorf("repository: %w", &pq.Error{Code: "40001"})
		})

		assert.ErrorIs(t, err, ErrSerializationFailure)
	})

	t.Run("from commit", func(t *testing.T) {
		db := &fakeBeginner{next: &fakeTx{commitErr: &pq.Error{Code: "40001"}}}
		m := NewTransactionManager(db)

		err := m.DoSerializable(context.Background(), func(context.Context) error { return nil })

		assert.ErrorIs(t, err, ErrSerializationFailure)
	})

	t.Run("other commit error", func(t *testing.T) {
		db := &fakeBeginner{next: &fakeTx{commitErr: errors.New("connection reset")}}
		m := NewTransactionManager(db)

		err := m.DoSerializable(context.Background(), func(context.Context) error { return nil })

		assert.ErrorIs(t, err, ErrCommitTx)
		assert.False(t, IsSerializationFailure(err))
	})
}
