package list_notes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterviewScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/interviewees"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/interviewees/models"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListNotes(ctx context.Context, userID, tenantID, intervieweeID uuid.UUID) (*models.NoteListResponse, error) {
	args := m.Called(ctx, userID, tenantID, intervieweeID)
	resp, _ := args.Get(0).(*models.NoteListResponse)
	return resp, args.Error(1)
}

func get(h *Handler, intervieweeID string, session *middleware.Session) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/interviewees/"+intervieweeID+"/notes", nil)
	r = mux.SetURLVars(r, map[string]string{"intervieweeId": intervieweeID})
	if session != nil {
		r = r.WithContext(middleware.WithSession(r.Context(), session))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestHandle_Success(t *testing.T) {
	session := &middleware.Session{UserID: uuid.New(), TenantID: uuid.New()}
	intervieweeID := uuid.New()

	svc := &mockService{}
	svc.On("ListNotes", mock.Anything, session.UserID, session.TenantID, intervieweeID).Return(&models.NoteListResponse{
		Notes: []models.NoteResponse{
			{ID: uuid.New(), Content: "second"},
			{ID: uuid.New(), Content: "first"},
		},
	}, nil)

	rec := get(NewHandler(svc, logger.NewNop()), intervieweeID.String(), session)

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.NoteListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Notes, 2)
	assert.Equal(t, "second", body.Notes[0].Content)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())
	assert.Equal(t, http.StatusBadRequest, get(h, "nope", &middleware.Session{UserID: uuid.New()}).Code)
	assert.Equal(t, http.StatusUnauthorized, get(h, uuid.New().String(), nil).Code)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", interviewees.ErrIntervieweeNotFound, http.StatusNotFound},
		{"denied", interviewees.ErrAccessDenied, http.StatusForbidden},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("ListNotes", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := get(NewHandler(svc, logger.NewNop()), uuid.New().String(), &middleware.Session{UserID: uuid.New()})

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
