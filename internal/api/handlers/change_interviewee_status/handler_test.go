package change_interviewee_status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-InterviewScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/interviewees"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/interviewees/models"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ChangeStatus(ctx context.Context, req *models.ChangeStatusRequest) (*models.ChangeStatusResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.ChangeStatusResponse)
	return resp, args.Error(1)
}

func patch(h *Handler, intervieweeID, body string, session *middleware.Session) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPatch, "/interviewees/"+intervieweeID+"/status", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"intervieweeId": intervieweeID})
	if session != nil {
		r = r.WithContext(middleware.WithSession(r.Context(), session))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestHandle_Changed(t *testing.T) {
	session := &middleware.Session{UserID: uuid.New(), TenantID: uuid.New()}
	intervieweeID := uuid.New()

	svc := &mockService{}
	svc.On("ChangeStatus", mock.Anything, mock.MatchedBy(func(req *models.ChangeStatusRequest) bool {
		return req.IntervieweeID == intervieweeID &&
			req.UserID == session.UserID &&
			req.TenantID == session.TenantID &&
			req.Status == "CONTACTED" &&
			req.Note != nil && *req.Note == "Called by phone"
	})).Return(&models.ChangeStatusResponse{
		Interviewee:    models.IntervieweeResponse{ID: intervieweeID, Status: "CONTACTED"},
		PreviousStatus: "NEW",
	}, nil)

	rec := patch(NewHandler(svc, logger.NewNop()), intervieweeID.String(),
		`{"status":"CONTACTED","note":"Called by phone"}`, session)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"previousStatus":"NEW"`)
	svc.AssertExpectations(t)
}

func TestHandle_BadRequests(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())
	session := &middleware.Session{UserID: uuid.New(), TenantID: uuid.New()}

	assert.Equal(t, http.StatusBadRequest, patch(h, "1", `{"status":"NEW"}`, session).Code)
	assert.Equal(t, http.StatusUnauthorized, patch(h, uuid.New().String(), `{"status":"NEW"}`, nil).Code)
	assert.Equal(t, http.StatusBadRequest, patch(h, uuid.New().String(), `{"status":1}`, session).Code)
	svc.AssertNotCalled(t, "ChangeStatus", mock.Anything, mock.Anything)
}

func TestHandle_ServiceErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid", interviewees.ErrInvalidInput, http.StatusBadRequest},
		{"not found", interviewees.ErrIntervieweeNotFound, http.StatusNotFound},
		{"denied", interviewees.ErrAccessDenied, http.StatusForbidden},
		{"transition", interviewees.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("ChangeStatus", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := patch(NewHandler(svc, logger.NewNop()), uuid.New().String(), `{"status":"REJECTED"}`,
				&middleware.Session{UserID: uuid.New(), TenantID: uuid.New()})

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
