package list_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterviewScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/bookings"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/bookings/models"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.BookingListResponse)
	return resp, args.Error(1)
}

func get(h *Handler, target string, session *middleware.Session) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	if session != nil {
		r = r.WithContext(middleware.WithSession(r.Context(), session))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestHandle_Success(t *testing.T) {
	session := &middleware.Session{UserID: uuid.New(), TenantID: uuid.New(), Role: domain.RoleInterviewer}
	bookingID := uuid.New()

	svc := &mockService{}
	svc.On("List", mock.Anything, mock.MatchedBy(func(req *models.ListBookingsRequest) bool {
		return req.UserID == session.UserID &&
			req.TenantID == session.TenantID &&
			req.Role == models.RoleInterviewee &&
			req.From != nil && req.From.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) &&
			req.To == nil
	})).Return(&models.BookingListResponse{
		Bookings: []models.BookingResponse{{ID: bookingID}},
	}, nil)

	rec := get(NewHandler(svc, time.UTC, logger.NewNop()), "/bookings?role=interviewee&from=2026-03-01", session)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Bookings, 1)
	assert.Equal(t, bookingID, body.Bookings[0].ID)
	svc.AssertExpectations(t)
}

func TestHandle_Unauthorized(t *testing.T) {
	svc := &mockService{}
	rec := get(NewHandler(svc, time.UTC, logger.NewNop()), "/bookings", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHandle_InvalidPeriod(t *testing.T) {
	session := &middleware.Session{UserID: uuid.New(), TenantID: uuid.New()}
	svc := &mockService{}

	rec := get(NewHandler(svc, time.UTC, logger.NewNop()), "/bookings?to=yesterday", session)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ServiceErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid", bookings.ErrInvalidInput, http.StatusBadRequest},
		{"denied", bookings.ErrAccessDenied, http.StatusForbidden},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("List", mock.Anything, mock.Anything).Return(nil, tt.err)

			session := &middleware.Session{UserID: uuid.New(), TenantID: uuid.New()}
			rec := get(NewHandler(svc, time.UTC, logger.NewNop()), "/bookings", session)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
