package get_booking

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
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/bookings"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/bookings/models"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id uuid.UUID, req *models.AccessRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

func get(h *Handler, bookingID string, session *middleware.Session) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/bookings/"+bookingID, nil)
	r = mux.SetURLVars(r, map[string]string{"bookingId": bookingID})
	if session != nil {
		r = r.WithContext(middleware.WithSession(r.Context(), session))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestHandle_Success(t *testing.T) {
	session := &middleware.Session{UserID: uuid.New(), TenantID: uuid.New()}
	bookingID := uuid.New()

	svc := &mockService{}
	svc.On("GetByID", mock.Anything, bookingID, &models.AccessRequest{UserID: session.UserID, TenantID: session.TenantID}).
		Return(&models.BookingResponse{ID: bookingID, Status: "PENDING"}, nil)

	rec := get(NewHandler(svc, logger.NewNop()), bookingID.String(), session)

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, bookingID, body.ID)
	svc.AssertExpectations(t)
}

func TestHandle_BadRequests(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.NewNop())

	rec := get(h, "12", &middleware.Session{UserID: uuid.New()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(h, uuid.New().String(), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_ServiceErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"denied", bookings.ErrAccessDenied, http.StatusForbidden},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("GetByID", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := get(NewHandler(svc, logger.NewNop()), uuid.New().String(), &middleware.Session{UserID: uuid.New()})

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
