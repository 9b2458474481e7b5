package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterviewScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
	createBooking "github.com/m04kA/SMC-InterviewScheduler/internal/usecase/create_booking"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createBooking.Response)
	return resp, args.Error(1)
}

func post(h *Handler, body string, session *middleware.Session) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	if session != nil {
		r = r.WithContext(middleware.WithSession(r.Context(), session))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func bookingBody(interviewerID, tenantID string) string {
	body := map[string]string{
		"interviewerId":    interviewerID,
		"intervieweeName":  "Bob",
		"intervieweeEmail": "bob@example.com",
		"startTime":        "2026-03-02T10:00:00Z",
		"endTime":          "2026-03-02T10:30:00Z",
	}
	if tenantID != "" {
		body["tenantId"] = tenantID
	}
	raw, _ := json.Marshal(body)
	return string(raw)
}

func TestHandle_Created(t *testing.T) {
	interviewerID := uuid.New()
	tenantID := uuid.New()
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	intervieweeID := uuid.New()

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.InterviewerID == interviewerID && req.TenantID == tenantID &&
			req.StartTime.Equal(start) && req.EndTime.Equal(start.Add(30*time.Minute)) &&
			req.IntervieweeEmail == "bob@example.com"
	})).Return(&createBooking.Response{
		Booking: &domain.Booking{
			ID:               uuid.New(),
			InterviewerID:    interviewerID,
			TenantID:         tenantID,
			Title:            "Interview with Bob",
			IntervieweeName:  "Bob",
			IntervieweeEmail: "bob@example.com",
			StartTime:        start,
			EndTime:          start.Add(30 * time.Minute),
			Status:           domain.StatusPending,
		},
		Interviewee: &createBooking.IntervieweeState{
			ID:           intervieweeID,
			Status:       domain.IntervieweeScheduled,
			CurrentRound: 1,
			Note:         "Interview scheduled",
		},
	}, nil)

	rec := post(NewHandler(uc, time.UTC, logger.NewNop()), bookingBody(interviewerID.String(), tenantID.String()), nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Booking)
	assert.Equal(t, "Interview with Bob", body.Booking.Title)
	assert.Equal(t, "PENDING", body.Booking.Status)
	assert.Equal(t, "Monday, March 2, 2026", body.Booking.Date)
	assert.Equal(t, "10:00 AM - 10:30 AM", body.Booking.Time)
	require.NotNil(t, body.Interviewee)
	assert.Equal(t, "SCHEDULED", body.Interviewee.Status)
	assert.Equal(t, 1, body.Interviewee.CurrentRound)
	uc.AssertExpectations(t)
}

func TestHandle_TenantFromSession(t *testing.T) {
	interviewerID := uuid.New()
	sessionTenant := uuid.New()

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.TenantID == sessionTenant
	})).Return(&createBooking.Response{Booking: &domain.Booking{ID: uuid.New()}}, nil)

	session := &middleware.Session{UserID: uuid.New(), TenantID: sessionTenant, Role: domain.RoleHR}
	rec := post(NewHandler(uc, time.UTC, logger.NewNop()), bookingBody(interviewerID.String(), ""), session)

	assert.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandle_BodyTenantOverridesSession(t *testing.T) {
	bodyTenant := uuid.New()

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.TenantID == bodyTenant
	})).Return(&createBooking.Response{Booking: &domain.Booking{ID: uuid.New()}}, nil)

	session := &middleware.Session{UserID: uuid.New(), TenantID: uuid.New()}
	rec := post(NewHandler(uc, time.UTC, logger.NewNop()), bookingBody(uuid.New().String(), bodyTenant.String()), session)

	assert.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandle_BadRequest(t *testing.T) {
	interviewerID := uuid.New().String()
	tenantID := uuid.New().String()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"interviewerId":`},
		{"unknown field", `{"interviewerId":"` + interviewerID + `","foo":1}`},
		{"missing tenant without session", bookingBody(interviewerID, "")},
		{"missing times", `{"interviewerId":"` + interviewerID + `","tenantId":"` + tenantID + `"}`},
		{"invalid interviewer id", bookingBody("42", tenantID)},
		{"invalid start time", strings.Replace(bookingBody(interviewerID, tenantID), "2026-03-02T10:00:00Z", "10am", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			rec := post(NewHandler(uc, time.UTC, logger.NewNop()), tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"interviewer not found", createBooking.ErrInterviewerNotFound, http.StatusNotFound},
		{"interviewee not found", createBooking.ErrIntervieweeNotFound, http.StatusNotFound},
		{"capacity", createBooking.ErrCapacityExceeded, http.StatusConflict},
		{"conflict", createBooking.ErrSlotConflict, http.StatusConflict},
		{"day busy", createBooking.ErrDayBusy, http.StatusConflict},
		{"invalid state", createBooking.ErrInvalidIntervieweeState, http.StatusUnprocessableEntity},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := post(NewHandler(uc, time.UTC, logger.NewNop()), bookingBody(uuid.New().String(), uuid.New().String()), nil)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
