package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-InterviewScheduler/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getAvailableSlots.Response)
	return resp, args.Error(1)
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/interviewers/{interviewerId}/available-slots", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	interviewerID := uuid.New()
	tenantID := uuid.New()
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getAvailableSlots.Request) bool {
		return req.InterviewerID == interviewerID &&
			req.TenantID == tenantID &&
			req.StartDate != nil && req.StartDate.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) &&
			req.EndDate == nil
	})).Return(&getAvailableSlots.Response{
		Interviewer: getAvailableSlots.InterviewerInfo{
			ID:                     interviewerID,
			Name:                   "Alice",
			Email:                  "alice@example.com",
			MeetingDurationMinutes: 30,
		},
		RangeStart: start,
		RangeEnd:   start.Add(24 * time.Hour),
		Slots:      []domain.Slot{domain.NewSlot(start, 30*time.Minute)},
	}, nil)

	h := NewHandler(uc, time.UTC, logger.NewNop())
	rec := serve(h, "/interviewers/"+interviewerID.String()+"/available-slots?tenantId="+tenantID.String()+"&startDate=2026-03-02")

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Alice", body.Interviewer.Name)
	assert.Equal(t, 30, body.Interviewer.MeetingDuration)
	require.Len(t, body.AvailableSlots, 1)
	assert.Equal(t, domain.NewSlot(start, 30*time.Minute).ID, body.AvailableSlots[0].ID)
	assert.True(t, start.Equal(body.AvailableSlots[0].StartTime))
	uc.AssertExpectations(t)
}

func TestHandle_BadParams(t *testing.T) {
	interviewerID := uuid.New().String()
	tenantID := uuid.New().String()

	tests := []struct {
		name   string
		target string
	}{
		{"invalid interviewer id", "/interviewers/abc/available-slots?tenantId=" + tenantID},
		{"missing tenant", "/interviewers/" + interviewerID + "/available-slots"},
		{"invalid tenant", "/interviewers/" + interviewerID + "/available-slots?tenantId=xyz"},
		{"invalid start", "/interviewers/" + interviewerID + "/available-slots?tenantId=" + tenantID + "&startDate=03/02/2026"},
		{"invalid end", "/interviewers/" + interviewerID + "/available-slots?tenantId=" + tenantID + "&endDate=soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			rec := serve(NewHandler(uc, time.UTC, logger.NewNop()), tt.target)

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
		{"not found", getAvailableSlots.ErrInterviewerNotFound, http.StatusNotFound},
		{"invalid input", getAvailableSlots.ErrInvalidInput, http.StatusBadRequest},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(NewHandler(uc, time.UTC, logger.NewNop()),
				"/interviewers/"+uuid.New().String()+"/available-slots?tenantId="+uuid.New().String())

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
