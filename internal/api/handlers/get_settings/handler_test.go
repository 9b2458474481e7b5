package get_settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterviewScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/settings"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/settings/models"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Get(ctx context.Context, userID, tenantID uuid.UUID) (*models.SettingsResponse, error) {
	args := m.Called(ctx, userID, tenantID)
	resp, _ := args.Get(0).(*models.SettingsResponse)
	return resp, args.Error(1)
}

func get(h *Handler, session *middleware.Session) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/settings", nil)
	if session != nil {
		r = r.WithContext(middleware.WithSession(r.Context(), session))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestHandle_Defaults(t *testing.T) {
	session := &middleware.Session{UserID: uuid.New(), TenantID: uuid.New()}

	svc := &mockService{}
	svc.On("Get", mock.Anything, session.UserID, session.TenantID).Return(&models.SettingsResponse{
		UserID:                 session.UserID,
		TenantID:               session.TenantID,
		MeetingDurationMinutes: 30,
		MaxSchedulesPerDay:     8,
		AdvanceBookingDays:     30,
		IsDefault:              true,
	}, nil)

	rec := get(NewHandler(svc, logger.NewNop()), session)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(30), body["meetingDuration"])
	assert.Equal(t, true, body["isDefault"])
	assert.NotContains(t, body, "createdAt")
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, get(NewHandler(&mockService{}, logger.NewNop()), nil).Code)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"denied", settings.ErrAccessDenied, http.StatusForbidden},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := get(NewHandler(svc, logger.NewNop()), &middleware.Session{UserID: uuid.New(), TenantID: uuid.New()})

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
