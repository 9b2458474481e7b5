package settings

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
	interviewerRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/interviewer"
	settingsRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/settings"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/settings/models"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/logger"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/ptr"
)

var (
	userID   = uuid.MustParse("6f1c1d43-2d7a-4c1b-9a55-3b8f2f0c9a01")
	tenantID = uuid.MustParse("0b7e1f8e-43c4-4f5b-8a6e-1f0d2c3b4a02")
)

type fakeStore struct {
	saved   *domain.SchedulingSettings
	upserts int
}

func (s *fakeStore) Get(context.Context, uuid.UUID, uuid.UUID) (*domain.SchedulingSettings, error) {
	if s.saved == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	copied := *s.saved
	return &copied, nil
}

func (s *fakeStore) Upsert(_ context.Context, settings *domain.SchedulingSettings) (*domain.SchedulingSettings, error) {
	s.upserts++
	copied := *settings
	s.saved = &copied
	return &copied, nil
}

func (s *fakeStore) GetInTenant(_ context.Context, user, tenant uuid.UUID) (*domain.Interviewer, error) {
	if user != userID || tenant != tenantID {
		return nil, interviewerRepo.ErrInterviewerNotFound
	}
	return &domain.Interviewer{ID: user, TenantID: tenant, Role: domain.RoleInterviewer}, nil
}

func TestGet_Defaults(t *testing.T) {
	svc := NewService(&fakeStore{}, &fakeStore{}, logger.NewNop())

	resp, err := svc.Get(context.Background(), userID, tenantID)

	require.NoError(t, err)
	assert.True(t, resp.IsDefault)
	assert.Equal(t, 30, resp.MeetingDurationMinutes)
	assert.Equal(t, 15, resp.BufferMinutes)
	assert.Equal(t, 3, resp.MaxSchedulesPerDay)
	assert.Equal(t, 30, resp.AdvanceBookingDays)
	assert.Nil(t, resp.CreatedAt)
}

func TestUpdate_Partial(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, store, logger.NewNop())

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		UserID:             userID,
		TenantID:           tenantID,
		MaxSchedulesPerDay: ptr.Ptr(5),
	})

	require.NoError(t, err)
	assert.False(t, resp.IsDefault)
	assert.Equal(t, 5, resp.MaxSchedulesPerDay)
	assert.Equal(t, 30, resp.MeetingDurationMinutes)

	resp, err = svc.Update(context.Background(), &models.UpdateSettingsRequest{
		UserID:                 userID,
		TenantID:               tenantID,
		MeetingDurationMinutes: ptr.Ptr(45),
	})

	require.NoError(t, err)
	assert.Equal(t, 45, resp.MeetingDurationMinutes)
	assert.Equal(t, 5, resp.MaxSchedulesPerDay)
	assert.Equal(t, 2, store.upserts)
}

func TestUpdate_Invalid(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, store, logger.NewNop())

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		UserID:                 userID,
		TenantID:               tenantID,
		MeetingDurationMinutes: ptr.Ptr(0),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, store.upserts)
}

func TestUpdate_NotMember(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, store, logger.NewNop())

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{UserID: userID, TenantID: uuid.New()})

	assert.ErrorIs(t, err, ErrAccessDenied)
}
