package interviewees

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
	intervieweeRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/interviewee"
	interviewerRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/interviewer"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/interviewees/models"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/logger"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/ptr"
)

var (
	tenantID = uuid.MustParse("0b7e1f8e-43c4-4f5b-8a6e-1f0d2c3b4a02")
	now      = time.Date(2026, time.March, 2, 16, 0, 0, 0, time.UTC)
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeStore struct {
	interviewees map[uuid.UUID]*domain.Interviewee
	users        map[uuid.UUID]*domain.Interviewer
	notes        []*domain.IntervieweeNote
	noteErr      error
}

func newStore() *fakeStore {
	return &fakeStore{
		interviewees: make(map[uuid.UUID]*domain.Interviewee),
		users:        make(map[uuid.UUID]*domain.Interviewer),
	}
}

func (s *fakeStore) addUser(role domain.UserRole) uuid.UUID {
	id := uuid.New()
	s.users[id] = &domain.Interviewer{ID: id, TenantID: tenantID, Role: role}
	return id
}

func (s *fakeStore) addInterviewee(status domain.IntervieweeStatus, round int) uuid.UUID {
	id := uuid.New()
	s.interviewees[id] = &domain.Interviewee{ID: id, TenantID: tenantID, Name: "Bob", Status: status, CurrentRound: round}
	return id
}

func (s *fakeStore) GetByID(_ context.Context, tenant, id uuid.UUID) (*domain.Interviewee, error) {
	i, ok := s.interviewees[id]
	if !ok || i.TenantID != tenant {
		return nil, intervieweeRepo.ErrIntervieweeNotFound
	}
	copied := *i
	return &copied, nil
}

func (s *fakeStore) UpdateStatus(_ context.Context, i *domain.Interviewee) error {
	copied := *i
	s.interviewees[i.ID] = &copied
	return nil
}

func (s *fakeStore) AddNote(_ context.Context, n *domain.IntervieweeNote) error {
	if s.noteErr != nil {
		return s.noteErr
	}
	s.notes = append(s.notes, n)
	return nil
}

func (s *fakeStore) ListNotes(_ context.Context, _, intervieweeID uuid.UUID) ([]*domain.IntervieweeNote, error) {
	result := make([]*domain.IntervieweeNote, 0)
	for i := len(s.notes) - 1; i >= 0; i-- {
		if s.notes[i].IntervieweeID == intervieweeID {
			result = append(result, s.notes[i])
		}
	}
	return result, nil
}

func (s *fakeStore) GetInTenant(_ context.Context, userID, tenant uuid.UUID) (*domain.Interviewer, error) {
	u, ok := s.users[userID]
	if !ok || u.TenantID != tenant {
		return nil, interviewerRepo.ErrInterviewerNotFound
	}
	return u, nil
}

// fakeTxManager откатывает изменения кандидатов при ошибке
type fakeTxManager struct{ store *fakeStore }

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	saved := make(map[uuid.UUID]*domain.Interviewee, len(m.store.interviewees))
	for id, i := range m.store.interviewees {
		copied := *i
		saved[id] = &copied
	}
	if err := fn(ctx); err != nil {
		m.store.interviewees = saved
		return err
	}
	return nil
}

func newService(store *fakeStore) *Service {
	svc := NewService(store, store, &fakeTxManager{store: store}, logger.NewNop())
	svc.timeProvider = fixedClock{now: now}
	return svc
}

func TestChangeStatus(t *testing.T) {
	store := newStore()
	hr := store.addUser(domain.RoleHR)
	candidate := store.addInterviewee(domain.IntervieweeContacted, 0)
	svc := newService(store)

	resp, err := svc.ChangeStatus(context.Background(), &models.ChangeStatusRequest{
		UserID: hr, TenantID: tenantID, IntervieweeID: candidate, Status: "in_progress",
	})

	require.NoError(t, err)
	assert.Equal(t, "CONTACTED", resp.PreviousStatus)
	assert.Equal(t, "IN_PROGRESS", resp.Interviewee.Status)
	assert.Equal(t, 1, resp.Interviewee.CurrentRound)
	assert.Equal(t, "[SYSTEM] Status changed from CONTACTED to IN_PROGRESS", resp.Note.Content)
	assert.True(t, resp.Note.IsSystem)
	assert.Equal(t, domain.IntervieweeInProgress, store.interviewees[candidate].Status)
}

func TestChangeStatus_UserNote(t *testing.T) {
	store := newStore()
	interviewer := store.addUser(domain.RoleInterviewer)
	candidate := store.addInterviewee(domain.IntervieweeNew, 0)
	svc := newService(store)

	resp, err := svc.ChangeStatus(context.Background(), &models.ChangeStatusRequest{
		UserID: interviewer, TenantID: tenantID, IntervieweeID: candidate,
		Status: "CONTACTED", Note: ptr.Ptr("Reached by phone"),
	})

	require.NoError(t, err)
	assert.False(t, resp.Note.IsSystem)
	assert.Equal(t, "Reached by phone", resp.Note.Content)
	require.NotNil(t, resp.Note.AuthorID)
	assert.Equal(t, interviewer, *resp.Note.AuthorID)
}

func TestChangeStatus_Rejections(t *testing.T) {
	store := newStore()
	hr := store.addUser(domain.RoleHR)
	plain := store.addUser(domain.RoleUser)
	candidate := store.addInterviewee(domain.IntervieweeScheduled, 0)
	svc := newService(store)

	_, err := svc.ChangeStatus(context.Background(), &models.ChangeStatusRequest{
		UserID: plain, TenantID: tenantID, IntervieweeID: candidate, Status: "CONTACTED",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.ChangeStatus(context.Background(), &models.ChangeStatusRequest{
		UserID: hr, TenantID: tenantID, IntervieweeID: candidate, Status: "HIRED",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ChangeStatus(context.Background(), &models.ChangeStatusRequest{
		UserID: hr, TenantID: tenantID, IntervieweeID: candidate, Status: "SCHEDULED",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.ChangeStatus(context.Background(), &models.ChangeStatusRequest{
		UserID: hr, TenantID: tenantID, IntervieweeID: uuid.New(), Status: "CONTACTED",
	})
	assert.ErrorIs(t, err, ErrIntervieweeNotFound)

	assert.Empty(t, store.notes)
}

func TestChangeStatus_RollsBack(t *testing.T) {
	store := newStore()
	hr := store.addUser(domain.RoleHR)
	candidate := store.addInterviewee(domain.IntervieweeNew, 0)
	store.noteErr = errors.New("disk full")
	svc := newService(store)

	_, err := svc.ChangeStatus(context.Background(), &models.ChangeStatusRequest{
		UserID: hr, TenantID: tenantID, IntervieweeID: candidate, Status: "CONTACTED",
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, domain.IntervieweeNew, store.interviewees[candidate].Status)
}

func TestAddNote_Roles(t *testing.T) {
	store := newStore()
	admin := store.addUser(domain.RoleAdmin)
	interviewer := store.addUser(domain.RoleInterviewer)
	candidate := store.addInterviewee(domain.IntervieweeNew, 0)
	svc := newService(store)

	resp, err := svc.AddNote(context.Background(), &models.AddNoteRequest{
		UserID: admin, TenantID: tenantID, IntervieweeID: candidate, Content: " Good culture fit ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Good culture fit", resp.Content)
	assert.Equal(t, now, resp.CreatedAt)

	_, err = svc.AddNote(context.Background(), &models.AddNoteRequest{
		UserID: interviewer, TenantID: tenantID, IntervieweeID: candidate, Content: "note",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.AddNote(context.Background(), &models.AddNoteRequest{
		UserID: admin, TenantID: tenantID, IntervieweeID: candidate, Content: "   ",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddNote(context.Background(), &models.AddNoteRequest{
		UserID: admin, TenantID: uuid.New(), IntervieweeID: candidate, Content: "note",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	assert.Len(t, store.notes, 1)
}

func TestListNotes(t *testing.T) {
	store := newStore()
	interviewer := store.addUser(domain.RoleInterviewer)
	admin := store.addUser(domain.RoleAdmin)
	candidate := store.addInterviewee(domain.IntervieweeNew, 0)
	svc := newService(store)

	for _, content := range []string{"first", "second"} {
		_, err := svc.AddNote(context.Background(), &models.AddNoteRequest{
			UserID: admin, TenantID: tenantID, IntervieweeID: candidate, Content: content,
		})
		require.NoError(t, err)
	}

	resp, err := svc.ListNotes(context.Background(), interviewer, tenantID, candidate)

	require.NoError(t, err)
	require.Len(t, resp.Notes, 2)
	assert.Equal(t, "second", resp.Notes[0].Content)

	_, err = svc.ListNotes(context.Background(), interviewer, tenantID, uuid.New())
	assert.ErrorIs(t, err, ErrIntervieweeNotFound)
}
