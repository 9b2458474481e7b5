package interviewees

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
	intervieweeRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/interviewee"
	interviewerRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/interviewer"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/interviewees/models"
)

// Service сервис для работы с кандидатами и их заметками
type Service struct {
	intervieweeRepo IntervieweeRepository
	interviewerRepo InterviewerRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса кандидатов
func NewService(
	intervieweeRepo IntervieweeRepository,
	interviewerRepo InterviewerRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		intervieweeRepo: intervieweeRepo,
		interviewerRepo: interviewerRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// ChangeStatus вручную меняет статус кандидата и добавляет заметку
// Доступно ролям ADMIN, HR и INTERVIEWER
func (s *Service) ChangeStatus(ctx context.Context, req *models.ChangeStatusRequest) (*models.ChangeStatusResponse, error) {
	s.logger.Info("ChangeStatus: interviewee=%s -> %s by user=%s", req.IntervieweeID, req.Status, req.UserID)

	// 1. Валидация входных данных
	status := domain.IntervieweeStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !status.IsValid() {
		s.logger.Warn("ChangeStatus: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return nil, fmt.Errorf("%w: note must not exceed %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	// 2. Проверяем роль пользователя
	user, err := s.getMember(ctx, "ChangeStatus", req.UserID, req.TenantID)
	if err != nil {
		return nil, err
	}
	if !user.Role.CanChangeStatus() {
		s.logger.Warn("ChangeStatus: user=%s with role %s cannot change status", req.UserID, user.Role)
		return nil, ErrAccessDenied
	}

	now := s.timeProvider.Now()
	var resp *models.ChangeStatusResponse

	// 3. Смена статуса и заметка в одной транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		interviewee, err := s.getInterviewee(txCtx, "ChangeStatus", req.TenantID, req.IntervieweeID)
		if err != nil {
			return err
		}

		transition, err := interviewee.ChangeStatus(status)
		if err != nil {
			s.logger.Warn("ChangeStatus: interviewee=%s cannot move %s -> %s", interviewee.ID, interviewee.Status, status)
			return ErrInvalidTransition
		}

		if err := s.intervieweeRepo.UpdateStatus(txCtx, interviewee); err != nil {
			s.logger.Error("ChangeStatus: failed to update interviewee=%s: %v", interviewee.ID, err)
			return fmt.Errorf("%w: failed to update interviewee: %v", ErrInternal, err)
		}

		note := domain.NewSystemNote(interviewee, transition.Note, now)
		if req.Note != nil && strings.TrimSpace(*req.Note) != "" {
			note = domain.NewUserNote(interviewee, req.UserID, strings.TrimSpace(*req.Note), now)
		}
		if err := s.intervieweeRepo.AddNote(txCtx, note); err != nil {
			s.logger.Error("ChangeStatus: failed to add note for interviewee=%s: %v", interviewee.ID, err)
			return fmt.Errorf("%w: failed to add note: %v", ErrInternal, err)
		}

		resp = &models.ChangeStatusResponse{
			Interviewee:    models.FromDomainInterviewee(interviewee),
			PreviousStatus: string(transition.From),
			Note:           models.FromDomainNote(note),
		}
		return nil
	})
	if err != nil {
		return nil, s.mapTxError("ChangeStatus", err)
	}

	s.logger.Info("ChangeStatus: interviewee=%s moved %s -> %s", req.IntervieweeID, resp.PreviousStatus, resp.Interviewee.Status)
	return resp, nil
}

// AddNote добавляет заметку пользователя к кандидату
// Доступно только ролям ADMIN и HR
func (s *Service) AddNote(ctx context.Context, req *models.AddNoteRequest) (*models.NoteResponse, error) {
	s.logger.Info("AddNote: adding note to interviewee=%s by user=%s", req.IntervieweeID, req.UserID)

	// 1. Валидация входных данных
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: note content is required", ErrInvalidInput)
	}
	if len(content) > domain.MaxNoteLength {
		return nil, fmt.Errorf("%w: note must not exceed %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	// 2. Проверяем роль пользователя
	user, err := s.getMember(ctx, "AddNote", req.UserID, req.TenantID)
	if err != nil {
		return nil, err
	}
	if !user.Role.CanManageCandidates() {
		s.logger.Warn("AddNote: user=%s with role %s cannot add notes", req.UserID, user.Role)
		return nil, ErrAccessDenied
	}

	// 3. Проверяем, что кандидат существует в тенанте
	interviewee, err := s.getInterviewee(ctx, "AddNote", req.TenantID, req.IntervieweeID)
	if err != nil {
		return nil, err
	}

	// 4. Сохраняем заметку
	note := domain.NewUserNote(interviewee, req.UserID, content, s.timeProvider.Now())
	if err := s.intervieweeRepo.AddNote(ctx, note); err != nil {
		s.logger.Error("AddNote: repository error for interviewee=%s: %v", interviewee.ID, err)
		return nil, fmt.Errorf("%w: AddNote - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddNote: successfully added note id=%s", note.ID)
	resp := models.FromDomainNote(note)
	return &resp, nil
}

// ListNotes получает заметки кандидата (новые первыми)
// Доступно любому участнику тенанта
func (s *Service) ListNotes(ctx context.Context, userID, tenantID, intervieweeID uuid.UUID) (*models.NoteListResponse, error) {
	s.logger.Info("ListNotes: fetching notes of interviewee=%s for user=%s", intervieweeID, userID)

	if _, err := s.getMember(ctx, "ListNotes", userID, tenantID); err != nil {
		return nil, err
	}

	if _, err := s.getInterviewee(ctx, "ListNotes", tenantID, intervieweeID); err != nil {
		return nil, err
	}

	notes, err := s.intervieweeRepo.ListNotes(ctx, tenantID, intervieweeID)
	if err != nil {
		s.logger.Error("ListNotes: repository error for interviewee=%s: %v", intervieweeID, err)
		return nil, fmt.Errorf("%w: ListNotes - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListNotes: successfully fetched %d notes for interviewee=%s", len(notes), intervieweeID)
	return models.FromDomainNoteList(notes), nil
}

// Вспомогательные методы

func (s *Service) getMember(ctx context.Context, method string, userID, tenantID uuid.UUID) (*domain.Interviewer, error) {
	user, err := s.interviewerRepo.GetInTenant(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, interviewerRepo.ErrInterviewerNotFound) {
			s.logger.Warn("%s: user=%s is not a member of tenant=%s", method, userID, tenantID)
			return nil, ErrAccessDenied
		}
		s.logger.Error("%s: failed to get user=%s: %v", method, userID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	return user, nil
}

func (s *Service) getInterviewee(ctx context.Context, method string, tenantID, id uuid.UUID) (*domain.Interviewee, error) {
	interviewee, err := s.intervieweeRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, intervieweeRepo.ErrIntervieweeNotFound) {
			s.logger.Warn("%s: interviewee=%s not found in tenant=%s", method, id, tenantID)
			return nil, ErrIntervieweeNotFound
		}
		s.logger.Error("%s: failed to get interviewee=%s: %v", method, id, err)
		return nil, fmt.Errorf("%w: failed to get interviewee: %v", ErrInternal, err)
	}
	return interviewee, nil
}

func (s *Service) mapTxError(method string, err error) error {
	switch {
	case errors.Is(err, ErrIntervieweeNotFound),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrInternal):
		return err
	default:
		s.logger.Error("%s: transaction failed: %v", method, err)
		return fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}
}
