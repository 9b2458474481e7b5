package record_round_result

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
	intervieweeRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/interviewee"
	interviewerRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/interviewer"
)

// UseCase use case для фиксации результата раунда интервью
type UseCase struct {
	intervieweeRepo IntervieweeRepository
	interviewerRepo InterviewerRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	intervieweeRepo IntervieweeRepository,
	interviewerRepo InterviewerRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		intervieweeRepo: intervieweeRepo,
		interviewerRepo: interviewerRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case фиксации результата раунда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RecordRoundResult: interviewee=%s, tenant=%s, result=%s", req.IntervieweeID, req.TenantID, req.Result)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RecordRoundResult: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем роль автора в тенанте
	author, err := uc.interviewerRepo.GetInTenant(ctx, req.AuthorID, req.TenantID)
	if err != nil {
		if errors.Is(err, interviewerRepo.ErrInterviewerNotFound) {
			uc.logger.Warn("RecordRoundResult: author=%s is not a member of tenant=%s", req.AuthorID, req.TenantID)
			return nil, ErrAccessDenied
		}
		uc.logger.Error("RecordRoundResult: failed to get author=%s: %v", req.AuthorID, err)
		return nil, fmt.Errorf("%w: failed to get author: %v", ErrInternal, err)
	}
	if !author.Role.CanChangeStatus() {
		uc.logger.Warn("RecordRoundResult: author=%s with role %s cannot record results", author.ID, author.Role)
		return nil, ErrAccessDenied
	}

	now := uc.timeProvider.Now()
	var result *Response

	// 3. Переход и заметка в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем кандидата с блокировкой строки
		interviewee, err := uc.intervieweeRepo.GetByID(txCtx, req.TenantID, req.IntervieweeID)
		if err != nil {
			if errors.Is(err, intervieweeRepo.ErrIntervieweeNotFound) {
				uc.logger.Warn("RecordRoundResult: interviewee=%s not found in tenant=%s", req.IntervieweeID, req.TenantID)
				return ErrIntervieweeNotFound
			}
			uc.logger.Error("RecordRoundResult: failed to get interviewee=%s: %v", req.IntervieweeID, err)
			return fmt.Errorf("%w: failed to get interviewee: %v", ErrInternal, err)
		}

		// 3.2. Применяем результат раунда
		transition, err := interviewee.ApplyRoundResult(req.Result)
		if err != nil {
			uc.logger.Warn("RecordRoundResult: interviewee=%s has status %s", interviewee.ID, interviewee.Status)
			return ErrInvalidIntervieweeState
		}

		if err := uc.intervieweeRepo.UpdateStatus(txCtx, interviewee); err != nil {
			uc.logger.Error("RecordRoundResult: failed to update interviewee=%s: %v", interviewee.ID, err)
			return fmt.Errorf("%w: failed to update interviewee: %v", ErrInternal, err)
		}

		// 3.3. Заметка: текст пользователя заменяет системный
		note := domain.NewSystemNote(interviewee, transition.Note, now)
		if req.Note != nil && strings.TrimSpace(*req.Note) != "" {
			note = domain.NewUserNote(interviewee, req.AuthorID, strings.TrimSpace(*req.Note), now)
		}

		if err := uc.intervieweeRepo.AddNote(txCtx, note); err != nil {
			uc.logger.Error("RecordRoundResult: failed to add note for interviewee=%s: %v", interviewee.ID, err)
			return fmt.Errorf("%w: failed to add note: %v", ErrInternal, err)
		}

		result = &Response{
			IntervieweeID:  interviewee.ID,
			PreviousStatus: transition.From,
			Status:         transition.To,
			PreviousRound:  transition.FromRound,
			CurrentRound:   transition.ToRound,
			Note:           note,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) || errors.Is(err, ErrIntervieweeNotFound) || errors.Is(err, ErrInvalidIntervieweeState) {
			return nil, err
		}
		uc.logger.Error("RecordRoundResult: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("RecordRoundResult: interviewee=%s moved %s(%d) -> %s(%d)",
		result.IntervieweeID, result.PreviousStatus, result.PreviousRound, result.Status, result.CurrentRound)

	return result, nil
}
