package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	interviewerRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/interviewer"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/availability/models"
)

// Service сервис для работы с недельным расписанием и исключениями
type Service struct {
	availabilityRepo AvailabilityRepository
	interviewerRepo  InterviewerRepository
	txManager        TransactionManager
	location         *time.Location
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	interviewerRepo InterviewerRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		availabilityRepo: availabilityRepo,
		interviewerRepo:  interviewerRepo,
		txManager:        txManager,
		location:         location,
		logger:           logger,
	}
}

// Get получает недельное расписание и все исключения пользователя в тенанте
func (s *Service) Get(ctx context.Context, userID, tenantID uuid.UUID) (*models.AvailabilityResponse, error) {
	s.logger.Info("Get: fetching availability for user=%s, tenant=%s", userID, tenantID)

	if err := s.checkMember(ctx, "Get", userID, tenantID); err != nil {
		return nil, err
	}

	resp, err := s.load(ctx, "Get", userID, tenantID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Get: successfully fetched %d windows and %d exceptions for user=%s",
		len(resp.Weekly), len(resp.ExceptionDates), userID)
	return resp, nil
}

// Replace полностью заменяет расписание и исключения пользователя
// Удаление старых и вставка новых записей выполняются в одной транзакции
func (s *Service) Replace(ctx context.Context, req *models.ReplaceAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Replace: replacing availability for user=%s, tenant=%s: %d windows, %d exceptions",
		req.UserID, req.TenantID, len(req.Weekly), len(req.ExceptionDates))

	// 1. Валидируем и конвертируем входные данные
	weekly, exceptions, err := req.ToDomain(s.location)
	if err != nil {
		s.logger.Warn("Replace: validation failed for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Проверяем, что пользователь состоит в тенанте
	if err := s.checkMember(ctx, "Replace", req.UserID, req.TenantID); err != nil {
		return nil, err
	}

	// 3. Заменяем записи в транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.availabilityRepo.ReplaceAll(txCtx, req.UserID, req.TenantID, weekly, exceptions)
	})
	if err != nil {
		s.logger.Error("Replace: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Replace: successfully replaced availability for user=%s", req.UserID)
	return s.load(ctx, "Replace", req.UserID, req.TenantID)
}

// Вспомогательные методы

func (s *Service) load(ctx context.Context, method string, userID, tenantID uuid.UUID) (*models.AvailabilityResponse, error) {
	weekly, err := s.availabilityRepo.GetWeekly(ctx, userID, tenantID)
	if err != nil {
		s.logger.Error("%s: failed to get weekly availability for user=%s: %v", method, userID, err)
		return nil, fmt.Errorf("%w: %s - get weekly: %v", ErrInternal, method, err)
	}

	exceptions, err := s.availabilityRepo.GetExceptions(ctx, userID, tenantID, nil, nil)
	if err != nil {
		s.logger.Error("%s: failed to get exceptions for user=%s: %v", method, userID, err)
		return nil, fmt.Errorf("%w: %s - get exceptions: %v", ErrInternal, method, err)
	}

	return models.FromDomain(weekly, exceptions), nil
}

func (s *Service) checkMember(ctx context.Context, method string, userID, tenantID uuid.UUID) error {
	if _, err := s.interviewerRepo.GetInTenant(ctx, userID, tenantID); err != nil {
		if errors.Is(err, interviewerRepo.ErrInterviewerNotFound) {
			s.logger.Warn("%s: user=%s is not a member of tenant=%s", method, userID, tenantID)
			return ErrAccessDenied
		}
		s.logger.Error("%s: failed to get user=%s: %v", method, userID, err)
		return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	return nil
}
