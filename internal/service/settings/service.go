package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
	interviewerRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/interviewer"
	settingsRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/settings"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/settings/models"
)

// Service сервис для работы с настройками планирования
type Service struct {
	settingsRepo    SettingsRepository
	interviewerRepo InterviewerRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	settingsRepo SettingsRepository,
	interviewerRepo InterviewerRepository,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo:    settingsRepo,
		interviewerRepo: interviewerRepo,
		logger:          logger,
	}
}

// Get получает настройки пользователя в тенанте
// Если настройки не сохранены, возвращаются значения по умолчанию
func (s *Service) Get(ctx context.Context, userID, tenantID uuid.UUID) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for user=%s, tenant=%s", userID, tenantID)

	if err := s.checkMember(ctx, "Get", userID, tenantID); err != nil {
		return nil, err
	}

	current, isDefault, err := s.load(ctx, "Get", userID, tenantID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Get: successfully fetched settings for user=%s (default=%t)", userID, isDefault)
	return models.FromDomainSettings(current, isDefault), nil
}

// Update обновляет настройки пользователя в тенанте
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for user=%s, tenant=%s", req.UserID, req.TenantID)

	// 1. Проверяем, что пользователь состоит в тенанте
	if err := s.checkMember(ctx, "Update", req.UserID, req.TenantID); err != nil {
		return nil, err
	}

	// 2. Получаем текущие настройки
	current, _, err := s.load(ctx, "Update", req.UserID, req.TenantID)
	if err != nil {
		return nil, err
	}

	// 3. Применяем обновления и валидируем
	req.ApplyToSettings(current)
	if err := current.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Сохраняем
	saved, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		s.logger.Error("Update: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated settings for user=%s", req.UserID)
	return models.FromDomainSettings(saved, false), nil
}

// Вспомогательные методы

func (s *Service) load(ctx context.Context, method string, userID, tenantID uuid.UUID) (*domain.SchedulingSettings, bool, error) {
	current, err := s.settingsRepo.Get(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return domain.DefaultSchedulingSettings(userID, tenantID), true, nil
		}
		s.logger.Error("%s: repository error for user=%s: %v", method, userID, err)
		return nil, false, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return current, false, nil
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
