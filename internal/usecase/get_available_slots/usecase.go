package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
	interviewerRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/interviewer"
	settingsRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/settings"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/ptr"
)

// UseCase use case для получения доступных слотов для бронирования
// Только чтение: результат носит рекомендательный характер и ничего не резервирует
type UseCase struct {
	availabilityRepo AvailabilityRepository
	settingsRepo     SettingsRepository
	bookingRepo      BookingRepository
	interviewerRepo  InterviewerRepository
	metrics          Metrics
	location         *time.Location
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// location задает часовой пояс, в котором считаются границы дней
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	settingsRepo SettingsRepository,
	bookingRepo BookingRepository,
	interviewerRepo InterviewerRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		availabilityRepo: availabilityRepo,
		settingsRepo:     settingsRepo,
		bookingRepo:      bookingRepo,
		interviewerRepo:  interviewerRepo,
		location:         location,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// SetMetrics подключает метрики (опционально)
func (uc *UseCase) SetMetrics(m Metrics) {
	uc.metrics = m
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: interviewer=%s, tenant=%s", req.InterviewerID, req.TenantID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Проверяем, что интервьюер состоит в тенанте
	interviewer, err := uc.interviewerRepo.GetInTenant(ctx, req.InterviewerID, req.TenantID)
	if err != nil {
		if errors.Is(err, interviewerRepo.ErrInterviewerNotFound) {
			uc.logger.Warn("GetAvailableSlots: interviewer=%s not found in tenant=%s", req.InterviewerID, req.TenantID)
			return nil, ErrInterviewerNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get interviewer=%s: %v", req.InterviewerID, err)
		return nil, fmt.Errorf("%w: failed to get interviewer: %v", ErrInternal, err)
	}

	// 4. Получаем настройки (значения по умолчанию, если не сохранены)
	settings, err := uc.settingsRepo.Get(ctx, req.InterviewerID, req.TenantID)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultSchedulingSettings(req.InterviewerID, req.TenantID)
		uc.logger.Info("GetAvailableSlots: using default settings for interviewer=%s, tenant=%s",
			req.InterviewerID, req.TenantID)
	}

	// 5. Вычисляем период
	rangeStart, rangeEnd := resolveRange(req, settings, now)

	response := &Response{
		Interviewer: InterviewerInfo{
			ID:                     interviewer.ID,
			Name:                   interviewer.Name,
			Email:                  interviewer.Email,
			MeetingDurationMinutes: settings.MeetingDurationMinutes,
		},
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		Slots:      []domain.Slot{},
	}

	if rangeEnd.Before(rangeStart) {
		uc.logger.Info("GetAvailableSlots: range is beyond booking horizon, no slots")
		uc.observe(0)
		return response, nil
	}

	// 6. Загружаем расписание, исключения и активные бронирования периода
	weekly, err := uc.availabilityRepo.GetWeekly(ctx, req.InterviewerID, req.TenantID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get weekly availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get weekly availability: %v", ErrInternal, err)
	}

	exceptions, err := uc.availabilityRepo.GetExceptions(ctx, req.InterviewerID, req.TenantID, &rangeStart, &rangeEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get exception dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get exception dates: %v", ErrInternal, err)
	}

	// Бронирование, начатое до периода и заканчивающееся в нем, тоже занимает время
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		InterviewerID: req.InterviewerID,
		TenantID:      req.TenantID,
		EndsAfter:     ptr.Ptr(rangeStart.Add(-settings.Buffer())),
		To:            ptr.Ptr(rangeEnd.Add(settings.Buffer())),
		ActiveOnly:    true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Генерируем слоты
	response.Slots = generateSlots(generationInput{
		weekly:     weekly,
		exceptions: exceptions,
		bookings:   bookings,
		settings:   settings,
		rangeStart: rangeStart,
		rangeEnd:   rangeEnd,
		now:        now,
	})

	uc.observe(len(response.Slots))
	uc.logger.Info("GetAvailableSlots: generated %d slots for interviewer=%s, tenant=%s, range=%s..%s",
		len(response.Slots), req.InterviewerID, req.TenantID,
		rangeStart.Format(domain.DateFormat), rangeEnd.Format(domain.DateFormat))

	return response, nil
}

func (uc *UseCase) observe(count int) {
	if uc.metrics != nil {
		uc.metrics.ObserveSlots(count)
	}
}
