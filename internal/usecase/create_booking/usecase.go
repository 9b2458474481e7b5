package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
	"github.com/m04kA/SMC-InterviewScheduler/internal/infra/lock"
	intervieweeRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/interviewee"
	interviewerRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/interviewer"
	settingsRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/settings"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/ptr"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo     BookingRepository
	settingsRepo    SettingsRepository
	interviewerRepo InterviewerRepository
	intervieweeRepo IntervieweeRepository
	txManager       TransactionManager
	locker          DayLocker
	metrics         Metrics
	location        *time.Location
	applyBuffer     bool
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	interviewerRepo InterviewerRepository,
	intervieweeRepo IntervieweeRepository,
	txManager TransactionManager,
	locker DayLocker,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	if locker == nil {
		locker = lock.NewNoopLocker()
	}
	return &UseCase{
		bookingRepo:     bookingRepo,
		settingsRepo:    settingsRepo,
		interviewerRepo: interviewerRepo,
		intervieweeRepo: intervieweeRepo,
		txManager:       txManager,
		locker:          locker,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// SetMetrics подключает метрики (опционально)
func (uc *UseCase) SetMetrics(m Metrics) {
	uc.metrics = m
}

// SetApplyBufferOnAdmission включает учет буфера при проверке пересечений
// По умолчанию буфер учитывается только при генерации слотов
func (uc *UseCase) SetApplyBufferOnAdmission(apply bool) {
	uc.applyBuffer = apply
}

// Execute выполняет use case создания бронирования
// Проверки лимита и пересечений и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	if uc.metrics != nil {
		uc.metrics.ObserveAdmission(outcomeOf(err))
	}
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: interviewer=%s, tenant=%s, start=%s, end=%s",
		req.InterviewerID, req.TenantID, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Получаем текущее время
	now := uc.timeProvider.Now().In(uc.location)

	// 2. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	start := req.StartTime.In(uc.location)
	end := req.EndTime.In(uc.location)
	name := strings.TrimSpace(req.IntervieweeName)
	email := strings.TrimSpace(req.IntervieweeEmail)

	// 3. Проверяем, что интервьюер состоит в тенанте
	interviewer, err := uc.interviewerRepo.GetInTenant(ctx, req.InterviewerID, req.TenantID)
	if err != nil {
		if errors.Is(err, interviewerRepo.ErrInterviewerNotFound) {
			uc.logger.Warn("CreateBooking: interviewer=%s not found in tenant=%s", req.InterviewerID, req.TenantID)
			return nil, ErrInterviewerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get interviewer=%s: %v", req.InterviewerID, err)
		return nil, fmt.Errorf("%w: failed to get interviewer: %v", ErrInternal, err)
	}

	// 4. Получаем настройки (значения по умолчанию, если не сохранены)
	settings, err := uc.settingsRepo.Get(ctx, req.InterviewerID, req.TenantID)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("CreateBooking: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultSchedulingSettings(req.InterviewerID, req.TenantID)
	}

	// 5. Блокируем день интервьюера
	unlock, err := uc.locker.Lock(ctx, req.InterviewerID, req.TenantID, start)
	if err != nil {
		if errors.Is(err, lock.ErrLockHeld) {
			uc.logger.Warn("CreateBooking: day %s of interviewer=%s is locked by another admission: %v",
				domain.DayKey(start), req.InterviewerID, err)
			return nil, ErrDayBusy
		}
		uc.logger.Error("CreateBooking: failed to lock day: %v", err)
		return nil, fmt.Errorf("%w: failed to lock day: %v", ErrInternal, err)
	}
	defer unlock()

	var result *Response

	// 6. Проверки и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Активные бронирования вокруг дня с блокировкой (FOR UPDATE)
		dayStart := domain.StartOfDay(start)
		bookings, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{
			InterviewerID: req.InterviewerID,
			TenantID:      req.TenantID,
			From:          ptr.Ptr(dayStart.AddDate(0, 0, -1)),
			To:            ptr.Ptr(dayStart.AddDate(0, 0, 2)),
			ActiveOnly:    true,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 6.2. Дневной лимит
		sameDay := 0
		for _, b := range bookings {
			if b.IsActive() && domain.SameDay(b.StartTime.In(uc.location), start) {
				sameDay++
			}
		}
		if sameDay >= settings.MaxSchedulesPerDay {
			uc.logger.Warn("CreateBooking: capacity exceeded on %s, %d/%d bookings",
				domain.DayKey(start), sameDay, settings.MaxSchedulesPerDay)
			return ErrCapacityExceeded
		}

		// 6.3. Пересечение с активными бронированиями
		candidate := domain.Interval{Start: start, End: end}
		for _, b := range bookings {
			if !b.IsActive() {
				continue
			}
			existing := b.Interval()
			if uc.applyBuffer {
				existing = existing.Expand(settings.Buffer())
			}
			if candidate.Collides(existing) {
				uc.logger.Warn("CreateBooking: conflicts with booking id=%s (%s - %s)",
					b.ID, b.StartTime.Format(time.RFC3339), b.EndTime.Format(time.RFC3339))
				return ErrSlotConflict
			}
		}

		// 6.4. Кандидат: по явному ID или по email в тенанте
		interviewee, err := uc.resolveInterviewee(txCtx, req, email)
		if err != nil {
			return err
		}
		if interviewee != nil && !interviewee.CanBeScheduled() {
			uc.logger.Warn("CreateBooking: interviewee id=%s has status %s", interviewee.ID, interviewee.Status)
			return ErrInvalidIntervieweeState
		}

		// 6.5. Создаем бронирование
		title := domain.DefaultBookingTitle(name)
		if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
			title = strings.TrimSpace(*req.Title)
		}

		booking := &domain.Booking{
			InterviewerID:    req.InterviewerID,
			TenantID:         req.TenantID,
			Title:            title,
			IntervieweeName:  name,
			IntervieweeEmail: email,
			StartTime:        start,
			EndTime:          end,
			Status:           domain.StatusConfirmed,
		}
		if interviewee != nil {
			booking.IntervieweeID = ptr.Ptr(interviewee.ID)
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}
		result = &Response{Booking: created}

		if interviewee == nil {
			return nil
		}

		// 6.6. Продвигаем кандидата по воронке и пишем системную заметку
		transition, err := interviewee.ApplyBooking(interviewer.Name, start)
		if err != nil {
			return ErrInvalidIntervieweeState
		}

		if err := uc.intervieweeRepo.UpdateStatus(txCtx, interviewee); err != nil {
			uc.logger.Error("CreateBooking: failed to update interviewee id=%s: %v", interviewee.ID, err)
			return fmt.Errorf("%w: failed to update interviewee: %w", ErrInternal, err)
		}

		if err := uc.intervieweeRepo.AddNote(txCtx, domain.NewSystemNote(interviewee, transition.Note, now)); err != nil {
			uc.logger.Error("CreateBooking: failed to add note for interviewee id=%s: %v", interviewee.ID, err)
			return fmt.Errorf("%w: failed to add note: %w", ErrInternal, err)
		}

		uc.logger.Info("CreateBooking: interviewee id=%s moved %s(%d) -> %s(%d)",
			interviewee.ID, transition.From, transition.FromRound, transition.To, transition.ToRound)

		result.Interviewee = &IntervieweeState{
			ID:           interviewee.ID,
			Status:       interviewee.Status,
			CurrentRound: interviewee.CurrentRound,
			Note:         transition.Note,
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: concurrent admission for interviewer=%s on %s: %v",
				req.InterviewerID, domain.DayKey(start), err)
			return nil, ErrSlotConflict
		}
		if errors.Is(err, ErrInternal) || isBusinessError(err) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.Booking.ID)

	return result, nil
}

// resolveInterviewee находит кандидата по явному ID или по email
// Отсутствие кандидата с таким email не является ошибкой
func (uc *UseCase) resolveInterviewee(ctx context.Context, req *Request, email string) (*domain.Interviewee, error) {
	if req.IntervieweeID != nil {
		interviewee, err := uc.intervieweeRepo.GetByID(ctx, req.TenantID, *req.IntervieweeID)
		if err != nil {
			if errors.Is(err, intervieweeRepo.ErrIntervieweeNotFound) {
				uc.logger.Warn("CreateBooking: interviewee id=%s not found in tenant=%s", *req.IntervieweeID, req.TenantID)
				return nil, ErrIntervieweeNotFound
			}
			uc.logger.Error("CreateBooking: failed to get interviewee id=%s: %v", *req.IntervieweeID, err)
			return nil, fmt.Errorf("%w: failed to get interviewee: %w", ErrInternal, err)
		}
		return interviewee, nil
	}

	interviewee, err := uc.intervieweeRepo.GetByEmail(ctx, req.TenantID, email)
	if err != nil {
		if errors.Is(err, intervieweeRepo.ErrIntervieweeNotFound) {
			return nil, nil
		}
		uc.logger.Error("CreateBooking: failed to find interviewee by email: %v", err)
		return nil, fmt.Errorf("%w: failed to find interviewee: %w", ErrInternal, err)
	}
	return interviewee, nil
}

func isBusinessError(err error) bool {
	return errors.Is(err, ErrCapacityExceeded) ||
		errors.Is(err, ErrSlotConflict) ||
		errors.Is(err, ErrInvalidIntervieweeState) ||
		errors.Is(err, ErrIntervieweeNotFound)
}
