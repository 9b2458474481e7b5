package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
	bookingRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/booking"
	interviewerRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/interviewer"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo     BookingRepository
	interviewerRepo InterviewerRepository
	location        *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	interviewerRepo InterviewerRepository,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		bookingRepo:     bookingRepo,
		interviewerRepo: interviewerRepo,
		location:        location,
		logger:          logger,
	}
}

// List получает бронирования текущего пользователя в тенанте
// role=interviewer - бронирования, где пользователь интервьюер
// role=interviewee - бронирования, где email кандидата совпадает с email пользователя
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	if req.Role == "" {
		req.Role = models.RoleInterviewer
	}
	s.logger.Info("List: fetching bookings for user=%s, tenant=%s, role=%s", req.UserID, req.TenantID, req.Role)

	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		s.logger.Warn("List: invalid period for user=%s", req.UserID)
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	// 1. Проверяем, что пользователь состоит в тенанте
	user, err := s.getMember(ctx, "List", req.UserID, req.TenantID)
	if err != nil {
		return nil, err
	}

	// 2. Собираем фильтр по роли
	filter := domain.BookingsFilter{
		TenantID: req.TenantID,
		From:     req.From,
		To:       req.To,
	}
	switch req.Role {
	case models.RoleInterviewer:
		filter.InterviewerID = user.ID
	case models.RoleInterviewee:
		filter.IntervieweeEmail = user.Email
	default:
		s.logger.Warn("List: invalid role=%s for user=%s", req.Role, req.UserID)
		return nil, fmt.Errorf("%w: role must be interviewer or interviewee", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings, s.location), nil
}

// ListTenant получает бронирования всего тенанта с фильтрацией
// Доступно только ролям ADMIN и HR
func (s *Service) ListTenant(ctx context.Context, req *models.ListTenantBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListTenant: fetching bookings for tenant=%s by user=%s, interviewer=%v, includeCancelled=%t",
		req.TenantID, req.UserID, req.InterviewerID, req.IncludeCancelled)

	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		s.logger.Warn("ListTenant: invalid period for user=%s", req.UserID)
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	// 1. Проверяем права доступа
	user, err := s.getMember(ctx, "ListTenant", req.UserID, req.TenantID)
	if err != nil {
		return nil, err
	}
	if !user.Role.CanManageCandidates() {
		s.logger.Warn("ListTenant: user=%s with role %s cannot list tenant bookings", req.UserID, user.Role)
		return nil, ErrAccessDenied
	}

	// 2. Получаем бронирования
	filter := domain.BookingsFilter{
		TenantID:   req.TenantID,
		From:       req.From,
		To:         req.To,
		ActiveOnly: !req.IncludeCancelled,
	}
	if req.InterviewerID != nil {
		filter.InterviewerID = *req.InterviewerID
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListTenant: repository error for tenant=%s: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: ListTenant - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListTenant: successfully fetched %d bookings for tenant=%s", len(bookings), req.TenantID)
	return models.FromDomainBookingList(bookings, s.location), nil
}

// GetByID получает бронирование по ID
// Доступно интервьюеру бронирования и ADMIN/HR тенанта
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, req *models.AccessRequest) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, req.UserID)

	booking, err := s.getAccessible(ctx, "GetByID", id, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking, s.location), nil
}

// Cancel отменяет активное бронирование
// Доступно интервьюеру бронирования и ADMIN/HR тенанта
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, req *models.AccessRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", id, req.UserID)

	// 1. Получаем бронирование и проверяем права доступа
	booking, err := s.getAccessible(ctx, "Cancel", id, req)
	if err != nil {
		return nil, err
	}

	// 2. Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", id, booking.Status)
		return nil, ErrCannotCancel
	}

	// 3. Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s was cancelled concurrently", id)
			return nil, ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	cancelled, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: failed to reload booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - reload booking: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return models.FromDomainBooking(cancelled, s.location), nil
}

// Вспомогательные методы

// getMember получает пользователя как участника тенанта
// Пользователь вне тенанта не имеет доступа
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

// getAccessible получает бронирование и проверяет права пользователя на него
// Бронирование другого тенанта считается не найденным
func (s *Service) getAccessible(ctx context.Context, method string, id uuid.UUID, req *models.AccessRequest) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", method, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	if booking.TenantID != req.TenantID {
		s.logger.Warn("%s: booking id=%s belongs to another tenant", method, id)
		return nil, ErrBookingNotFound
	}

	if booking.InterviewerID == req.UserID {
		return booking, nil
	}

	user, err := s.getMember(ctx, method, req.UserID, req.TenantID)
	if err != nil {
		return nil, err
	}
	if !user.Role.CanManageCandidates() {
		s.logger.Warn("%s: access denied for user=%s to booking id=%s", method, req.UserID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}
