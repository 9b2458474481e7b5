package get_tenant_bookings

import (
	"context"

	"github.com/m04kA/SMC-InterviewScheduler/internal/service/bookings/models"
)

type BookingService interface {
	ListTenant(ctx context.Context, req *models.ListTenantBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
