package appointments

import (
	"context"

	"github.com/avtodetail/carshop-booking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByRange(ctx context.Context, filter domain.RangeFilter) ([]*domain.Appointment, error)
	GetAll(ctx context.Context) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// ServiceCatalog интерфейс каталога услуг для обогащения ответов названиями
type ServiceCatalog interface {
	GetByCode(ctx context.Context, code string) (*domain.Service, error)
	ListPrimary(ctx context.Context) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
