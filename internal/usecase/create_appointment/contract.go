package create_appointment

import (
	"context"
	"time"

	"github.com/avtodetail/carshop-booking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	GetByCode(ctx context.Context, code string) (*domain.Service, error)
	GetByCodes(ctx context.Context, codes []string) ([]*domain.Service, error)
}

// BusinessCalendar интерфейс рабочего календаря магазина
type BusinessCalendar interface {
	// Window возвращает границы рабочего дня; ok=false в выходной
	Window(date time.Time) (open, close time.Time, ok bool)
}

// SpanProjector интерфейс проектора окончания работ
type SpanProjector interface {
	Project(start time.Time, minutes, days int) (time.Time, error)
}

// CapacityChecker интерфейс проверки ёмкости категории ресурса
type CapacityChecker interface {
	FitsCapacity(ctx context.Context, resourceType string, start, end time.Time) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс для отправки уведомлений о созданной записи
type Notifier interface {
	Enabled() bool
	SendMessage(ctx context.Context, text string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
