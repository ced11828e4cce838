package get_availability

import (
	"context"
	"time"

	"github.com/avtodetail/carshop-booking/internal/domain"
	"github.com/avtodetail/carshop-booking/internal/scheduling"
)

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	// GetByCode получает услугу по символьному коду
	GetByCode(ctx context.Context, code string) (*domain.Service, error)
	// GetByCodes получает несколько услуг, сохраняя порядок кодов запроса
	GetByCodes(ctx context.Context, codes []string) ([]*domain.Service, error)
}

// SlotEnumerator интерфейс перечислителя доступных слотов
type SlotEnumerator interface {
	Enumerate(ctx context.Context, primary *domain.Service, addons []*domain.Service, day time.Time) ([]scheduling.Slot, error)
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
