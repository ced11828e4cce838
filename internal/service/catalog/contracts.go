package catalog

import (
	"context"

	"github.com/avtodetail/carshop-booking/internal/domain"
)

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	ListPrimary(ctx context.Context) ([]*domain.Service, error)
	ListAddons(ctx context.Context) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
