package catalog

import (
	"context"
	"fmt"

	"github.com/avtodetail/carshop-booking/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	repo   ServiceRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo ServiceRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает каталог: основные услуги и дополнения
func (s *Service) List(ctx context.Context) (*models.CatalogResponse, error) {
	s.logger.Info("List: fetching service catalog")

	services, err := s.repo.ListPrimary(ctx)
	if err != nil {
		s.logger.Error("List: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	addons, err := s.repo.ListAddons(ctx)
	if err != nil {
		s.logger.Error("List: failed to list addons: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: %d services, %d addons", len(services), len(addons))
	return &models.CatalogResponse{
		Services: models.FromDomainServiceList(services),
		Addons:   models.FromDomainServiceList(addons),
	}, nil
}
