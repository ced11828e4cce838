package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/avtodetail/carshop-booking/internal/domain"
	catalogRepo "github.com/avtodetail/carshop-booking/internal/infra/storage/servicecatalog"
	"github.com/avtodetail/carshop-booking/internal/scheduling"
)

// UseCase use case для получения доступных слотов записи
type UseCase struct {
	catalog      ServiceCatalog
	enumerator   SlotEnumerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog ServiceCatalog, enumerator SlotEnumerator, logger Logger) *UseCase {
	return &UseCase{
		catalog:      catalog,
		enumerator:   enumerator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: service=%s, addons=%v, date=%s",
		req.ServiceCode, req.AddonCodes, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата не должна быть в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailability: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем основную услугу из каталога
	primary, err := uc.catalog.GetByCode(ctx, req.ServiceCode)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailability: service code=%s not found", req.ServiceCode)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailability: failed to get service code=%s: %v", req.ServiceCode, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if primary.IsAddon {
		uc.logger.Warn("GetAvailability: service code=%s is an addon", req.ServiceCode)
		return nil, ErrNotPrimaryService
	}

	// 5. Получаем дополнения
	addons, err := uc.resolveAddons(ctx, req.AddonCodes)
	if err != nil {
		return nil, err
	}

	// 6. Перечисляем доступные слоты
	slots, err := uc.enumerator.Enumerate(ctx, primary, addons, req.Date)
	if err != nil {
		if errors.Is(err, scheduling.ErrZeroDurationService) {
			uc.logger.Warn("GetAvailability: combination service=%s addons=%v has zero duration",
				req.ServiceCode, req.AddonCodes)
			return nil, ErrZeroDurationService
		}
		uc.logger.Error("GetAvailability: failed to enumerate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to enumerate slots: %v", ErrInternal, err)
	}

	totalPrice, _, _ := scheduling.Totals(primary, addons)

	uc.logger.Info("GetAvailability: %d slots for service=%s, addons=%v, date=%s",
		len(slots), req.ServiceCode, req.AddonCodes, req.Date.Format(domain.DateFormat))

	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, Slot{Start: s.Start, End: s.End})
	}

	return &Response{
		Date:        req.Date,
		ServiceCode: req.ServiceCode,
		AddonCodes:  req.AddonCodes,
		TotalPrice:  totalPrice,
		Slots:       out,
	}, nil
}

// resolveAddons получает дополнения из каталога и проверяет их тип
func (uc *UseCase) resolveAddons(ctx context.Context, codes []string) ([]*domain.Service, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	addons, err := uc.catalog.GetByCodes(ctx, codes)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailability: addon not found: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrAddonNotFound, err)
		}
		uc.logger.Error("GetAvailability: failed to get addons %v: %v", codes, err)
		return nil, fmt.Errorf("%w: failed to get addons: %v", ErrInternal, err)
	}

	for _, addon := range addons {
		if !addon.IsAddon {
			uc.logger.Warn("GetAvailability: service code=%s is not an addon", addon.Code)
			return nil, fmt.Errorf("%w: %s", ErrNotAnAddon, addon.Code)
		}
	}

	return addons, nil
}
