package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avtodetail/carshop-booking/internal/domain"
	catalogRepo "github.com/avtodetail/carshop-booking/internal/infra/storage/servicecatalog"
	"github.com/avtodetail/carshop-booking/internal/scheduling"
)

// UseCase use case для создания записи на обслуживание
type UseCase struct {
	apptRepo     AppointmentRepository
	catalog      ServiceCatalog
	calendar     BusinessCalendar
	projector    SpanProjector
	capacity     CapacityChecker
	txManager    TransactionManager
	notifier     Notifier
	stepMinutes  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	catalog ServiceCatalog,
	calendar BusinessCalendar,
	projector SpanProjector,
	capacity CapacityChecker,
	txManager TransactionManager,
	notifier Notifier,
	stepMinutes int,
	logger Logger,
) *UseCase {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}
	return &UseCase{
		apptRepo:     apptRepo,
		catalog:      catalog,
		calendar:     calendar,
		projector:    projector,
		capacity:     capacity,
		txManager:    txManager,
		notifier:     notifier,
		stepMinutes:  stepMinutes,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка ёмкости и вставка идут в сериализуемой транзакции: параллельная
// запись на тот же интервал получит ErrSlotNotAvailable, а не двойное бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%s, service=%s, addons=%v, start=%s",
		req.CustomerName, req.ServiceCode, req.AddonCodes, req.Start.Format(domain.DateFormat+" "+domain.TimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	if req.Start.Before(now) {
		uc.logger.Warn("CreateAppointment: start %s is in the past", req.Start)
		return nil, ErrStartInPast
	}

	// 3. Получаем основную услугу из каталога
	primary, err := uc.catalog.GetByCode(ctx, req.ServiceCode)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service code=%s not found", req.ServiceCode)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service code=%s: %v", req.ServiceCode, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if primary.IsAddon {
		uc.logger.Warn("CreateAppointment: service code=%s is an addon", req.ServiceCode)
		return nil, ErrNotPrimaryService
	}

	// 4. Получаем дополнения
	addons, err := uc.resolveAddons(ctx, req.AddonCodes)
	if err != nil {
		return nil, err
	}

	// 5. Суммарная длительность и цена комбинации
	totalPrice, totalMinutes, totalDays := scheduling.Totals(primary, addons)
	if totalMinutes == 0 && totalDays == 0 {
		uc.logger.Warn("CreateAppointment: combination service=%s addons=%v has zero duration",
			req.ServiceCode, req.AddonCodes)
		return nil, ErrZeroDurationService
	}

	// 6. Начало должно попадать в рабочее окно и на сетку слотов
	if err := uc.validateStart(req.Start, primary, totalDays); err != nil {
		uc.logger.Warn("CreateAppointment: start validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 7. Проверка ёмкости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Проектируем окончание работ
		end, err := uc.projector.Project(req.Start, totalMinutes, totalDays)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to project end: %v", err)
			return fmt.Errorf("%w: failed to project end: %v", ErrInternal, err)
		}

		// 7.2. Ёмкость категории основной услуги на всём интервале
		ok, err := uc.capacity.FitsCapacity(txCtx, primary.ResourceType, req.Start, end)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check capacity: %v", err)
			return fmt.Errorf("%w: failed to check capacity: %v", ErrInternal, err)
		}
		if !ok {
			uc.logger.Warn("CreateAppointment: no capacity for %s at %s", primary.ResourceType, req.Start)
			return ErrSlotNotAvailable
		}

		// 7.3. Ёмкость категорий дополнений с независимой проекцией от того же старта
		if err := uc.checkAddonCapacity(txCtx, primary, addons, req.Start); err != nil {
			return err
		}

		// 7.4. Сохраняем запись
		appt := &domain.Appointment{
			CustomerName:       req.CustomerName,
			Phone:              req.Phone,
			CarInfo:            req.CarInfo,
			PrimaryServiceCode: primary.Code,
			AddonCodes:         req.AddonCodes,
			ResourceType:       primary.ResourceType,
			Start:              req.Start.UTC(),
			End:                end.UTC(),
			TotalPrice:         totalPrice,
			Status:             domain.StatusBooked,
			Notes:              req.Notes,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 8. Уведомление после коммита, сбой не откатывает запись
	uc.notify(ctx, result, primary, req.Start)

	return &Response{
		ID:                 result.ID,
		CustomerName:       result.CustomerName,
		Phone:              result.Phone,
		CarInfo:            result.CarInfo,
		PrimaryServiceCode: result.PrimaryServiceCode,
		ServiceName:        primary.Name,
		AddonCodes:         result.AddonCodes,
		ResourceType:       result.ResourceType,
		Start:              result.Start,
		End:                result.End,
		TotalPrice:         result.TotalPrice,
		Status:             string(result.Status),
		Notes:              result.Notes,
		CreatedAt:          result.CreatedAt,
		UpdatedAt:          result.UpdatedAt,
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
			uc.logger.Warn("CreateAppointment: addon not found: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrAddonNotFound, err)
		}
		uc.logger.Error("CreateAppointment: failed to get addons %v: %v", codes, err)
		return nil, fmt.Errorf("%w: failed to get addons: %v", ErrInternal, err)
	}

	for _, addon := range addons {
		if !addon.IsAddon {
			uc.logger.Warn("CreateAppointment: service code=%s is not an addon", addon.Code)
			return nil, fmt.Errorf("%w: %s", ErrNotAnAddon, addon.Code)
		}
	}

	return addons, nil
}

// validateStart проверяет начало против рабочего окна дня.
// Многодневная комбинация стартует только с открытия; внутридневная - на сетке
// слотов, и собственная длительность основной услуги помещается до закрытия.
func (uc *UseCase) validateStart(start time.Time, primary *domain.Service, totalDays int) error {
	open, close, ok := uc.calendar.Window(start)
	if !ok {
		return ErrShopClosed
	}

	if totalDays > 0 {
		if !start.Equal(open) {
			return fmt.Errorf("%w: multi-day service starts at opening time", ErrInvalidTimeSlot)
		}
		return nil
	}

	if start.Before(open) {
		return fmt.Errorf("%w: before opening time", ErrInvalidTimeSlot)
	}

	if start.Sub(open)%(time.Duration(uc.stepMinutes)*time.Minute) != 0 {
		return fmt.Errorf("%w: start must align to %d-minute grid", ErrInvalidTimeSlot, uc.stepMinutes)
	}

	if start.Add(time.Duration(primary.DurationMinutes) * time.Minute).After(close) {
		return fmt.Errorf("%w: service does not fit before closing time", ErrInvalidTimeSlot)
	}

	return nil
}

// checkAddonCapacity проверяет ёмкость категорий дополнений.
// Дополнение той же категории без собственных дней идёт внутри интервала
// основной услуги и отдельной проверки не требует.
func (uc *UseCase) checkAddonCapacity(ctx context.Context, primary *domain.Service, addons []*domain.Service, start time.Time) error {
	for _, addon := range addons {
		if addon.ResourceType == primary.ResourceType && addon.DurationDays == 0 {
			continue
		}

		addonEnd, err := uc.projector.Project(start, addon.DurationMinutes, addon.DurationDays)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to project addon %s end: %v", addon.Code, err)
			return fmt.Errorf("%w: failed to project addon end: %v", ErrInternal, err)
		}

		ok, err := uc.capacity.FitsCapacity(ctx, addon.ResourceType, start, addonEnd)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check addon capacity: %v", err)
			return fmt.Errorf("%w: failed to check addon capacity: %v", ErrInternal, err)
		}
		if !ok {
			uc.logger.Warn("CreateAppointment: no capacity for addon %s at %s", addon.Code, start)
			return ErrSlotNotAvailable
		}
	}
	return nil
}

// notify отправляет уведомление о созданной записи, ошибки только логируются
func (uc *UseCase) notify(ctx context.Context, appt *domain.Appointment, primary *domain.Service, localStart time.Time) {
	if uc.notifier == nil || !uc.notifier.Enabled() {
		return
	}

	text := fmt.Sprintf("New appointment #%d\n%s (%s)\n%s\n%s at %s",
		appt.ID, appt.CustomerName, appt.Phone, primary.Name,
		localStart.Format(domain.DateFormat), localStart.Format(domain.TimeFormat))

	if err := uc.notifier.SendMessage(ctx, text); err != nil {
		uc.logger.Warn("CreateAppointment: failed to send notification for id=%d: %v", appt.ID, err)
	}
}
