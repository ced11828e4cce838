package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда основная услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrAddonNotFound возвращается, когда код дополнения не найден в каталоге
	ErrAddonNotFound = errors.New("create_appointment: addon not found")

	// ErrNotPrimaryService возвращается, когда по коду основной услуги найдено дополнение
	ErrNotPrimaryService = errors.New("create_appointment: service cannot be booked as primary")

	// ErrNotAnAddon возвращается, когда по коду дополнения найдена основная услуга
	ErrNotAnAddon = errors.New("create_appointment: service is not an addon")

	// ErrZeroDurationService возвращается, когда комбинация услуг не имеет длительности
	ErrZeroDurationService = errors.New("create_appointment: service has zero duration")

	// ErrShopClosed возвращается, когда магазин закрыт в указанную дату
	ErrShopClosed = errors.New("create_appointment: shop is closed on this date")

	// ErrStartInPast возвращается, когда время начала уже прошло
	ErrStartInPast = errors.New("create_appointment: start time is in the past")

	// ErrInvalidTimeSlot возвращается, когда время начала вне рабочего окна
	// или не совпадает с сеткой слотов
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда ёмкость категории на интервале исчерпана
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
