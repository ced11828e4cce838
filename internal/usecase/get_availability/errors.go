package get_availability

import "errors"

var (
	// ErrServiceNotFound возвращается, когда основная услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("get_availability: service not found")

	// ErrAddonNotFound возвращается, когда код дополнения не найден в каталоге
	ErrAddonNotFound = errors.New("get_availability: addon not found")

	// ErrNotPrimaryService возвращается, когда по коду основной услуги найдено дополнение
	ErrNotPrimaryService = errors.New("get_availability: service cannot be booked as primary")

	// ErrNotAnAddon возвращается, когда по коду дополнения найдена основная услуга
	ErrNotAnAddon = errors.New("get_availability: service is not an addon")

	// ErrZeroDurationService возвращается, когда комбинация услуг не имеет длительности
	ErrZeroDurationService = errors.New("get_availability: service has zero duration")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("get_availability: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
