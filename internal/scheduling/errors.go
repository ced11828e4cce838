package scheduling

import "errors"

var (
	// ErrNoBusinessDay возвращается, когда в пределах границы поиска нет рабочего дня
	ErrNoBusinessDay = errors.New("scheduling: no business day found within search bound")

	// ErrUnresolvableSchedule возвращается, когда проекция длительности не может
	// завершиться при текущей конфигурации рабочих часов
	ErrUnresolvableSchedule = errors.New("scheduling: schedule cannot be resolved with current business hours")

	// ErrZeroDurationService возвращается при попытке работать с услугой без длительности.
	// Такие услуги отклоняются и при перечислении слотов, и при создании записи.
	ErrZeroDurationService = errors.New("scheduling: service has zero duration")
)
