package domain

// Defaults applied when the shop configuration omits a value
const (
	// DefaultResourceCapacity применяется к категории, отсутствующей в таблице
	// ёмкостей. Это документированное поведение, а не ошибка конфигурации.
	DefaultResourceCapacity = 1

	// DefaultSlotStepMinutes шаг генерации кандидатов начала слота
	DefaultSlotStepMinutes = 30
)

// Business validation constants
const (
	MaxNotesLength    = 500
	MaxCustomerName   = 120
	MaxPhoneLength    = 40
	MaxCarInfoLength  = 200
	MaxAddonsPerVisit = 10
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)
