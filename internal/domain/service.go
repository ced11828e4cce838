package domain

// Service represents a catalog entry: a primary service or an add-on.
// Reference data - seeded by migration, never deleted while referenced.
type Service struct {
	ID           int64
	Code         string // unique, e.g. "quick_wash"
	Name         string
	Price        int64  // integer currency units
	ResourceType string // capacity category: wash, detail, tint, polish
	// DurationMinutes задаёт внутридневную длительность, DurationDays - многодневную.
	// Многодневная услуга (DurationDays > 0) бронируется только с открытия рабочего дня.
	DurationMinutes int
	DurationDays    int
	IsAddon         bool
	Description     string
}

// HasDuration returns true if the service consumes any schedulable time.
// Services with neither minutes nor days are rejected by the engine.
func (s *Service) HasDuration() bool {
	return s.DurationMinutes > 0 || s.DurationDays > 0
}

// IsMultiDay returns true if the service spans whole business days
func (s *Service) IsMultiDay() bool {
	return s.DurationDays > 0
}
