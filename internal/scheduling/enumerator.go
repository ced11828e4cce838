package scheduling

import (
	"context"
	"time"

	"github.com/avtodetail/carshop-booking/internal/domain"
)

// Slot кандидат интервала записи (локальное время магазина)
type Slot struct {
	Start time.Time
	End   time.Time
}

// AddonStartPolicy политика размещения дополнений относительно основной услуги
type AddonStartPolicy int

const (
	// ParallelAddonStart - дополнения стартуют одновременно с основной услугой
	// в своих категориях ресурсов. Мойка и тонировка - физически разные боксы,
	// поэтому за одну единицу ёмкости они не конкурируют. Последовательное
	// размещение дополнений - альтернативная политика, проекция от неё не зависит.
	ParallelAddonStart AddonStartPolicy = iota
)

// Enumerator перечисляет доступные слоты для комбинации услуга+дополнения на день
type Enumerator struct {
	calendar    *Calendar
	projector   *Projector
	capacity    *CapacityChecker
	stepMinutes int
	policy      AddonStartPolicy
}

// NewEnumerator создает перечислитель слотов.
// stepMinutes - шаг генерации кандидатов (по конфигу, дефолт 30 минут).
func NewEnumerator(calendar *Calendar, projector *Projector, capacity *CapacityChecker, stepMinutes int) *Enumerator {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}
	return &Enumerator{
		calendar:    calendar,
		projector:   projector,
		capacity:    capacity,
		stepMinutes: stepMinutes,
		policy:      ParallelAddonStart,
	}
}

// Enumerate возвращает упорядоченный по началу список слотов, доступных для
// записи primary+addons в дату day. Выходной день даёт пустой список.
//
// Повторный вызов без изменения множества записей даёт идентичный результат;
// добавление записи может только сузить список, никогда не расширить.
func (e *Enumerator) Enumerate(ctx context.Context, primary *domain.Service, addons []*domain.Service, day time.Time) ([]Slot, error) {
	_, totalMinutes, totalDays := Totals(primary, addons)
	if totalMinutes == 0 && totalDays == 0 {
		return nil, ErrZeroDurationService
	}

	candidates, err := e.candidates(primary, day)
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, 0, len(candidates))
	for _, start := range candidates {
		end, err := e.projector.Project(start, totalMinutes, totalDays)
		if err != nil {
			return nil, err
		}

		ok, err := e.capacity.FitsCapacity(ctx, primary.ResourceType, start, end)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		ok, err = e.addonsFit(ctx, primary, addons, start)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		slots = append(slots, Slot{Start: start, End: end})
	}

	return slots, nil
}

// candidates генерирует кандидатов начала на дату.
// Многодневная услуга стартует только с открытия; внутридневная - с шагом
// stepMinutes, пока её собственная длительность помещается до закрытия.
func (e *Enumerator) candidates(primary *domain.Service, day time.Time) ([]time.Time, error) {
	open, close, ok := e.calendar.Window(day)
	if !ok {
		return nil, nil
	}

	if primary.IsMultiDay() {
		return []time.Time{open}, nil
	}

	step := time.Duration(e.stepMinutes) * time.Minute
	span := time.Duration(primary.DurationMinutes) * time.Minute

	var candidates []time.Time
	for cur := open; !cur.Add(span).After(close); cur = cur.Add(step) {
		candidates = append(candidates, cur)
	}
	return candidates, nil
}

// addonsFit проверяет ёмкость ресурсов дополнений для кандидата start.
// Дополнение с категорией, отличной от основной услуги, либо само занимающее
// целые дни, проецируется независимо от того же старта (ParallelAddonStart)
// и проверяется в своей категории.
func (e *Enumerator) addonsFit(ctx context.Context, primary *domain.Service, addons []*domain.Service, start time.Time) (bool, error) {
	for _, addon := range addons {
		if addon.ResourceType == primary.ResourceType && addon.DurationDays == 0 {
			continue
		}

		addonEnd, err := e.projector.Project(start, addon.DurationMinutes, addon.DurationDays)
		if err != nil {
			return false, err
		}

		ok, err := e.capacity.FitsCapacity(ctx, addon.ResourceType, start, addonEnd)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
