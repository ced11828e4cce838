package scheduling

import (
	"context"
	"time"

	"github.com/avtodetail/carshop-booking/internal/domain"
)

// OverlapCounter интерфейс хранилища записей: количество НЕотменённых записей
// категории resourceType, реально пересекающих интервал [start, end).
// Полуоткрытый тест пересечения: a.Start < end && start < a.End -
// записи, граничащие концами, пересечением не считаются.
type OverlapCounter interface {
	CountOverlapping(ctx context.Context, resourceType string, start, end time.Time) (int, error)
}

// CapacityTable таблица ёмкостей: категория ресурса -> число параллельных записей
type CapacityTable map[string]int

// Of возвращает ёмкость категории. Отсутствующая категория получает
// DefaultResourceCapacity - это документированный дефолт, не ошибка.
func (t CapacityTable) Of(resourceType string) int {
	if cap, ok := t[resourceType]; ok {
		return cap
	}
	return domain.DefaultResourceCapacity
}

// CapacityChecker единственный авторитет по вопросу "свободен ли ресурс".
// Вызывается и при поиске доступности, и повторно внутри транзакции
// создания записи (закрытие гонки между просмотром и подтверждением).
type CapacityChecker struct {
	store      OverlapCounter
	capacities CapacityTable
}

// NewCapacityChecker создает проверку ёмкости над хранилищем записей
func NewCapacityChecker(store OverlapCounter, capacities CapacityTable) *CapacityChecker {
	return &CapacityChecker{store: store, capacities: capacities}
}

// CapacityOf возвращает ёмкость категории ресурса
func (c *CapacityChecker) CapacityOf(resourceType string) int {
	return c.capacities.Of(resourceType)
}

// CountOverlaps считает активные записи категории, пересекающие интервал
func (c *CapacityChecker) CountOverlaps(ctx context.Context, resourceType string, start, end time.Time) (int, error) {
	return c.store.CountOverlapping(ctx, resourceType, start, end)
}

// FitsCapacity сообщает, остаётся ли в категории хотя бы одна свободная
// единица ёмкости на интервале [start, end)
func (c *CapacityChecker) FitsCapacity(ctx context.Context, resourceType string, start, end time.Time) (bool, error) {
	count, err := c.CountOverlaps(ctx, resourceType, start, end)
	if err != nil {
		return false, err
	}
	return count < c.capacities.Of(resourceType), nil
}
