package scheduling_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avtodetail/carshop-booking/internal/domain"
	"github.com/avtodetail/carshop-booking/internal/scheduling"
)

func quickWash() *domain.Service {
	return &domain.Service{
		Code:            "quick_wash",
		Name:            "Quick Wash",
		Price:           25,
		ResourceType:    "wash",
		DurationMinutes: 60,
	}
}

func fullPolish() *domain.Service {
	return &domain.Service{
		Code:         "full_polish",
		Name:         "Full Polish",
		Price:        400,
		ResourceType: "polish",
		DurationDays: 4,
	}
}

func headlightAddon() *domain.Service {
	return &domain.Service{
		Code:            "addon_headlight",
		Name:            "Headlight Polish",
		Price:           25,
		ResourceType:    "detail",
		DurationMinutes: 30,
		IsAddon:         true,
	}
}

func newEnumerator(store *fakeStore, capacities scheduling.CapacityTable) *scheduling.Enumerator {
	cal := shopCalendar()
	return scheduling.NewEnumerator(
		cal,
		scheduling.NewProjector(cal),
		scheduling.NewCapacityChecker(store, capacities),
		domain.DefaultSlotStepMinutes,
	)
}

func TestEnumerator_EmptyShopGeneratesFullGrid(t *testing.T) {
	enum := newEnumerator(&fakeStore{}, scheduling.CapacityTable{"wash": 2})

	slots, err := enum.Enumerate(context.Background(), quickWash(), nil, monday(0, 0))
	require.NoError(t, err)

	// 9:00..18:00 с шагом 30 минут - последний старт, чей час помещается до 19:00
	require.Len(t, slots, 19)
	assert.Equal(t, monday(9, 0), slots[0].Start)
	assert.Equal(t, monday(10, 0), slots[0].End)
	assert.Equal(t, monday(18, 0), slots[len(slots)-1].Start)

	// Слоты упорядочены по возрастанию начала
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start))
	}
}

func TestEnumerator_ClosedDayYieldsNoSlots(t *testing.T) {
	enum := newEnumerator(&fakeStore{}, scheduling.CapacityTable{"wash": 2})

	slots, err := enum.Enumerate(context.Background(), quickWash(), nil, date(19, 0, 0)) // воскресенье
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestEnumerator_MultiDayServiceSingleCandidate(t *testing.T) {
	enum := newEnumerator(&fakeStore{}, scheduling.CapacityTable{"polish": 1})

	slots, err := enum.Enumerate(context.Background(), fullPolish(), nil, monday(0, 0))
	require.NoError(t, err)

	require.Len(t, slots, 1)
	assert.Equal(t, monday(9, 0), slots[0].Start)
	assert.Equal(t, date(16, 19, 0), slots[0].End) // закрытие четверга
}

func TestEnumerator_ZeroDurationRejected(t *testing.T) {
	enum := newEnumerator(&fakeStore{}, scheduling.CapacityTable{})

	svc := &domain.Service{Code: "ghost", ResourceType: "wash"}
	_, err := enum.Enumerate(context.Background(), svc, nil, monday(0, 0))
	require.ErrorIs(t, err, scheduling.ErrZeroDurationService)
}

func TestEnumerator_Idempotent(t *testing.T) {
	store := &fakeStore{}
	store.add("wash", monday(10, 0), monday(12, 0))
	enum := newEnumerator(store, scheduling.CapacityTable{"wash": 1})
	ctx := context.Background()

	first, err := enum.Enumerate(ctx, quickWash(), nil, monday(0, 0))
	require.NoError(t, err)
	second, err := enum.Enumerate(ctx, quickWash(), nil, monday(0, 0))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Добавление записи может только убрать кандидатов, но не добавить новых
func TestEnumerator_BookingOnlyRemovesCandidates(t *testing.T) {
	store := &fakeStore{}
	enum := newEnumerator(store, scheduling.CapacityTable{"wash": 1})
	ctx := context.Background()

	before, err := enum.Enumerate(ctx, quickWash(), nil, monday(0, 0))
	require.NoError(t, err)

	store.add("wash", monday(11, 0), monday(12, 0))

	after, err := enum.Enumerate(ctx, quickWash(), nil, monday(0, 0))
	require.NoError(t, err)

	assert.Less(t, len(after), len(before))
	beforeSet := make(map[int64]struct{}, len(before))
	for _, s := range before {
		beforeSet[s.Start.Unix()] = struct{}{}
	}
	for _, s := range after {
		_, existed := beforeSet[s.Start.Unix()]
		assert.True(t, existed, "слот %s появился из ниоткуда", s.Start)
	}
}

// Две записи wash (ёмкость 2), полностью покрывающие рабочий день, дают пустой
// список; отмена одной из них возвращает заблокированные слоты.
func TestEnumerator_FullDaySaturationAndCancel(t *testing.T) {
	store := &fakeStore{}
	store.add("wash", monday(9, 0), monday(19, 0))
	blocker := store.add("wash", monday(9, 0), monday(19, 0))

	enum := newEnumerator(store, scheduling.CapacityTable{"wash": 2})
	ctx := context.Background()

	slots, err := enum.Enumerate(ctx, quickWash(), nil, monday(0, 0))
	require.NoError(t, err)
	assert.Empty(t, slots)

	blocker.canceled = true

	slots, err = enum.Enumerate(ctx, quickWash(), nil, monday(0, 0))
	require.NoError(t, err)
	assert.Len(t, slots, 19, "отмена освобождает единицу ёмкости на весь день")
}

// Дополнение с другой категорией ресурса проверяется независимо:
// занятый detail-бокс отклоняет кандидата даже при свободной мойке.
func TestEnumerator_AddonResourceChecked(t *testing.T) {
	store := &fakeStore{}
	store.add("detail", monday(9, 0), monday(19, 0))

	enum := newEnumerator(store, scheduling.CapacityTable{"wash": 2, "detail": 1})
	ctx := context.Background()

	slots, err := enum.Enumerate(ctx, quickWash(), []*domain.Service{headlightAddon()}, monday(0, 0))
	require.NoError(t, err)
	assert.Empty(t, slots)

	// Без дополнения мойка свободна
	slots, err = enum.Enumerate(ctx, quickWash(), nil, monday(0, 0))
	require.NoError(t, err)
	assert.NotEmpty(t, slots)
}

// Дополнение той же категории без собственных дней отдельно не проверяется -
// оно входит в общий интервал основной услуги
func TestEnumerator_SameResourceAddonNotDoubleChecked(t *testing.T) {
	store := &fakeStore{}
	enum := newEnumerator(store, scheduling.CapacityTable{"wash": 1})

	engineAddon := &domain.Service{
		Code:            "addon_engine",
		ResourceType:    "wash",
		Price:           30,
		DurationMinutes: 30,
		IsAddon:         true,
	}

	slots, err := enum.Enumerate(context.Background(), quickWash(), []*domain.Service{engineAddon}, monday(0, 0))
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	// Совокупная длительность 90 минут отражается в конце слота
	assert.Equal(t, monday(10, 30), slots[0].End)
}
