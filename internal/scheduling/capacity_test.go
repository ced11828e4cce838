package scheduling_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avtodetail/carshop-booking/internal/scheduling"
)

func TestCapacityTable_Of(t *testing.T) {
	table := scheduling.CapacityTable{"wash": 2, "tint": 1}

	assert.Equal(t, 2, table.Of("wash"))
	assert.Equal(t, 1, table.Of("tint"))
	// Отсутствующая категория получает дефолтную ёмкость 1
	assert.Equal(t, 1, table.Of("polish"))
}

// Полуоткрытый закон пересечения: запись, заканчивающаяся ровно в T,
// и запись, начинающаяся ровно в T, не пересекаются.
func TestCapacityChecker_HalfOpenOverlap(t *testing.T) {
	store := &fakeStore{}
	store.add("tint", monday(10, 0), monday(14, 0))

	checker := scheduling.NewCapacityChecker(store, scheduling.CapacityTable{"tint": 1})
	ctx := context.Background()

	tests := []struct {
		name     string
		startMin int // минуты от 00:00 понедельника
		endMin   int
		fits     bool
	}{
		{"overlaps one minute before end", 13*60 + 59, 15 * 60, false},
		{"touching end boundary is free", 14 * 60, 15 * 60, true},
		{"touching start boundary is free", 9 * 60, 10 * 60, true},
		{"fully inside is taken", 11 * 60, 12 * 60, false},
		{"covering is taken", 9 * 60, 15 * 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := monday(0, tt.startMin)
			end := monday(0, tt.endMin)

			fits, err := checker.FitsCapacity(ctx, "tint", start, end)
			require.NoError(t, err)
			assert.Equal(t, tt.fits, fits)
		})
	}
}

func TestCapacityChecker_CountsExactly(t *testing.T) {
	store := &fakeStore{}
	store.add("wash", monday(10, 0), monday(11, 0))
	store.add("wash", monday(10, 30), monday(11, 30))
	canceled := store.add("wash", monday(10, 0), monday(12, 0))
	canceled.canceled = true
	store.add("detail", monday(10, 0), monday(12, 0)) // другая категория

	checker := scheduling.NewCapacityChecker(store, scheduling.CapacityTable{"wash": 2})

	count, err := checker.CountOverlaps(context.Background(), "wash", monday(10, 0), monday(11, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, count) // отменённая и чужая категория не считаются
}

func TestCapacityChecker_FitsUpToLimit(t *testing.T) {
	store := &fakeStore{}
	checker := scheduling.NewCapacityChecker(store, scheduling.CapacityTable{"wash": 2})
	ctx := context.Background()

	fits, err := checker.FitsCapacity(ctx, "wash", monday(10, 0), monday(11, 0))
	require.NoError(t, err)
	assert.True(t, fits)

	store.add("wash", monday(10, 0), monday(11, 0))
	fits, err = checker.FitsCapacity(ctx, "wash", monday(10, 0), monday(11, 0))
	require.NoError(t, err)
	assert.True(t, fits, "одна из двух единиц ёмкости ещё свободна")

	store.add("wash", monday(10, 0), monday(11, 0))
	fits, err = checker.FitsCapacity(ctx, "wash", monday(10, 0), monday(11, 0))
	require.NoError(t, err)
	assert.False(t, fits)
}
