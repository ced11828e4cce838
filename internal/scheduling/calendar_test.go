package scheduling_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avtodetail/carshop-booking/internal/scheduling"
)

func TestCalendar_IsOpen(t *testing.T) {
	cal := shopCalendar()

	assert.True(t, cal.IsOpen(date(13, 0, 0)))  // понедельник
	assert.True(t, cal.IsOpen(date(18, 0, 0)))  // суббота
	assert.False(t, cal.IsOpen(date(19, 0, 0))) // воскресенье
}

func TestCalendar_Window(t *testing.T) {
	cal := shopCalendar()

	tests := []struct {
		name      string
		day       time.Time
		wantOpen  time.Time
		wantClose time.Time
		wantOK    bool
	}{
		{
			name:      "weekday window",
			day:       date(13, 0, 0),
			wantOpen:  date(13, 9, 0),
			wantClose: date(13, 19, 0),
			wantOK:    true,
		},
		{
			name:      "saturday closes earlier",
			day:       date(18, 0, 0),
			wantOpen:  date(18, 9, 0),
			wantClose: date(18, 17, 0),
			wantOK:    true,
		},
		{
			name:   "sunday closed",
			day:    date(19, 0, 0),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, close, ok := cal.Window(tt.day)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantOpen, open)
				assert.Equal(t, tt.wantClose, close)
			}
		})
	}
}

func TestCalendar_Window_IgnoresTimeOfDay(t *testing.T) {
	cal := shopCalendar()

	open1, close1, ok1 := cal.Window(date(13, 0, 0))
	open2, close2, ok2 := cal.Window(date(13, 15, 42))

	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, open1, open2)
	assert.Equal(t, close1, close2)
}

func TestCalendar_NextBusinessDay(t *testing.T) {
	cal := shopCalendar()

	// Суббота -> понедельник (воскресенье пропускается)
	next, err := cal.NextBusinessDay(date(18, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, time.Monday, next.Weekday())
	assert.Equal(t, 20, next.Day())

	// Понедельник -> вторник
	next, err = cal.NextBusinessDay(date(13, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 14, next.Day())
}

func TestCalendar_NextBusinessDay_AlwaysClosed(t *testing.T) {
	cal := scheduling.NewCalendar(scheduling.HoursTable{}, time.UTC)

	_, err := cal.NextBusinessDay(date(13, 0, 0))
	require.ErrorIs(t, err, scheduling.ErrNoBusinessDay)
}
