package scheduling

import (
	"fmt"
	"time"
)

// Граница поиска следующего рабочего дня. Защита от конфигурации
// "магазин всегда закрыт" - дальше года не ищем.
const nextBusinessDaySearchBound = 366

// DayWindow рабочие часы одного дня недели (часы локального времени магазина)
type DayWindow struct {
	OpenHour  int
	CloseHour int
}

// HoursTable таблица рабочих часов: день недели -> окно.
// Отсутствие дня в таблице означает выходной.
type HoursTable map[time.Weekday]DayWindow

// Calendar отвечает на вопросы "открыт ли магазин в дату D" и
// "каковы моменты открытия/закрытия". Все вычисления в локальном времени магазина.
type Calendar struct {
	hours HoursTable
	loc   *time.Location
}

// NewCalendar создает календарь магазина
func NewCalendar(hours HoursTable, loc *time.Location) *Calendar {
	return &Calendar{hours: hours, loc: loc}
}

// Location возвращает часовой пояс магазина
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// IsOpen сообщает, открыт ли магазин в указанную дату
func (c *Calendar) IsOpen(date time.Time) bool {
	_, ok := c.hours[date.Weekday()]
	return ok
}

// Window возвращает моменты открытия и закрытия для даты.
// ok == false означает выходной день.
func (c *Calendar) Window(date time.Time) (open, close time.Time, ok bool) {
	w, found := c.hours[date.Weekday()]
	if !found {
		return time.Time{}, time.Time{}, false
	}

	y, m, d := date.Date()
	open = time.Date(y, m, d, w.OpenHour, 0, 0, 0, c.loc)
	close = time.Date(y, m, d, w.CloseHour, 0, 0, 0, c.loc)
	return open, close, true
}

// NextBusinessDay возвращает первую дату ПОСЛЕ date, в которую магазин открыт.
// Поиск ограничен nextBusinessDaySearchBound днями - при полностью закрытой
// конфигурации возвращается ErrNoBusinessDay вместо бесконечного цикла.
func (c *Calendar) NextBusinessDay(date time.Time) (time.Time, error) {
	next := date
	for i := 0; i < nextBusinessDaySearchBound; i++ {
		next = next.AddDate(0, 0, 1)
		if c.IsOpen(next) {
			return next, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: searched %d days from %s",
		ErrNoBusinessDay, nextBusinessDaySearchBound, date.Format("2006-01-02"))
}
