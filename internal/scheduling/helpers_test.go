package scheduling_test

import (
	"context"
	"time"

	"github.com/avtodetail/carshop-booking/internal/scheduling"
)

// Рабочие часы магазина из продовой конфигурации:
// будни 9-19, суббота 9-17, воскресенье выходной.
func shopHours() scheduling.HoursTable {
	return scheduling.HoursTable{
		time.Monday:    {OpenHour: 9, CloseHour: 19},
		time.Tuesday:   {OpenHour: 9, CloseHour: 19},
		time.Wednesday: {OpenHour: 9, CloseHour: 19},
		time.Thursday:  {OpenHour: 9, CloseHour: 19},
		time.Friday:    {OpenHour: 9, CloseHour: 19},
		time.Saturday:  {OpenHour: 9, CloseHour: 17},
	}
}

func shopCalendar() *scheduling.Calendar {
	return scheduling.NewCalendar(shopHours(), time.UTC)
}

// 2025-10-13 - понедельник
func monday(hour, min int) time.Time {
	return time.Date(2025, 10, 13, hour, min, 0, 0, time.UTC)
}

func date(day, hour, min int) time.Time {
	return time.Date(2025, 10, day, hour, min, 0, 0, time.UTC)
}

// fakeStore in-memory хранилище записей для проверки ёмкости
type fakeStore struct {
	appointments []*fakeAppointment
}

type fakeAppointment struct {
	resource string
	start    time.Time
	end      time.Time
	canceled bool
}

func (s *fakeStore) add(resource string, start, end time.Time) *fakeAppointment {
	a := &fakeAppointment{resource: resource, start: start, end: end}
	s.appointments = append(s.appointments, a)
	return a
}

// CountOverlapping полуоткрытый тест пересечения, отменённые не считаются
func (s *fakeStore) CountOverlapping(_ context.Context, resourceType string, start, end time.Time) (int, error) {
	count := 0
	for _, a := range s.appointments {
		if a.canceled || a.resource != resourceType {
			continue
		}
		if a.start.Before(end) && start.Before(a.end) {
			count++
		}
	}
	return count, nil
}
