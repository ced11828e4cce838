package scheduling

import (
	"fmt"
	"time"
)

// Защита от вырожденных окон (open == close): итерации минутной фазы,
// не потребляющие минуты, не должны крутиться бесконечно.
const maxProjectionIterations = 1000

// Projector проецирует момент начала и длительность услуги на момент окончания,
// шагая по рабочим часам календаря и перепрыгивая выходные.
type Projector struct {
	calendar *Calendar
}

// NewProjector создает проектор над календарем магазина
func NewProjector(calendar *Calendar) *Projector {
	return &Projector{calendar: calendar}
}

// Project возвращает момент окончания услуги, начинающейся в start (локальное
// время магазина) и длящейся days полных рабочих дней плюс minutes минут.
//
// Алгоритм:
//  1. Дневная фаза: каждый день кроме последнего переносит курсор на открытие
//     следующего рабочего дня; последний день даёт закрытие этого дня
//     (многодневная услуга занимает ресурс до конца последнего дня).
//  2. Минутная фаза: курсор прижимается к открытию, минуты потребляются до
//     закрытия, остаток переносится на открытие следующего рабочего дня.
//
// Нулевая длительность (minutes == 0 и days == 0) возвращает start без изменений -
// вызывающий код обязан отклонить такие услуги до проекции.
func (p *Projector) Project(start time.Time, minutes, days int) (time.Time, error) {
	cur := start

	// Дневная фаза
	if days > 0 {
		// Если стартовый день выходной, дни начинают потребляться со следующего рабочего
		if !p.calendar.IsOpen(cur) {
			next, err := p.calendar.NextBusinessDay(cur)
			if err != nil {
				return time.Time{}, fmt.Errorf("%w: day phase: %v", ErrUnresolvableSchedule, err)
			}
			open, _, _ := p.calendar.Window(next)
			cur = open
		}

		remaining := days
		for remaining > 0 {
			_, close, ok := p.calendar.Window(cur)
			if !ok {
				return time.Time{}, fmt.Errorf("%w: day phase lost business window", ErrUnresolvableSchedule)
			}

			remaining--
			if remaining == 0 {
				cur = close
				break
			}

			next, err := p.calendar.NextBusinessDay(cur)
			if err != nil {
				return time.Time{}, fmt.Errorf("%w: day phase: %v", ErrUnresolvableSchedule, err)
			}
			open, _, _ := p.calendar.Window(next)
			cur = open
		}
	}

	// Минутная фаза
	remaining := minutes
	for iter := 0; remaining > 0; iter++ {
		if iter >= maxProjectionIterations {
			return time.Time{}, fmt.Errorf("%w: minute phase did not terminate", ErrUnresolvableSchedule)
		}

		open, close, ok := p.calendar.Window(cur)
		if !ok {
			next, err := p.calendar.NextBusinessDay(cur)
			if err != nil {
				return time.Time{}, fmt.Errorf("%w: minute phase: %v", ErrUnresolvableSchedule, err)
			}
			open, close, _ = p.calendar.Window(next)
			cur = open
		}

		// Прижимаем курсор к открытию, если он раньше
		if cur.Before(open) {
			cur = open
		}

		available := int(close.Sub(cur).Minutes())
		if available <= 0 {
			next, err := p.calendar.NextBusinessDay(cur)
			if err != nil {
				return time.Time{}, fmt.Errorf("%w: minute phase: %v", ErrUnresolvableSchedule, err)
			}
			open, _, _ = p.calendar.Window(next)
			cur = open
			continue
		}

		step := remaining
		if available < step {
			step = available
		}
		cur = cur.Add(time.Duration(step) * time.Minute)
		remaining -= step
	}

	return cur, nil
}
