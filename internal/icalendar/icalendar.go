// Package icalendar формирует iCalendar (RFC 5545) представление записей:
// одиночное событие для клиента и общий фид календаря магазина.
package icalendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/avtodetail/carshop-booking/internal/domain"
)

const (
	prodID       = "-//CarShop Booking//EN"
	stampLayout  = "20060102T150405Z"
	localLayout  = "20060102T150405"
	alarmTrigger = "-PT60M" // напоминание за час до визита
)

// Event одно событие календаря
type Event struct {
	UID         string
	Summary     string
	Description string
	Start       time.Time // локальное время магазина
	End         time.Time
	TZID        string
	WithAlarm   bool
}

// AppointmentEvent строит событие календаря из записи.
// Моменты переводятся из UTC хранилища в локальное время магазина.
func AppointmentEvent(appt *domain.Appointment, serviceName string, loc *time.Location, tzid string) Event {
	description := fmt.Sprintf("Customer: %s\\nPhone: %s\\nCar: %s\\nService: %s",
		escapeText(appt.CustomerName), escapeText(appt.Phone), escapeText(appt.CarInfo), escapeText(serviceName))

	return Event{
		UID:         fmt.Sprintf("appt-%d@carshop", appt.ID),
		Summary:     "Car service - " + escapeText(serviceName),
		Description: description,
		Start:       appt.Start.In(loc),
		End:         appt.End.In(loc),
		TZID:        tzid,
		WithAlarm:   true,
	}
}

// Calendar собирает VCALENDAR из событий. now задаёт DTSTAMP.
func Calendar(events []Event, now time.Time) string {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+prodID)
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:PUBLISH")

	stamp := now.UTC().Format(stampLayout)
	for _, ev := range events {
		writeLine(&b, "BEGIN:VEVENT")
		writeLine(&b, "UID:"+ev.UID)
		writeLine(&b, "DTSTAMP:"+stamp)
		writeLine(&b, "SUMMARY:"+ev.Summary)
		writeLine(&b, fmt.Sprintf("DTSTART;TZID=%s:%s", ev.TZID, ev.Start.Format(localLayout)))
		writeLine(&b, fmt.Sprintf("DTEND;TZID=%s:%s", ev.TZID, ev.End.Format(localLayout)))
		writeLine(&b, "DESCRIPTION:"+ev.Description)
		if ev.WithAlarm {
			writeLine(&b, "BEGIN:VALARM")
			writeLine(&b, "TRIGGER:"+alarmTrigger)
			writeLine(&b, "ACTION:DISPLAY")
			writeLine(&b, "DESCRIPTION:Service appointment reminder")
			writeLine(&b, "END:VALARM")
		}
		writeLine(&b, "END:VEVENT")
	}

	writeLine(&b, "END:VCALENDAR")
	return b.String()
}

// writeLine RFC 5545 требует CRLF-окончания строк
func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString("\r\n")
}

// escapeText экранирует спецсимволы текстовых значений iCalendar
func escapeText(s string) string {
	r := strings.NewReplacer("\\", "\\\\", ";", "\\;", ",", "\\,", "\n", "\\n")
	return r.Replace(s)
}
