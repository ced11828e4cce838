package icalendar_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avtodetail/carshop-booking/internal/domain"
	"github.com/avtodetail/carshop-booking/internal/icalendar"
)

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:                 42,
		CustomerName:       "Rami Khoury",
		Phone:              "+961-3-123456",
		CarInfo:            "BMW 320i, plate 123456",
		PrimaryServiceCode: "quick_wash",
		ResourceType:       "wash",
		Start:              time.Date(2025, 10, 13, 7, 0, 0, 0, time.UTC),
		End:                time.Date(2025, 10, 13, 8, 0, 0, 0, time.UTC),
		Status:             domain.StatusBooked,
	}
}

func TestAppointmentEvent(t *testing.T) {
	loc := time.FixedZone("EEST", 3*60*60)
	ev := icalendar.AppointmentEvent(testAppointment(), "Quick Wash", loc, "Asia/Beirut")

	assert.Equal(t, "appt-42@carshop", ev.UID)
	assert.Equal(t, "Car service - Quick Wash", ev.Summary)
	// 07:00 UTC при смещении +3 часа - 10:00 локального времени
	assert.Equal(t, 10, ev.Start.Hour())
	assert.Equal(t, 11, ev.End.Hour())
	assert.True(t, ev.WithAlarm)
}

func TestCalendar_SingleEvent(t *testing.T) {
	loc := time.FixedZone("EEST", 3*60*60)
	ev := icalendar.AppointmentEvent(testAppointment(), "Quick Wash", loc, "Asia/Beirut")

	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	out := icalendar.Calendar([]icalendar.Event{ev}, now)

	require.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	require.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))

	assert.Contains(t, out, "UID:appt-42@carshop\r\n")
	assert.Contains(t, out, "DTSTAMP:20251001T120000Z\r\n")
	assert.Contains(t, out, "DTSTART;TZID=Asia/Beirut:20251013T100000\r\n")
	assert.Contains(t, out, "DTEND;TZID=Asia/Beirut:20251013T110000\r\n")
	assert.Contains(t, out, "TRIGGER:-PT60M\r\n")
	assert.Contains(t, out, "DESCRIPTION:Customer: Rami Khoury\\nPhone: +961-3-123456")
}

func TestCalendar_FeedWithoutAlarms(t *testing.T) {
	loc := time.UTC
	ev := icalendar.AppointmentEvent(testAppointment(), "Quick Wash", loc, "UTC")
	ev.WithAlarm = false

	out := icalendar.Calendar([]icalendar.Event{ev, ev}, time.Now())

	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.NotContains(t, out, "BEGIN:VALARM")
}

func TestCalendar_EscapesText(t *testing.T) {
	appt := testAppointment()
	appt.CustomerName = "Doe; John, Jr"

	ev := icalendar.AppointmentEvent(appt, "Wash", time.UTC, "UTC")
	assert.Contains(t, ev.Description, "Doe\\; John\\, Jr")
}
