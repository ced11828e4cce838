package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusBooked     AppointmentStatus = "booked"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusDone       AppointmentStatus = "done"
	StatusCanceled   AppointmentStatus = "canceled"
)

// ValidStatus returns true if s is one of the known appointment statuses
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusBooked, StatusInProgress, StatusDone, StatusCanceled:
		return true
	default:
		return false
	}
}

// Appointment represents a booked service visit.
// Start and End are stored in UTC; business-hour arithmetic happens in
// shop-local time before an appointment ever reaches the store.
type Appointment struct {
	ID           int64
	CustomerName string
	Phone        string
	CarInfo      string // make/model/plate, free text

	PrimaryServiceCode string
	AddonCodes         []string
	ResourceType       string // primary service's capacity category

	Start time.Time
	End   time.Time

	TotalPrice int64
	Status     AppointmentStatus
	Notes      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesCapacity returns true while the appointment holds a capacity unit
// of its resource category for [Start, End). Canceled appointments never count.
func (a *Appointment) OccupiesCapacity() bool {
	return a.Status != StatusCanceled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusBooked || a.Status == StatusInProgress
}

// IsCanceled returns true if the appointment has been cancelled
func (a *Appointment) IsCanceled() bool {
	return a.Status == StatusCanceled
}

// RangeFilter фильтр для выборки записей за период (админский календарь)
type RangeFilter struct {
	From            time.Time
	To              time.Time
	ResourceType    *string // опционально: только одна категория ресурса
	IncludeCanceled bool
}
