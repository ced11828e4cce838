package models

import (
	"time"

	"github.com/avtodetail/carshop-booking/internal/domain"
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetAppointmentsRequest запрос на получение записей за период
type GetAppointmentsRequest struct {
	From            time.Time // Начало периода (включительно)
	To              time.Time // Конец периода (исключительно)
	ResourceType    *string   // Фильтр по категории ресурса (опционально)
	IncludeCanceled bool      // Включить отменённые записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetAppointmentsRequest) ToDomainFilter() domain.RangeFilter {
	return domain.RangeFilter{
		From:            r.From,
		To:              r.To,
		ResourceType:    r.ResourceType,
		IncludeCanceled: r.IncludeCanceled,
	}
}

// Response модели

// AppointmentResponse ответ с данными записи.
// Start и End отдаются в часовом поясе магазина.
type AppointmentResponse struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	CarInfo      string `json:"carInfo,omitempty"`

	ServiceCode  string   `json:"serviceCode"`
	ServiceName  string   `json:"serviceName"`
	AddonCodes   []string `json:"addonCodes,omitempty"`
	ResourceType string   `json:"resourceType"`

	Start string `json:"start"` // "2025-10-13T10:00:00+03:00"
	End   string `json:"end"`

	TotalPrice int64  `json:"totalPrice"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment, serviceName string, loc *time.Location) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:           a.ID,
		CustomerName: a.CustomerName,
		Phone:        a.Phone,
		CarInfo:      a.CarInfo,
		ServiceCode:  a.PrimaryServiceCode,
		ServiceName:  serviceName,
		AddonCodes:   a.AddonCodes,
		ResourceType: a.ResourceType,
		Start:        a.Start.In(loc).Format(time.RFC3339),
		End:          a.End.In(loc).Format(time.RFC3339),
		TotalPrice:   a.TotalPrice,
		Status:       string(a.Status),
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO.
// names сопоставляет код услуги с названием; неизвестный код остаётся кодом.
func FromDomainAppointmentList(appts []*domain.Appointment, names map[string]string, loc *time.Location) *AppointmentListResponse {
	out := make([]AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		name, ok := names[a.PrimaryServiceCode]
		if !ok {
			name = a.PrimaryServiceCode
		}
		out = append(out, *FromDomainAppointment(a, name, loc))
	}
	return &AppointmentListResponse{Appointments: out}
}
