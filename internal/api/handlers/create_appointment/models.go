package create_appointment

import (
	"time"

	"github.com/avtodetail/carshop-booking/internal/domain"
	createAppointment "github.com/avtodetail/carshop-booking/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerName string   `json:"customerName"`
	Phone        string   `json:"phone"`
	CarInfo      string   `json:"carInfo,omitempty"`
	Service      string   `json:"service"`
	Addons       []string `json:"addons,omitempty"`
	Date         string   `json:"date"`  // "2025-10-15"
	Start        string   `json:"start"` // "10:00"
	Notes        string   `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model.
// Start и End отдаются в часовом поясе магазина.
type AppointmentResponse struct {
	ID           int64    `json:"id"`
	CustomerName string   `json:"customerName"`
	Phone        string   `json:"phone"`
	CarInfo      string   `json:"carInfo,omitempty"`
	ServiceCode  string   `json:"serviceCode"`
	ServiceName  string   `json:"serviceName"`
	AddonCodes   []string `json:"addonCodes,omitempty"`
	ResourceType string   `json:"resourceType"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	TotalPrice   int64    `json:"totalPrice"`
	Status       string   `json:"status"`
	Notes        string   `json:"notes,omitempty"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case,
// собирая дату и время в момент начала в часовом поясе магазина
func (r *CreateAppointmentRequest) ToUseCaseRequest(loc *time.Location) (*createAppointment.Request, error) {
	start, err := time.ParseInLocation(domain.DateFormat+" "+domain.TimeFormat, r.Date+" "+r.Start, loc)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		CarInfo:      r.CarInfo,
		ServiceCode:  r.Service,
		AddonCodes:   r.Addons,
		Start:        start,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response, loc *time.Location) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           resp.ID,
		CustomerName: resp.CustomerName,
		Phone:        resp.Phone,
		CarInfo:      resp.CarInfo,
		ServiceCode:  resp.PrimaryServiceCode,
		ServiceName:  resp.ServiceName,
		AddonCodes:   resp.AddonCodes,
		ResourceType: resp.ResourceType,
		Start:        resp.Start.In(loc).Format(time.RFC3339),
		End:          resp.End.In(loc).Format(time.RFC3339),
		TotalPrice:   resp.TotalPrice,
		Status:       resp.Status,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
