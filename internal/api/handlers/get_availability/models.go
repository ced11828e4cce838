package get_availability

import (
	"strings"
	"time"

	"github.com/avtodetail/carshop-booking/internal/domain"
	getAvailability "github.com/avtodetail/carshop-booking/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date        string          `json:"date"`
	ServiceCode string          `json:"serviceCode"`
	AddonCodes  []string        `json:"addonCodes,omitempty"`
	TotalPrice  int64           `json:"totalPrice"`
	Slots       []AvailableSlot `json:"slots"`
}

// AvailableSlot модель доступного интервала (локальное время магазина)
type AvailableSlot struct {
	Start string `json:"start"` // "2025-10-13T10:00:00+03:00"
	End   string `json:"end"`
}

// ToUseCaseRequest создает запрос use case из query параметров.
// addons - список кодов через запятую, пустые элементы отбрасываются.
func ToUseCaseRequest(serviceCode, dateStr, addonsStr string, loc *time.Location) (*getAvailability.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
	if err != nil {
		return nil, err
	}

	var addonCodes []string
	for _, code := range strings.Split(addonsStr, ",") {
		code = strings.TrimSpace(code)
		if code != "" {
			addonCodes = append(addonCodes, code)
		}
	}

	return &getAvailability.Request{
		ServiceCode: serviceCode,
		AddonCodes:  addonCodes,
		Date:        date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Start: slot.Start.Format(time.RFC3339),
			End:   slot.End.Format(time.RFC3339),
		}
	}

	return &AvailabilityResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		ServiceCode: resp.ServiceCode,
		AddonCodes:  resp.AddonCodes,
		TotalPrice:  resp.TotalPrice,
		Slots:       slots,
	}
}
