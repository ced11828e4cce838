package list_appointments

import (
	"time"

	"github.com/avtodetail/carshop-booking/internal/domain"
	"github.com/avtodetail/carshop-booking/internal/service/appointments/models"
	"github.com/avtodetail/carshop-booking/pkg/ptr"
)

// ToServiceRequest создает запрос сервиса из query параметров.
// Обе даты включительные: "to" расширяется до конца дня.
// Пустой "to" означает один день "from".
func ToServiceRequest(fromStr, toStr, resourceType string, includeCanceled bool, loc *time.Location) (*models.GetAppointmentsRequest, error) {
	from, err := time.ParseInLocation(domain.DateFormat, fromStr, loc)
	if err != nil {
		return nil, err
	}

	to := from
	if toStr != "" {
		to, err = time.ParseInLocation(domain.DateFormat, toStr, loc)
		if err != nil {
			return nil, err
		}
	}

	req := &models.GetAppointmentsRequest{
		From:            from,
		To:              to.AddDate(0, 0, 1),
		IncludeCanceled: includeCanceled,
	}
	if resourceType != "" {
		req.ResourceType = ptr.Ptr(resourceType)
	}
	return req, nil
}
