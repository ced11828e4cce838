package get_availability

import (
	"fmt"
	"time"

	"github.com/avtodetail/carshop-booking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceCode == "" {
		return fmt.Errorf("%w: service code is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.AddonCodes) > domain.MaxAddonsPerVisit {
		return fmt.Errorf("%w: at most %d addons per visit", ErrInvalidInput, domain.MaxAddonsPerVisit)
	}

	seen := make(map[string]struct{}, len(req.AddonCodes))
	for _, code := range req.AddonCodes {
		if code == "" {
			return fmt.Errorf("%w: addon code must not be empty", ErrInvalidInput)
		}
		if _, ok := seen[code]; ok {
			return fmt.Errorf("%w: duplicate addon code %s", ErrInvalidInput, code)
		}
		seen[code] = struct{}{}
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}
