package create_appointment

import (
	"fmt"
	"strings"

	"github.com/avtodetail/carshop-booking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerName {
		return fmt.Errorf("%w: customer name exceeds %d characters", ErrInvalidInput, domain.MaxCustomerName)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if len(req.CarInfo) > domain.MaxCarInfoLength {
		return fmt.Errorf("%w: car info exceeds %d characters", ErrInvalidInput, domain.MaxCarInfoLength)
	}

	if req.ServiceCode == "" {
		return fmt.Errorf("%w: service code is required", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}

	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
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
