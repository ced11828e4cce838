package models

import "github.com/avtodetail/carshop-booking/internal/domain"

// ServiceResponse описание услуги каталога
type ServiceResponse struct {
	Code            string `json:"code"`
	Name            string `json:"name"`
	Price           int64  `json:"price"`
	ResourceType    string `json:"resourceType"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	DurationDays    int    `json:"durationDays,omitempty"`
	Description     string `json:"description,omitempty"`
}

// CatalogResponse ответ с каталогом услуг и дополнений
type CatalogResponse struct {
	Services []ServiceResponse `json:"services"`
	Addons   []ServiceResponse `json:"addons"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		Code:            s.Code,
		Name:            s.Name,
		Price:           s.Price,
		ResourceType:    s.ResourceType,
		DurationMinutes: s.DurationMinutes,
		DurationDays:    s.DurationDays,
		Description:     s.Description,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromDomainService(s))
	}
	return out
}
