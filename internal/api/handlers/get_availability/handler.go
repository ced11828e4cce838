package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/avtodetail/carshop-booking/internal/api/handlers"
	getAvailability "github.com/avtodetail/carshop-booking/internal/usecase/get_availability"
)

const (
	msgMissingService  = "код услуги обязателен"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgServiceNotFound = "услуга не найдена"
	msgAddonNotFound   = "дополнение не найдено"
	msgNotPrimary      = "дополнение нельзя выбрать как основную услугу"
	msgNotAnAddon      = "услуга не является дополнением"
	msgZeroDuration    = "услуга без длительности"
	msgDateInPast      = "дата в прошлом"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	loc     *time.Location
	logger  Logger
}

// NewHandler создает обработчик; loc - часовой пояс магазина для парсинга даты
func NewHandler(useCase GetAvailabilityUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: service (required), date (required, YYYY-MM-DD), addons (comma-separated)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceCode := query.Get("service")
	if serviceCode == "" {
		h.logger.Warn("GET /availability - Missing service code")
		handlers.RespondBadRequest(w, msgMissingService)
		return
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(serviceCode, dateStr, query.Get("addons"), h.loc)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /availability - Service not found: service=%s", serviceCode)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailability.ErrAddonNotFound):
			h.logger.Warn("GET /availability - Addon not found: service=%s, addons=%s", serviceCode, query.Get("addons"))
			handlers.RespondBadRequest(w, msgAddonNotFound)

		case errors.Is(err, getAvailability.ErrNotPrimaryService):
			h.logger.Warn("GET /availability - Service is an addon: service=%s", serviceCode)
			handlers.RespondBadRequest(w, msgNotPrimary)

		case errors.Is(err, getAvailability.ErrNotAnAddon):
			h.logger.Warn("GET /availability - Not an addon: service=%s, addons=%s", serviceCode, query.Get("addons"))
			handlers.RespondBadRequest(w, msgNotAnAddon)

		case errors.Is(err, getAvailability.ErrZeroDurationService):
			h.logger.Warn("GET /availability - Zero duration: service=%s", serviceCode)
			handlers.RespondBadRequest(w, msgZeroDuration)

		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /availability - Date in past: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability - Failed to get slots: service=%s, date=%s, error=%v",
				serviceCode, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Slots retrieved: service=%s, date=%s, slots_count=%d",
		serviceCode, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
