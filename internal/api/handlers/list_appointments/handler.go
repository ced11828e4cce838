package list_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/avtodetail/carshop-booking/internal/api/handlers"
	appointmentsService "github.com/avtodetail/carshop-booking/internal/service/appointments"
)

const (
	msgMissingFrom  = "параметр from обязателен"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "некорректный временной диапазон"
)

type Handler struct {
	service AppointmentsService
	loc     *time.Location
	logger  Logger
}

// NewHandler создает обработчик; loc - часовой пояс магазина для парсинга дат
func NewHandler(service AppointmentsService, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		service: service,
		loc:     loc,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: from (required, YYYY-MM-DD), to (YYYY-MM-DD),
// resource (категория ресурса), includeCanceled (true/false)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	fromStr := query.Get("from")
	if fromStr == "" {
		h.logger.Warn("GET /appointments - Missing from date")
		handlers.RespondBadRequest(w, msgMissingFrom)
		return
	}

	includeCanceled := query.Get("includeCanceled") == "true"

	serviceReq, err := ToServiceRequest(fromStr, query.Get("to"), query.Get("resource"), includeCanceled, h.loc)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetByRange(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidTimeRange):
			h.logger.Warn("GET /appointments - Invalid range: from=%s, to=%s", fromStr, query.Get("to"))
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: from=%s, error=%v", fromStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved: from=%s, count=%d",
		fromStr, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
