package create_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/avtodetail/carshop-booking/internal/api/handlers"
	createAppointment "github.com/avtodetail/carshop-booking/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgServiceNotFound    = "услуга не найдена"
	msgAddonNotFound      = "дополнение не найдено"
	msgNotPrimary         = "дополнение нельзя выбрать как основную услугу"
	msgNotAnAddon         = "услуга не является дополнением"
	msgZeroDuration       = "услуга без длительности"
	msgShopClosed         = "магазин закрыт в выбранную дату"
	msgStartInPast        = "время начала уже прошло"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	loc     *time.Location
	logger  Logger
}

// NewHandler создает обработчик; loc - часовой пояс магазина
func NewHandler(useCase CreateAppointmentUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.loc)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: service=%s, start=%s", req.Service, req.Start)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service=%s", req.Service)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrAddonNotFound):
			h.logger.Warn("POST /appointments - Addon not found: addons=%v", req.Addons)
			handlers.RespondBadRequest(w, msgAddonNotFound)

		case errors.Is(err, createAppointment.ErrNotPrimaryService):
			h.logger.Warn("POST /appointments - Service is an addon: service=%s", req.Service)
			handlers.RespondBadRequest(w, msgNotPrimary)

		case errors.Is(err, createAppointment.ErrNotAnAddon):
			h.logger.Warn("POST /appointments - Not an addon: addons=%v", req.Addons)
			handlers.RespondBadRequest(w, msgNotAnAddon)

		case errors.Is(err, createAppointment.ErrZeroDurationService):
			h.logger.Warn("POST /appointments - Zero duration: service=%s", req.Service)
			handlers.RespondBadRequest(w, msgZeroDuration)

		case errors.Is(err, createAppointment.ErrShopClosed):
			h.logger.Warn("POST /appointments - Shop closed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgShopClosed)

		case errors.Is(err, createAppointment.ErrStartInPast):
			h.logger.Warn("POST /appointments - Start in past: date=%s, start=%s", req.Date, req.Start)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: date=%s, start=%s", req.Date, req.Start)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: service=%s, error=%v",
				req.Service, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result, h.loc)

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, service=%s, start=%s",
		result.ID, req.Service, response.Start)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
