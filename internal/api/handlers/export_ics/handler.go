package export_ics

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avtodetail/carshop-booking/internal/api/handlers"
	appointmentsService "github.com/avtodetail/carshop-booking/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgAppointmentNotFound  = "запись не найдена"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /ics/{appointmentId}.ics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /ics/{id}.ics - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	ics, err := h.service.ExportICS(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("GET /ics/{id}.ics - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("GET /ics/{id}.ics - Failed to export: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /ics/{id}.ics - Calendar exported: appointment_id=%d", appointmentID)
	handlers.RespondICS(w, fmt.Sprintf("appointment-%d.ics", appointmentID), ics)
}

// HandleFeed GET /feed.ics
func (h *Handler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.service.ExportFeed(r.Context())
	if err != nil {
		h.logger.Error("GET /feed.ics - Failed to build feed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /feed.ics - Calendar feed exported")
	handlers.RespondICS(w, "carshop.ics", feed)
}
