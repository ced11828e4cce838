package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avtodetail/carshop-booking/internal/domain"
	"github.com/avtodetail/carshop-booking/internal/icalendar"
	apptRepo "github.com/avtodetail/carshop-booking/internal/infra/storage/appointment"
	"github.com/avtodetail/carshop-booking/internal/service/appointments/models"
)

// Service сервис для работы с записями на обслуживание
type Service struct {
	apptRepo AppointmentRepository
	catalog  ServiceCatalog
	loc      *time.Location
	tzid     string
	logger   Logger
}

// NewService создает новый экземпляр сервиса записей.
// loc и tzid задают часовой пояс магазина для форматирования ответов и ICS.
func NewService(
	apptRepo AppointmentRepository,
	catalog ServiceCatalog,
	loc *time.Location,
	tzid string,
	logger Logger,
) *Service {
	return &Service{
		apptRepo: apptRepo,
		catalog:  catalog,
		loc:      loc,
		tzid:     tzid,
		logger:   logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt, s.serviceName(ctx, appt.PrimaryServiceCode), s.loc), nil
}

// GetByRange получает записи за период с фильтрацией по категории ресурса
func (s *Service) GetByRange(ctx context.Context, req *models.GetAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetByRange: fetching appointments from=%s to=%s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if !req.To.After(req.From) {
		s.logger.Warn("GetByRange: invalid range from=%s to=%s", req.From, req.To)
		return nil, ErrInvalidTimeRange
	}

	appts, err := s.apptRepo.GetByRange(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetByRange: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByRange - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByRange: fetched %d appointments", len(appts))
	return models.FromDomainAppointmentList(appts, s.serviceNames(ctx), s.loc), nil
}

// Cancel отменяет запись с указанием причины
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appt.Status)
		return ErrCannotCancel
	}

	reason := req.Reason
	if reason == "" {
		reason = "cancelled"
	}

	if err := s.apptRepo.Cancel(ctx, id, reason); err != nil {
		s.logger.Error("Cancel: failed to cancel appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}

// UpdateStatus обновляет статус записи.
// Перевод в canceled идёт только через Cancel, с причиной.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: appointment id=%d, status=%s", id, req.Status)

	status := domain.AppointmentStatus(req.Status)
	if !domain.ValidStatus(status) || status == domain.StatusCanceled {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.apptRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d is now %s", id, status)
	return nil
}

// ExportICS строит iCalendar-файл одной записи
func (s *Service) ExportICS(ctx context.Context, id int64) (string, error) {
	s.logger.Info("ExportICS: appointment id=%d", id)

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("ExportICS: appointment id=%d not found", id)
			return "", ErrAppointmentNotFound
		}
		s.logger.Error("ExportICS: repository error for appointment id=%d: %v", id, err)
		return "", fmt.Errorf("%w: ExportICS - repository error: %v", ErrInternal, err)
	}

	event := icalendar.AppointmentEvent(appt, s.serviceName(ctx, appt.PrimaryServiceCode), s.loc, s.tzid)
	return icalendar.Calendar([]icalendar.Event{event}, time.Now()), nil
}

// ExportFeed строит iCalendar-ленту всех неотменённых записей, без напоминаний
func (s *Service) ExportFeed(ctx context.Context) (string, error) {
	s.logger.Info("ExportFeed: building calendar feed")

	appts, err := s.apptRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ExportFeed: repository error: %v", err)
		return "", fmt.Errorf("%w: ExportFeed - repository error: %v", ErrInternal, err)
	}

	names := s.serviceNames(ctx)

	events := make([]icalendar.Event, 0, len(appts))
	for _, appt := range appts {
		if appt.IsCanceled() {
			continue
		}
		name, ok := names[appt.PrimaryServiceCode]
		if !ok {
			name = appt.PrimaryServiceCode
		}
		event := icalendar.AppointmentEvent(appt, name, s.loc, s.tzid)
		event.WithAlarm = false
		events = append(events, event)
	}

	s.logger.Info("ExportFeed: %d events in feed", len(events))
	return icalendar.Calendar(events, time.Now()), nil
}

// serviceName возвращает название услуги по коду, код - если услуга не найдена
func (s *Service) serviceName(ctx context.Context, code string) string {
	svc, err := s.catalog.GetByCode(ctx, code)
	if err != nil {
		s.logger.Warn("serviceName: failed to resolve code=%s: %v", code, err)
		return code
	}
	return svc.Name
}

// serviceNames строит отображение код - название для основных услуг
func (s *Service) serviceNames(ctx context.Context) map[string]string {
	services, err := s.catalog.ListPrimary(ctx)
	if err != nil {
		s.logger.Warn("serviceNames: failed to list services: %v", err)
		return nil
	}

	names := make(map[string]string, len(services))
	for _, svc := range services {
		names[svc.Code] = svc.Name
	}
	return names
}
