package appointments

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avtodetail/carshop-booking/internal/domain"
	apptRepo "github.com/avtodetail/carshop-booking/internal/infra/storage/appointment"
	"github.com/avtodetail/carshop-booking/internal/service/appointments/models"
)

type fakeRepo struct {
	appts map[int64]*domain.Appointment

	cancelledID     int64
	cancelledReason string
	updatedStatus   domain.AppointmentStatus
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := r.appts[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (r *fakeRepo) GetByRange(_ context.Context, filter domain.RangeFilter) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range r.appts {
		if a.Start.Before(filter.From) || !a.Start.Before(filter.To) {
			continue
		}
		if !filter.IncludeCanceled && a.IsCanceled() {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeRepo) GetAll(_ context.Context) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range r.appts {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if _, ok := r.appts[id]; !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	r.updatedStatus = status
	return nil
}

func (r *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	if _, ok := r.appts[id]; !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	r.cancelledID = id
	r.cancelledReason = reason
	return nil
}

type fakeCatalog struct{}

func (fakeCatalog) GetByCode(_ context.Context, code string) (*domain.Service, error) {
	if code == "quick_wash" {
		return &domain.Service{Code: code, Name: "Quick Wash"}, nil
	}
	return nil, errors.New("not found")
}

func (fakeCatalog) ListPrimary(_ context.Context) ([]*domain.Service, error) {
	return []*domain.Service{{Code: "quick_wash", Name: "Quick Wash"}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(repo *fakeRepo) *Service {
	return NewService(repo, fakeCatalog{}, time.UTC, "UTC", nopLogger{})
}

func booked(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:                 id,
		CustomerName:       "Rami Khoury",
		Phone:              "+961-3-123456",
		PrimaryServiceCode: "quick_wash",
		ResourceType:       "wash",
		Start:              time.Date(2025, 10, 13, 7, 0, 0, 0, time.UTC),
		End:                time.Date(2025, 10, 13, 8, 0, 0, 0, time.UTC),
		Status:             domain.StatusBooked,
	}
}

func TestGetByID_ResolvesServiceName(t *testing.T) {
	repo := &fakeRepo{appts: map[int64]*domain.Appointment{1: booked(1)}}
	svc := newService(repo)

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Quick Wash", resp.ServiceName)
	assert.Equal(t, "2025-10-13T07:00:00Z", resp.Start)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(&fakeRepo{appts: map[int64]*domain.Appointment{}})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_BookedAppointment(t *testing.T) {
	repo := &fakeRepo{appts: map[int64]*domain.Appointment{1: booked(1)}}
	svc := newService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{Reason: "customer request"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), repo.cancelledID)
	assert.Equal(t, "customer request", repo.cancelledReason)
}

func TestCancel_DoneAppointment(t *testing.T) {
	done := booked(1)
	done.Status = domain.StatusDone
	svc := newService(&fakeRepo{appts: map[int64]*domain.Appointment{1: done}})

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeRepo{appts: map[int64]*domain.Appointment{1: booked(1)}}
	svc := newService(repo)

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "in_progress"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, repo.updatedStatus)
}

func TestUpdateStatus_RejectsUnknownAndCanceled(t *testing.T) {
	svc := newService(&fakeRepo{appts: map[int64]*domain.Appointment{1: booked(1)}})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "parked"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// отмена только через Cancel, с причиной
	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "canceled"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetByRange_InvalidRange(t *testing.T) {
	svc := newService(&fakeRepo{appts: map[int64]*domain.Appointment{}})

	from := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	_, err := svc.GetByRange(context.Background(), &models.GetAppointmentsRequest{From: from, To: from})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestExportFeed_SkipsCanceled(t *testing.T) {
	canceled := booked(2)
	canceled.Status = domain.StatusCanceled
	repo := &fakeRepo{appts: map[int64]*domain.Appointment{1: booked(1), 2: canceled}}
	svc := newService(repo)

	feed, err := svc.ExportFeed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(feed, "BEGIN:VEVENT"))
	assert.Contains(t, feed, "UID:appt-1@carshop")
	assert.NotContains(t, feed, "BEGIN:VALARM")
}
