package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avtodetail/carshop-booking/internal/domain"
	catalogRepo "github.com/avtodetail/carshop-booking/internal/infra/storage/servicecatalog"
	"github.com/avtodetail/carshop-booking/internal/scheduling"
)

type fakeCatalog struct {
	services map[string]*domain.Service
}

func (c *fakeCatalog) GetByCode(_ context.Context, code string) (*domain.Service, error) {
	svc, ok := c.services[code]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return svc, nil
}

func (c *fakeCatalog) GetByCodes(_ context.Context, codes []string) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0, len(codes))
	for _, code := range codes {
		svc, ok := c.services[code]
		if !ok {
			return nil, catalogRepo.ErrServiceNotFound
		}
		out = append(out, svc)
	}
	return out, nil
}

// fakeStore хранилище занятых интервалов, совместимое с scheduling.OverlapCounter
type fakeStore struct {
	intervals []storedInterval
}

type storedInterval struct {
	resourceType string
	start, end   time.Time
}

func (s *fakeStore) book(resourceType string, start, end time.Time) {
	s.intervals = append(s.intervals, storedInterval{resourceType, start, end})
}

func (s *fakeStore) CountOverlapping(_ context.Context, resourceType string, start, end time.Time) (int, error) {
	count := 0
	for _, iv := range s.intervals {
		if iv.resourceType != resourceType {
			continue
		}
		if iv.start.Before(end) && start.Before(iv.end) {
			count++
		}
	}
	return count, nil
}

type fakeRepo struct {
	store  *fakeStore
	nextID int64
}

func (r *fakeRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.nextID++
	created := *appt
	created.ID = r.nextID
	created.CreatedAt = time.Date(2025, 10, 12, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	r.store.book(appt.ResourceType, appt.Start, appt.End)
	return &created, nil
}

// fakeTxManager выполняет fn без транзакции; before имитирует конкурентную
// запись, закоммиченную между перечислением слотов и нашей транзакцией
type fakeTxManager struct {
	before func()
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.before != nil {
		m.before()
	}
	return fn(ctx)
}

type fakeNotifier struct {
	enabled bool
	sent    []string
}

func (n *fakeNotifier) Enabled() bool { return n.enabled }

func (n *fakeNotifier) SendMessage(_ context.Context, text string) error {
	n.sent = append(n.sent, text)
	return nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newCatalog() *fakeCatalog {
	return &fakeCatalog{services: map[string]*domain.Service{
		"quick_wash": {
			ID: 1, Code: "quick_wash", Name: "Quick Wash",
			Price: 25, ResourceType: "wash", DurationMinutes: 60,
		},
		"full_polish": {
			ID: 2, Code: "full_polish", Name: "Full Polish",
			Price: 400, ResourceType: "polish", DurationDays: 4,
		},
		"addon_headlight": {
			ID: 3, Code: "addon_headlight", Name: "Headlight Restoration",
			Price: 25, ResourceType: "detail", DurationMinutes: 30, IsAddon: true,
		},
	}}
}

type env struct {
	uc       *UseCase
	store    *fakeStore
	repo     *fakeRepo
	notifier *fakeNotifier
	tx       *fakeTxManager
}

func newEnv(t *testing.T) *env {
	t.Helper()

	hours := scheduling.HoursTable{
		time.Monday:    {OpenHour: 9, CloseHour: 19},
		time.Tuesday:   {OpenHour: 9, CloseHour: 19},
		time.Wednesday: {OpenHour: 9, CloseHour: 19},
		time.Thursday:  {OpenHour: 9, CloseHour: 19},
		time.Friday:    {OpenHour: 9, CloseHour: 19},
		time.Saturday:  {OpenHour: 9, CloseHour: 17},
	}
	cal := scheduling.NewCalendar(hours, time.UTC)

	store := &fakeStore{}
	capacity := scheduling.NewCapacityChecker(store, scheduling.CapacityTable{
		"wash": 2, "detail": 1, "polish": 1,
	})

	repo := &fakeRepo{store: store}
	notifier := &fakeNotifier{enabled: true}
	tx := &fakeTxManager{}

	uc := NewUseCase(repo, newCatalog(), cal, scheduling.NewProjector(cal), capacity,
		tx, notifier, 30, nopLogger{})
	uc.timeProvider = fixedTime{t: time.Date(2025, 10, 12, 8, 0, 0, 0, time.UTC)}

	return &env{uc: uc, store: store, repo: repo, notifier: notifier, tx: tx}
}

// 2025-10-13 - понедельник
func monday(hour, min int) time.Time {
	return time.Date(2025, 10, 13, hour, min, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		CustomerName: "Rami Khoury",
		Phone:        "+961-3-123456",
		CarInfo:      "BMW 320i",
		ServiceCode:  "quick_wash",
		Start:        monday(10, 0),
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	e := newEnv(t)

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "quick_wash", resp.PrimaryServiceCode)
	assert.Equal(t, "wash", resp.ResourceType)
	assert.Equal(t, monday(10, 0), resp.Start)
	assert.Equal(t, monday(11, 0), resp.End)
	assert.Equal(t, int64(25), resp.TotalPrice)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)

	require.Len(t, e.notifier.sent, 1)
	assert.Contains(t, e.notifier.sent[0], "Rami Khoury")
	assert.Contains(t, e.notifier.sent[0], "Quick Wash")
}

func TestExecute_AddonExtendsSpan(t *testing.T) {
	e := newEnv(t)

	req := validRequest()
	req.AddonCodes = []string{"addon_headlight"}

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 60 минут мойки + 30 минут дополнения
	assert.Equal(t, monday(11, 30), resp.End)
	assert.Equal(t, int64(50), resp.TotalPrice)
}

func TestExecute_SlotSaturated(t *testing.T) {
	e := newEnv(t)

	// Ёмкость мойки 2, обе единицы заняты на весь день
	e.store.book("wash", monday(9, 0), monday(19, 0))
	e.store.book("wash", monday(9, 0), monday(19, 0))

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, e.notifier.sent)
}

func TestExecute_ConcurrentBookingLosesRace(t *testing.T) {
	e := newEnv(t)

	// Конкурент занимает последние места между проверкой доступности
	// снаружи и нашей транзакцией - повторная проверка внутри ловит это
	e.store.book("wash", monday(9, 0), monday(19, 0))
	e.tx.before = func() {
		e.store.book("wash", monday(9, 30), monday(11, 30))
	}

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, int64(0), e.repo.nextID)
}

func TestExecute_AddonResourceSaturated(t *testing.T) {
	e := newEnv(t)

	// Категория detail с ёмкостью 1 занята - дополнение не помещается,
	// хотя для самой мойки места есть
	e.store.book("detail", monday(9, 0), monday(19, 0))

	req := validRequest()
	req.AddonCodes = []string{"addon_headlight"}

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_MultiDayService(t *testing.T) {
	e := newEnv(t)

	req := validRequest()
	req.ServiceCode = "full_polish"
	req.Start = monday(9, 0)

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 4 рабочих дня с понедельника: окончание в четверг на закрытии
	assert.Equal(t, time.Date(2025, 10, 16, 19, 0, 0, 0, time.UTC), resp.End)
}

func TestExecute_MultiDayMustStartAtOpen(t *testing.T) {
	e := newEnv(t)

	req := validRequest()
	req.ServiceCode = "full_polish"
	req.Start = monday(10, 0)

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ShopClosed(t *testing.T) {
	e := newEnv(t)

	req := validRequest()
	// 2025-10-12 - воскресенье
	req.Start = time.Date(2025, 10, 12, 10, 0, 0, 0, time.UTC)

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrShopClosed)
}

func TestExecute_StartOffGrid(t *testing.T) {
	e := newEnv(t)

	req := validRequest()
	req.Start = monday(10, 15)

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_StartTooLateToFit(t *testing.T) {
	e := newEnv(t)

	req := validRequest()
	req.Start = monday(18, 30)

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_StartInPast(t *testing.T) {
	e := newEnv(t)

	req := validRequest()
	req.Start = time.Date(2025, 10, 10, 10, 0, 0, 0, time.UTC)

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStartInPast)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	e := newEnv(t)

	req := validRequest()
	req.ServiceCode = "missing"

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_PrimaryIsAddon(t *testing.T) {
	e := newEnv(t)

	req := validRequest()
	req.ServiceCode = "addon_headlight"

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotPrimaryService)
}

func TestExecute_InvalidInput(t *testing.T) {
	e := newEnv(t)

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty name", func(r *Request) { r.CustomerName = "  " }},
		{"empty phone", func(r *Request) { r.Phone = "" }},
		{"empty service", func(r *Request) { r.ServiceCode = "" }},
		{"zero start", func(r *Request) { r.Start = time.Time{} }},
		{"duplicate addons", func(r *Request) {
			r.AddonCodes = []string{"addon_headlight", "addon_headlight"}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			_, err := e.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
