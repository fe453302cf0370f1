package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/russkiih/bookapp/internal/domain"
	"github.com/russkiih/bookapp/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memCatalog struct {
	mu     sync.Mutex
	nextID int64
	rows   []*domain.Service
}

func newMemCatalog(names ...string) *memCatalog {
	c := &memCatalog{}
	for _, n := range names {
		_ = c.Create(context.Background(), &domain.Service{Name: n, Duration: 30, Price: 10})
	}
	return c
}

func (c *memCatalog) List(context.Context) ([]*domain.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*domain.Service, len(c.rows))
	copy(out, c.rows)
	return out, nil
}

func (c *memCatalog) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.rows {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrServiceNotFound
}

func (c *memCatalog) Create(_ context.Context, s *domain.Service) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	s.ID = c.nextID
	c.rows = append(c.rows, s)
	return nil
}

func (c *memCatalog) Delete(_ context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.rows {
		if s.ID == id {
			c.rows = append(c.rows[:i], c.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrServiceNotFound
}

type memHours struct {
	mu   sync.Mutex
	rows []*domain.WorkingHours
}

func newMemHours() *memHours {
	h := &memHours{}
	for i, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		h.rows = append(h.rows, &domain.WorkingHours{
			ID:          int64(i + 1),
			Day:         day,
			StartTime:   "09:00",
			EndTime:     "17:00",
			IsAvailable: i < 5,
		})
	}
	return h
}

func (h *memHours) List(context.Context) ([]*domain.WorkingHours, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*domain.WorkingHours, 0, len(h.rows))
	for _, r := range h.rows {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (h *memHours) SetAvailability(_ context.Context, id int64, available bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.rows {
		if r.ID == id {
			r.IsAvailable = available
			return nil
		}
	}
	return domain.ErrWorkingHoursNotFound
}

func TestSettingsService_Load(t *testing.T) {
	svc := NewSettingsService(newMemCatalog("Haircut", "Styling"), newMemHours(), newTestLogger(t))

	view, err := svc.Load(context.Background())

	require.NoError(t, err)
	assert.False(t, view.Loading)
	assert.Empty(t, view.Alert)
	assert.Len(t, view.Services, 2)
	assert.Len(t, view.WorkingHours, 7)
}

func TestSettingsService_Load_ServicesFail(t *testing.T) {
	catalog := mocks.NewMockServiceCatalog(t)
	hours := mocks.NewMockWorkingHoursRepo(t)

	svc := NewSettingsService(catalog, hours, newTestLogger(t))

	catalog.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))
	hours.EXPECT().List(mock.Anything).Return([]*domain.WorkingHours{{ID: 1, Day: "Monday"}}, nil)

	view, err := svc.Load(context.Background())

	require.Error(t, err)
	assert.False(t, view.Loading)
	assert.Equal(t, domain.AlertFetchServices, view.Alert)
	assert.Empty(t, view.Services)
	assert.Len(t, view.WorkingHours, 1)
}

func TestSettingsService_Load_HoursFail(t *testing.T) {
	catalog := mocks.NewMockServiceCatalog(t)
	hours := mocks.NewMockWorkingHoursRepo(t)

	svc := NewSettingsService(catalog, hours, newTestLogger(t))

	catalog.EXPECT().List(mock.Anything).Return([]*domain.Service{{ID: 1}}, nil)
	hours.EXPECT().List(mock.Anything).Return(nil, errors.New("timeout"))

	view, err := svc.Load(context.Background())

	require.Error(t, err)
	assert.False(t, view.Loading)
	assert.Equal(t, domain.AlertFetchWorkingHours, view.Alert)
	assert.Len(t, view.Services, 1)
	assert.NotNil(t, view.WorkingHours)
}

func TestSettingsService_AddService(t *testing.T) {
	catalog := newMemCatalog("Haircut")
	svc := NewSettingsService(catalog, newMemHours(), newTestLogger(t))

	view, err := svc.AddService(context.Background(), domain.CreateServiceInput{
		Name:     " Beard Trim ",
		Duration: "20",
		Price:    "15.50",
	})

	require.NoError(t, err)
	require.Len(t, view.Services, 2)
	added := view.Services[1]
	assert.Equal(t, "Beard Trim", added.Name)
	assert.Equal(t, 20, added.Duration)
	assert.InDelta(t, 15.5, added.Price, 0.001)
}

func TestSettingsService_AddService_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateServiceInput
	}{
		{"empty name", domain.CreateServiceInput{Name: " ", Duration: "30", Price: "10"}},
		{"duration not a number", domain.CreateServiceInput{Name: "X", Duration: "half hour", Price: "10"}},
		{"fractional duration", domain.CreateServiceInput{Name: "X", Duration: "30.5", Price: "10"}},
		{"price not a number", domain.CreateServiceInput{Name: "X", Duration: "30", Price: "ten"}},
		{"price NaN", domain.CreateServiceInput{Name: "X", Duration: "30", Price: "NaN"}},
		{"price Inf", domain.CreateServiceInput{Name: "X", Duration: "30", Price: "+Inf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := mocks.NewMockServiceCatalog(t)
			hours := mocks.NewMockWorkingHoursRepo(t)

			svc := NewSettingsService(catalog, hours, newTestLogger(t))

			view, err := svc.AddService(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, domain.AlertAddService, view.Alert)
			assert.False(t, view.Loading)
		})
	}
}

func TestSettingsService_AddService_NoBoundsCheck(t *testing.T) {
	svc := NewSettingsService(newMemCatalog(), newMemHours(), newTestLogger(t))

	view, err := svc.AddService(context.Background(), domain.CreateServiceInput{
		Name: "Odd", Duration: "-5", Price: "-1",
	})

	require.NoError(t, err)
	require.Len(t, view.Services, 1)
	assert.Equal(t, -5, view.Services[0].Duration)
}

func TestSettingsService_DeleteService_RemovesExactlyOne(t *testing.T) {
	catalog := newMemCatalog("Haircut", "Hair Coloring", "Styling")
	svc := NewSettingsService(catalog, newMemHours(), newTestLogger(t))

	view, err := svc.DeleteService(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, view.Services, 2)
	assert.Equal(t, "Haircut", view.Services[0].Name)
	assert.Equal(t, "Styling", view.Services[1].Name)
}

func TestSettingsService_DeleteService_NotFound(t *testing.T) {
	svc := NewSettingsService(newMemCatalog("Haircut"), newMemHours(), newTestLogger(t))

	view, err := svc.DeleteService(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
	assert.Equal(t, domain.AlertDeleteService, view.Alert)
}

func TestSettingsService_SetAvailability_OnlyFlagChanges(t *testing.T) {
	hours := newMemHours()
	svc := NewSettingsService(newMemCatalog(), hours, newTestLogger(t))

	before, err := hours.List(context.Background())
	require.NoError(t, err)

	view, err := svc.SetAvailability(context.Background(), 6, true)
	require.NoError(t, err)

	require.Len(t, view.WorkingHours, len(before))
	for i, row := range view.WorkingHours {
		want := *before[i]
		if row.ID == 6 {
			want.IsAvailable = true
		}
		assert.Equal(t, want, *row)
	}
}

func TestSettingsService_SetAvailability_NotFound(t *testing.T) {
	svc := NewSettingsService(newMemCatalog(), newMemHours(), newTestLogger(t))

	view, err := svc.SetAvailability(context.Background(), 42, false)

	assert.ErrorIs(t, err, domain.ErrWorkingHoursNotFound)
	assert.Equal(t, domain.AlertUpdateWorkingHours, view.Alert)
	assert.False(t, view.Loading)
}
