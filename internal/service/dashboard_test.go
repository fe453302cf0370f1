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

// memBookings applies the same transition rules as the SQL repository.
type memBookings struct {
	mu   sync.Mutex
	rows []*domain.Booking
}

func (m *memBookings) Create(_ context.Context, b *domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, b)
	return nil
}

func (m *memBookings) List(context.Context) ([]*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Booking, 0, len(m.rows))
	for i := len(m.rows) - 1; i >= 0; i-- {
		cp := *m.rows[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memBookings) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.rows {
		if b.ID != id {
			continue
		}
		if !b.Status.CanTransitionTo(status) {
			return nil, domain.ErrInvalidTransition
		}
		b.Status = status
		cp := *b
		return &cp, nil
	}
	return nil, domain.ErrBookingNotFound
}

func newStatusNotifier(t *testing.T) *mocks.MockBookingNotifier {
	notifier := mocks.NewMockBookingNotifier(t)
	notifier.EXPECT().NotifyBookingStatusChanged(mock.Anything, mock.Anything).Return().Maybe()
	return notifier
}

func TestDashboardService_Load(t *testing.T) {
	repo := &memBookings{}
	_ = repo.Create(context.Background(), &domain.Booking{CustomerName: "first", Status: domain.BookingStatusPending})
	_ = repo.Create(context.Background(), &domain.Booking{CustomerName: "second", Status: domain.BookingStatusPending})

	svc := NewDashboardService(repo, newStatusNotifier(t), newTestLogger(t))

	view, err := svc.Load(context.Background())

	require.NoError(t, err)
	assert.False(t, view.Loading)
	assert.Empty(t, view.Alert)
	require.Len(t, view.Bookings, 2)
	assert.Equal(t, "second", view.Bookings[0].CustomerName)
}

func TestDashboardService_Load_Error(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewDashboardService(repo, notifier, newTestLogger(t))

	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

	view, err := svc.Load(context.Background())

	require.Error(t, err)
	assert.False(t, view.Loading)
	assert.Equal(t, domain.AlertFetchBookings, view.Alert)
	assert.NotNil(t, view.Bookings)
	assert.Empty(t, view.Bookings)
}

func TestDashboardService_Confirm_Twice(t *testing.T) {
	repo := &memBookings{}
	_ = repo.Create(context.Background(), &domain.Booking{CustomerName: "Jane", Status: domain.BookingStatusPending})

	svc := NewDashboardService(repo, newStatusNotifier(t), newTestLogger(t))

	_, err := svc.Confirm(context.Background(), 1)
	require.NoError(t, err)

	view, err := svc.Confirm(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, view.Bookings, 1)
	assert.Equal(t, domain.BookingStatusConfirmed, view.Bookings[0].Status)
	assert.False(t, view.Loading)
}

func TestDashboardService_Cancel_ThenConfirmRejected(t *testing.T) {
	repo := &memBookings{}
	_ = repo.Create(context.Background(), &domain.Booking{Status: domain.BookingStatusPending})

	svc := NewDashboardService(repo, newStatusNotifier(t), newTestLogger(t))

	view, err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, view.Bookings[0].Status)

	view, err = svc.Confirm(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.AlertUpdateBooking, view.Alert)
	assert.False(t, view.Loading)
}

func TestDashboardService_Confirm_NotifiesAndRefetches(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewDashboardService(repo, notifier, newTestLogger(t))

	updated := &domain.Booking{ID: 7, Status: domain.BookingStatusConfirmed}
	repo.EXPECT().UpdateStatus(mock.Anything, int64(7), domain.BookingStatusConfirmed).Return(updated, nil).Once()
	repo.EXPECT().List(mock.Anything).Return([]*domain.Booking{updated}, nil).Once()

	notified := make(chan *domain.Booking, 1)
	notifier.EXPECT().NotifyBookingStatusChanged(mock.Anything, updated).
		Run(func(_ context.Context, b *domain.Booking) { notified <- b }).
		Return()

	view, err := svc.Confirm(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, []*domain.Booking{updated}, view.Bookings)
	assert.Equal(t, updated, <-notified)
}

func TestDashboardService_Confirm_UpdateError(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewDashboardService(repo, notifier, newTestLogger(t))

	repo.EXPECT().UpdateStatus(mock.Anything, int64(3), domain.BookingStatusConfirmed).
		Return(nil, domain.ErrBookingNotFound)

	view, err := svc.Confirm(context.Background(), 3)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.Equal(t, domain.AlertUpdateBooking, view.Alert)
	assert.False(t, view.Loading)
}
