package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/russkiih/bookapp/internal/domain"
	"github.com/russkiih/bookapp/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func validInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		ServiceID: 1,
		Date:      time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		TimeSlot:  "10:00",
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "555-0100",
	}
}

func TestBookingService_Submit_CreatesPendingBooking(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	catalog := mocks.NewMockServiceCatalog(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, catalog, notifier, log)

	catalog.EXPECT().GetByID(mock.Anything, int64(1)).
		Return(&domain.Service{ID: 1, Name: "Haircut", Duration: 30, Price: 30}, nil)

	var stored *domain.Booking
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, b *domain.Booking) {
			b.ID = 42
			stored = b
		}).
		Return(nil).Once()

	notified := make(chan *domain.Booking, 1)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).
		Run(func(_ context.Context, b *domain.Booking) { notified <- b }).
		Return()

	booking, err := svc.Submit(context.Background(), validInput())

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int64(42), booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "Jane Doe", booking.CustomerName)
	assert.Equal(t, "jane@example.com", booking.CustomerEmail)
	assert.Equal(t, "555-0100", booking.CustomerPhone)
	assert.Equal(t, "Haircut", booking.ServiceName)
	require.NotNil(t, booking.ServiceID)
	assert.Equal(t, int64(1), *booking.ServiceID)
	assert.Equal(t, "2025-03-14", booking.BookingDate.Format("2006-01-02"))
	assert.Equal(t, "10:00", booking.BookingTime)

	select {
	case b := <-notified:
		assert.Equal(t, int64(42), b.ID)
	case <-time.After(time.Second):
		t.Fatal("booking-created notification was not sent")
	}
}

func TestBookingService_Submit_StoresFieldsVerbatim(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	catalog := mocks.NewMockServiceCatalog(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewBookingService(bookingRepo, catalog, notifier, newTestLogger(t))

	input := validInput()
	input.Name = "  Jane Doe "
	input.Phone = " +1 (555) 0100 "

	catalog.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Service{ID: 1, Name: "Haircut"}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	done := make(chan struct{})
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.Booking) { close(done) }).
		Return()

	booking, err := svc.Submit(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "  Jane Doe ", booking.CustomerName)
	assert.Equal(t, " +1 (555) 0100 ", booking.CustomerPhone)
	<-done
}

func TestBookingService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.CreateBookingInput)
		message string
	}{
		{"missing name", func(in *domain.CreateBookingInput) { in.Name = "   " }, "name is required"},
		{"missing phone", func(in *domain.CreateBookingInput) { in.Phone = "" }, "phone is required"},
		{"blank phone", func(in *domain.CreateBookingInput) { in.Phone = " \t" }, "phone is required"},
		{"blank email", func(in *domain.CreateBookingInput) { in.Email = "  " }, "email is required"},
		{"missing service", func(in *domain.CreateBookingInput) { in.ServiceID = 0 }, "service_id is required"},
		{"missing date", func(in *domain.CreateBookingInput) { in.Date = time.Time{} }, "date is required"},
		{"bad email", func(in *domain.CreateBookingInput) { in.Email = "not-an-email" }, "email must be a valid email"},
		{"unknown slot", func(in *domain.CreateBookingInput) { in.TimeSlot = "18:00" }, "time_slot must be one of the offered slots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo := mocks.NewMockBookingRepo(t)
			catalog := mocks.NewMockServiceCatalog(t)
			notifier := mocks.NewMockBookingNotifier(t)

			svc := NewBookingService(bookingRepo, catalog, notifier, newTestLogger(t))

			input := validInput()
			tt.mutate(&input)

			booking, err := svc.Submit(context.Background(), input)

			assert.Nil(t, booking)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestBookingService_Submit_UnknownService(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	catalog := mocks.NewMockServiceCatalog(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewBookingService(bookingRepo, catalog, notifier, newTestLogger(t))

	catalog.EXPECT().GetByID(mock.Anything, int64(1)).Return(nil, domain.ErrServiceNotFound)

	_, err := svc.Submit(context.Background(), validInput())

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "unknown service")
}

func TestBookingService_Submit_ServiceDeletedBeforeInsert(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	catalog := mocks.NewMockServiceCatalog(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewBookingService(bookingRepo, catalog, notifier, newTestLogger(t))

	catalog.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Service{ID: 1, Name: "Haircut"}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrServiceNotFound).Once()

	booking, err := svc.Submit(context.Background(), validInput())

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NotErrorIs(t, err, domain.ErrServiceNotFound)
	assert.Contains(t, err.Error(), "unknown service")
}

func TestBookingService_Submit_InsertFails(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	catalog := mocks.NewMockServiceCatalog(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewBookingService(bookingRepo, catalog, notifier, newTestLogger(t))

	catalog.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Service{ID: 1, Name: "Haircut"}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	booking, err := svc.Submit(context.Background(), validInput())

	assert.Nil(t, booking)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Options(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	catalog := mocks.NewMockServiceCatalog(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewBookingService(bookingRepo, catalog, notifier, newTestLogger(t))

	services := []*domain.Service{{ID: 1, Name: "Haircut"}, {ID: 2, Name: "Styling"}}
	catalog.EXPECT().List(mock.Anything).Return(services, nil)

	opts, err := svc.Options(context.Background())

	require.NoError(t, err)
	assert.Equal(t, services, opts.Services)
	assert.Equal(t, domain.TimeSlots, opts.TimeSlots)
}

func TestBookingService_Options_CatalogError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	catalog := mocks.NewMockServiceCatalog(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewBookingService(bookingRepo, catalog, notifier, newTestLogger(t))

	catalog.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

	opts, err := svc.Options(context.Background())

	assert.Nil(t, opts)
	assert.Error(t, err)
}
