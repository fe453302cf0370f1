package service

import (
	"context"
	"fmt"

	"github.com/russkiih/bookapp/internal/domain"
	"github.com/russkiih/bookapp/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// DashboardService backs the admin bookings list. Every mutation is followed
// by a full re-fetch; the re-fetched view is what callers render.
type DashboardService struct {
	bookingRepo ports.BookingRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewDashboardService(
	bookingRepo ports.BookingRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *DashboardService {
	return &DashboardService{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *DashboardService) Load(ctx context.Context) (view domain.DashboardView, err error) {
	view = domain.DashboardView{Bookings: []*domain.Booking{}, Loading: true}
	defer func() { view.Loading = false }()

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to fetch bookings", logger.String("error", err.Error()))
		view.Alert = domain.AlertFetchBookings
		return view, fmt.Errorf("list bookings: %w", err)
	}

	if bookings != nil {
		view.Bookings = bookings
	}
	return view, nil
}

func (s *DashboardService) Confirm(ctx context.Context, id int64) (domain.DashboardView, error) {
	return s.setStatus(ctx, id, domain.BookingStatusConfirmed)
}

func (s *DashboardService) Cancel(ctx context.Context, id int64) (domain.DashboardView, error) {
	return s.setStatus(ctx, id, domain.BookingStatusCancelled)
}

func (s *DashboardService) setStatus(ctx context.Context, id int64, status domain.BookingStatus) (domain.DashboardView, error) {
	booking, err := s.bookingRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Error("failed to update booking",
			logger.Int64("booking_id", id),
			logger.String("status", string(status)),
			logger.String("error", err.Error()),
		)
		return domain.DashboardView{Alert: domain.AlertUpdateBooking}, fmt.Errorf("update booking status: %w", err)
	}

	s.logger.Info("booking status updated",
		logger.Int64("booking_id", id),
		logger.String("status", string(status)),
	)

	go s.notifier.NotifyBookingStatusChanged(context.WithoutCancel(ctx), booking)

	return s.Load(ctx)
}
