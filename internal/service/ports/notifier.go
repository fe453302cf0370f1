package ports

import (
	"context"

	"github.com/russkiih/bookapp/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyBookingStatusChanged(ctx context.Context, b *domain.Booking)
}
