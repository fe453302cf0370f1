package notification

import (
	"context"

	"github.com/russkiih/bookapp/internal/domain"
	"github.com/russkiih/bookapp/internal/service/ports"
)

// Fanout delivers every notification to each notifier in order.
type Fanout []ports.BookingNotifier

func (f Fanout) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	for _, n := range f {
		n.NotifyBookingCreated(ctx, b)
	}
}

func (f Fanout) NotifyBookingStatusChanged(ctx context.Context, b *domain.Booking) {
	for _, n := range f {
		n.NotifyBookingStatusChanged(ctx, b)
	}
}
