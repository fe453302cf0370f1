package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// TimeSlots are the hourly slots offered by the booking form.
var TimeSlots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00",
}

func IsTimeSlot(s string) bool {
	for _, slot := range TimeSlots {
		if slot == s {
			return true
		}
	}
	return false
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// TransitionSources returns the statuses a booking may be in to be moved to target.
// Repeating the current status is allowed so confirm/cancel stay idempotent.
func TransitionSources(target BookingStatus) []BookingStatus {
	switch target {
	case BookingStatusConfirmed:
		return []BookingStatus{BookingStatusPending, BookingStatusConfirmed}
	case BookingStatusCancelled:
		return []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled}
	default:
		return nil
	}
}

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, src := range TransitionSources(target) {
		if src == s {
			return true
		}
	}
	return false
}

type Booking struct {
	ID            int64         `json:"id"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	CustomerPhone string        `json:"customer_phone"`
	ServiceID     *int64        `json:"service_id"`
	ServiceName   string        `json:"service_name"`
	BookingDate   time.Time     `json:"booking_date"`
	BookingTime   string        `json:"booking_time"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

type CreateBookingInput struct {
	ServiceID int64     `validate:"required,gt=0"`
	Date      time.Time `validate:"required"`
	TimeSlot  string    `validate:"required,timeslot"`
	Name      string    `validate:"required,notblank"`
	Email     string    `validate:"required,notblank,email"`
	Phone     string    `validate:"required,notblank"`
}

// BookingOptions is what the public form offers to choose from.
type BookingOptions struct {
	Services  []*Service `json:"services"`
	TimeSlots []string   `json:"time_slots"`
}
