package domain

// Alert messages shown to the user. Every failure of an operation maps to
// the same message.
const (
	AlertSubmitBooking      = "Error submitting booking. Please try again."
	AlertFetchBookings      = "Error fetching bookings"
	AlertUpdateBooking      = "Error updating booking"
	AlertFetchServices      = "Error fetching services"
	AlertFetchWorkingHours  = "Error fetching working hours"
	AlertAddService         = "Error adding service"
	AlertDeleteService      = "Error deleting service"
	AlertUpdateWorkingHours = "Error updating working hours"

	MessageBookingSubmitted = "Booking submitted successfully!"
)

type DashboardView struct {
	Bookings []*Booking `json:"bookings"`
	Loading  bool       `json:"loading"`
	Alert    string     `json:"alert,omitempty"`
}

type SettingsView struct {
	Services     []*Service      `json:"services"`
	WorkingHours []*WorkingHours `json:"working_hours"`
	Loading      bool            `json:"loading"`
	Alert        string          `json:"alert,omitempty"`
}
