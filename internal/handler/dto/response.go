package dto

import (
	"time"

	"github.com/russkiih/bookapp/internal/domain"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID            int64  `json:"id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	ServiceID     *int64 `json:"service_id"`
	ServiceName   string `json:"service_name"`
	BookingDate   string `json:"booking_date"`
	BookingTime   string `json:"booking_time"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type BookingCreatedResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type ServiceResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}

type WorkingHoursResponse struct {
	ID          int64  `json:"id"`
	Day         string `json:"day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

type BookingOptionsResponse struct {
	Services  []ServiceResponse `json:"services"`
	TimeSlots []string          `json:"time_slots"`
}

type DashboardResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Loading  bool              `json:"loading"`
	Alert    string            `json:"alert,omitempty"`
}

type SettingsResponse struct {
	Services     []ServiceResponse      `json:"services"`
	WorkingHours []WorkingHoursResponse `json:"working_hours"`
	Loading      bool                   `json:"loading"`
	Alert        string                 `json:"alert,omitempty"`
}

type LoginResponse struct {
	Redirect string `json:"redirect"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		BookingDate:   b.BookingDate.Format(dateLayout),
		BookingTime:   b.BookingTime,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:       s.ID,
		Name:     s.Name,
		Duration: s.Duration,
		Price:    s.Price,
	}
}

func ToWorkingHoursResponse(wh *domain.WorkingHours) WorkingHoursResponse {
	return WorkingHoursResponse{
		ID:          wh.ID,
		Day:         wh.Day,
		StartTime:   wh.StartTime,
		EndTime:     wh.EndTime,
		IsAvailable: wh.IsAvailable,
	}
}

func ToBookingOptionsResponse(o *domain.BookingOptions) BookingOptionsResponse {
	return BookingOptionsResponse{
		Services:  toServiceResponses(o.Services),
		TimeSlots: o.TimeSlots,
	}
}

func ToDashboardResponse(v domain.DashboardView) DashboardResponse {
	bookings := make([]BookingResponse, 0, len(v.Bookings))
	for _, b := range v.Bookings {
		bookings = append(bookings, ToBookingResponse(b))
	}

	return DashboardResponse{
		Bookings: bookings,
		Loading:  v.Loading,
		Alert:    v.Alert,
	}
}

func ToSettingsResponse(v domain.SettingsView) SettingsResponse {
	hours := make([]WorkingHoursResponse, 0, len(v.WorkingHours))
	for _, wh := range v.WorkingHours {
		hours = append(hours, ToWorkingHoursResponse(wh))
	}

	return SettingsResponse{
		Services:     toServiceResponses(v.Services),
		WorkingHours: hours,
		Loading:      v.Loading,
		Alert:        v.Alert,
	}
}

func toServiceResponses(services []*domain.Service) []ServiceResponse {
	resp := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, ToServiceResponse(s))
	}
	return resp
}

// ParseDate parses the booking form's calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
