package dto

type CreateBookingRequest struct {
	ServiceID int64  `json:"service_id" binding:"required,gt=0"`
	Date      string `json:"date"       binding:"required"`
	TimeSlot  string `json:"time_slot"  binding:"required"`
	Name      string `json:"name"       binding:"required"`
	Email     string `json:"email"      binding:"required"`
	Phone     string `json:"phone"      binding:"required"`
}

// CreateServiceRequest keeps the raw form strings; the settings service parses them.
type CreateServiceRequest struct {
	Name     string `json:"name"     binding:"required"`
	Duration string `json:"duration" binding:"required"`
	Price    string `json:"price"    binding:"required"`
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"    form:"email"    binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
