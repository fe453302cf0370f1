package domain

import "time"

// Service is a bookable offering from the catalog.
type Service struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Duration  int       `json:"duration"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateServiceInput carries raw form values; parsing happens in the service layer.
type CreateServiceInput struct {
	Name     string
	Duration string
	Price    string
}
