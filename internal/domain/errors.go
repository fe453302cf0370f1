package domain

import "errors"

var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrWorkingHoursNotFound = errors.New("working hours not found")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrSessionNotFound      = errors.New("session not found")
)

var (
	ErrInvalidTransition = errors.New("booking status transition not allowed")
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrValidation = errors.New("validation error")
)
