package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/russkiih/bookapp/internal/domain"
	"github.com/russkiih/bookapp/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	catalog     ports.ServiceCatalog
	notifier    ports.BookingNotifier
	validate    *validator.Validate
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	catalog ports.ServiceCatalog,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		notifier:    notifier,
		validate:    newValidator(),
		logger:      logger,
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return domain.IsTimeSlot(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

func (s *BookingService) Options(ctx context.Context) (*domain.BookingOptions, error) {
	services, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	return &domain.BookingOptions{
		Services:  services,
		TimeSlots: domain.TimeSlots,
	}, nil
}

// Submit validates the form input, resolves the selected service and inserts
// a pending booking with the contact fields exactly as entered. There is
// exactly one insert attempt per call.
func (s *BookingService) Submit(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, describeValidation(err))
	}

	svc, err := s.catalog.GetByID(ctx, input.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: unknown service", domain.ErrValidation)
		}
		return nil, fmt.Errorf("resolve service: %w", err)
	}

	serviceID := svc.ID
	booking := &domain.Booking{
		CustomerName:  input.Name,
		CustomerEmail: input.Email,
		CustomerPhone: input.Phone,
		ServiceID:     &serviceID,
		ServiceName:   svc.Name,
		BookingDate:   input.Date,
		BookingTime:   input.TimeSlot,
		Status:        domain.BookingStatusPending,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		// the service was deleted after it was resolved
		if errors.Is(err, domain.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: unknown service", domain.ErrValidation)
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", booking.ID),
		logger.String("service", booking.ServiceName),
		logger.String("date", booking.BookingDate.Format("2006-01-02")),
		logger.String("time", booking.BookingTime),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

var fieldNames = map[string]string{
	"ServiceID": "service_id",
	"TimeSlot":  "time_slot",
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name, ok := fieldNames[fe.Field()]
		if !ok {
			name = strings.ToLower(fe.Field())
		}

		switch fe.Tag() {
		case "required", "notblank", "gt":
			fields = append(fields, name+" is required")
		case "email":
			fields = append(fields, name+" must be a valid email")
		case "timeslot":
			fields = append(fields, name+" must be one of the offered slots")
		default:
			fields = append(fields, name+" is invalid")
		}
	}
	return strings.Join(fields, ", ")
}
