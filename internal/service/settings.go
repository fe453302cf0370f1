package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/russkiih/bookapp/internal/domain"
	"github.com/russkiih/bookapp/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

type SettingsService struct {
	catalog      ports.ServiceCatalog
	workingHours ports.WorkingHoursRepo
	logger       logger.Logger
}

func NewSettingsService(
	catalog ports.ServiceCatalog,
	workingHours ports.WorkingHoursRepo,
	logger logger.Logger,
) *SettingsService {
	return &SettingsService{
		catalog:      catalog,
		workingHours: workingHours,
		logger:       logger,
	}
}

// Load fetches services and working hours independently. The view leaves the
// loading state only after both fetches have settled.
func (s *SettingsService) Load(ctx context.Context) (view domain.SettingsView, err error) {
	view = domain.SettingsView{
		Services:     []*domain.Service{},
		WorkingHours: []*domain.WorkingHours{},
		Loading:      true,
	}
	defer func() { view.Loading = false }()

	var (
		services    []*domain.Service
		hours       []*domain.WorkingHours
		servicesErr error
		hoursErr    error
	)

	// neither fetch cancels the other, so both goroutines always return nil
	var g errgroup.Group
	g.Go(func() error {
		services, servicesErr = s.catalog.List(ctx)
		return nil
	})
	g.Go(func() error {
		hours, hoursErr = s.workingHours.List(ctx)
		return nil
	})
	_ = g.Wait()

	if servicesErr != nil {
		s.logger.Error("failed to fetch services", logger.String("error", servicesErr.Error()))
		view.Alert = domain.AlertFetchServices
	} else if services != nil {
		view.Services = services
	}

	if hoursErr != nil {
		s.logger.Error("failed to fetch working hours", logger.String("error", hoursErr.Error()))
		if view.Alert == "" {
			view.Alert = domain.AlertFetchWorkingHours
		}
	} else if hours != nil {
		view.WorkingHours = hours
	}

	if err = errors.Join(servicesErr, hoursErr); err != nil {
		return view, fmt.Errorf("load settings: %w", err)
	}
	return view, nil
}

func (s *SettingsService) AddService(ctx context.Context, input domain.CreateServiceInput) (domain.SettingsView, error) {
	svc, err := parseServiceInput(input)
	if err != nil {
		s.logger.Warn("rejected service input", logger.String("error", err.Error()))
		return domain.SettingsView{Alert: domain.AlertAddService}, err
	}

	if err = s.catalog.Create(ctx, svc); err != nil {
		s.logger.Error("failed to add service",
			logger.String("name", svc.Name),
			logger.String("error", err.Error()),
		)
		return domain.SettingsView{Alert: domain.AlertAddService}, fmt.Errorf("create service: %w", err)
	}

	s.logger.Info("service added",
		logger.Int64("service_id", svc.ID),
		logger.String("name", svc.Name),
	)

	return s.Load(ctx)
}

func (s *SettingsService) DeleteService(ctx context.Context, id int64) (domain.SettingsView, error) {
	if err := s.catalog.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete service",
			logger.Int64("service_id", id),
			logger.String("error", err.Error()),
		)
		return domain.SettingsView{Alert: domain.AlertDeleteService}, fmt.Errorf("delete service: %w", err)
	}

	s.logger.Info("service deleted", logger.Int64("service_id", id))

	return s.Load(ctx)
}

// SetAvailability changes only the availability flag of a working-hours row.
func (s *SettingsService) SetAvailability(ctx context.Context, id int64, available bool) (domain.SettingsView, error) {
	if err := s.workingHours.SetAvailability(ctx, id, available); err != nil {
		s.logger.Error("failed to update working hours",
			logger.Int64("working_hours_id", id),
			logger.String("error", err.Error()),
		)
		return domain.SettingsView{Alert: domain.AlertUpdateWorkingHours}, fmt.Errorf("update working hours: %w", err)
	}

	s.logger.Info("working hours updated",
		logger.Int64("working_hours_id", id),
		logger.Any("is_available", available),
	)

	return s.Load(ctx)
}

// parseServiceInput rejects values that do not parse as numbers. Sign and
// range are left to the operator.
func parseServiceInput(input domain.CreateServiceInput) (*domain.Service, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	duration, err := strconv.Atoi(strings.TrimSpace(input.Duration))
	if err != nil {
		return nil, fmt.Errorf("%w: duration must be a whole number of minutes", domain.ErrValidation)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(input.Price), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, fmt.Errorf("%w: price must be a number", domain.ErrValidation)
	}

	return &domain.Service{
		Name:     name,
		Duration: duration,
		Price:    price,
	}, nil
}
