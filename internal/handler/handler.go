package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/russkiih/bookapp/internal/domain"
	"github.com/russkiih/bookapp/internal/handler/dto"
	"github.com/russkiih/bookapp/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Options(ctx context.Context) (*domain.BookingOptions, error)
	Submit(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
}

type DashboardSvc interface {
	Load(ctx context.Context) (domain.DashboardView, error)
	Confirm(ctx context.Context, id int64) (domain.DashboardView, error)
	Cancel(ctx context.Context, id int64) (domain.DashboardView, error)
}

type SettingsSvc interface {
	Load(ctx context.Context) (domain.SettingsView, error)
	AddService(ctx context.Context, input domain.CreateServiceInput) (domain.SettingsView, error)
	DeleteService(ctx context.Context, id int64) (domain.SettingsView, error)
	SetAvailability(ctx context.Context, id int64, available bool) (domain.SettingsView, error)
}

type AuthSvc interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context, session *domain.Session) error
}

type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type Handler struct {
	bookingService   BookingSvc
	dashboardService DashboardSvc
	settingsService  SettingsSvc
	authService      AuthSvc
	cookie           CookieConfig
}

func NewHandler(
	bookingService BookingSvc,
	dashboardService DashboardSvc,
	settingsService SettingsSvc,
	authService AuthSvc,
	cookie CookieConfig,
) *Handler {
	return &Handler{
		bookingService:   bookingService,
		dashboardService: dashboardService,
		settingsService:  settingsService,
		authService:      authService,
		cookie:           cookie,
	}
}

// Public booking form

func (h *Handler) BookingOptions(c *ginext.Context) {
	opts, err := h.bookingService.Options(c.Request.Context())
	if err != nil {
		h.handleError(c, err, domain.AlertFetchServices)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingOptionsResponse(opts))
}

func (h *Handler) SubmitBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, domain.AlertSubmitBooking, err.Error())
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		h.badRequest(c, domain.AlertSubmitBooking, "invalid date format, expected YYYY-MM-DD")
		return
	}

	input := domain.CreateBookingInput{
		ServiceID: req.ServiceID,
		Date:      date,
		TimeSlot:  req.TimeSlot,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	booking, err := h.bookingService.Submit(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err, domain.AlertSubmitBooking)
		return
	}

	c.JSON(http.StatusCreated, dto.BookingCreatedResponse{
		Message: domain.MessageBookingSubmitted,
		Booking: dto.ToBookingResponse(booking),
	})
}

// Admin dashboard

func (h *Handler) ListBookings(c *ginext.Context) {
	view, err := h.dashboardService.Load(c.Request.Context())
	h.renderDashboard(c, view, err)
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	id, ok := h.idParam(c, domain.AlertUpdateBooking)
	if !ok {
		return
	}

	view, err := h.dashboardService.Confirm(c.Request.Context(), id)
	h.renderDashboard(c, view, err)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := h.idParam(c, domain.AlertUpdateBooking)
	if !ok {
		return
	}

	view, err := h.dashboardService.Cancel(c.Request.Context(), id)
	h.renderDashboard(c, view, err)
}

func (h *Handler) renderDashboard(c *ginext.Context, view domain.DashboardView, err error) {
	status := http.StatusOK
	if err != nil {
		c.Set("error", err.Error())
		status = statusFor(err)
	}
	c.JSON(status, dto.ToDashboardResponse(view))
}

// Admin settings

func (h *Handler) GetSettings(c *ginext.Context) {
	view, err := h.settingsService.Load(c.Request.Context())
	h.renderSettings(c, view, err)
}

func (h *Handler) AddService(c *ginext.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, domain.AlertAddService, err.Error())
		return
	}

	view, err := h.settingsService.AddService(c.Request.Context(), domain.CreateServiceInput{
		Name:     req.Name,
		Duration: req.Duration,
		Price:    req.Price,
	})
	h.renderSettings(c, view, err)
}

func (h *Handler) DeleteService(c *ginext.Context) {
	id, ok := h.idParam(c, domain.AlertDeleteService)
	if !ok {
		return
	}

	view, err := h.settingsService.DeleteService(c.Request.Context(), id)
	h.renderSettings(c, view, err)
}

func (h *Handler) SetAvailability(c *ginext.Context) {
	id, ok := h.idParam(c, domain.AlertUpdateWorkingHours)
	if !ok {
		return
	}

	var req dto.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, domain.AlertUpdateWorkingHours, err.Error())
		return
	}

	view, err := h.settingsService.SetAvailability(c.Request.Context(), id, *req.IsAvailable)
	h.renderSettings(c, view, err)
}

func (h *Handler) renderSettings(c *ginext.Context, view domain.SettingsView, err error) {
	status := http.StatusOK
	if err != nil {
		c.Set("error", err.Error())
		status = statusFor(err)
	}
	c.JSON(status, dto.ToSettingsResponse(view))
}

// Auth

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.badRequest(c, "Error signing in", err.Error())
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err, "Error signing in")
		return
	}

	h.setSessionCookie(c, session.Token, int(h.cookie.TTL.Seconds()))

	if c.ContentType() == "application/json" {
		c.JSON(http.StatusOK, dto.LoginResponse{Redirect: middleware.AdminRootPath})
		return
	}
	c.Redirect(http.StatusSeeOther, middleware.AdminRootPath)
}

// SignOut ends the session resolved by the guard and sends the browser to the
// public root. The cookie is cleared even if the store call fails.
func (h *Handler) SignOut(c *ginext.Context) {
	if session, ok := middleware.SessionFrom(c); ok {
		if err := h.authService.SignOut(c.Request.Context(), session); err != nil {
			c.Set("error", err.Error())
		}
	}

	h.setSessionCookie(c, "", -1)
	c.Header("Cache-Control", "no-store")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) setSessionCookie(c *ginext.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}

func (h *Handler) idParam(c *ginext.Context, alert string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.badRequest(c, alert, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) badRequest(c *ginext.Context, alert, details string) {
	c.Set("error", details)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: alert, Details: details})
}

func (h *Handler) handleError(c *ginext.Context, err error, alert string) {
	c.Set("error", err.Error())

	status := statusFor(err)
	resp := dto.ErrorResponse{Error: alert}
	if status < http.StatusInternalServerError {
		resp.Details = err.Error()
	}
	c.JSON(status, resp)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrWorkingHoursNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized

	default:
		return http.StatusInternalServerError
	}
}
