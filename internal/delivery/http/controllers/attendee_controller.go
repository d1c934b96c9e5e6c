package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"unicode/utf8"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

var (
	// emailRegex matches local@domain with at least one dot in the domain.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// phoneRegex matches E.164 phone numbers.
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// AttendeeController translates HTTP requests into attendee service calls.
type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateAttendeeRequest is the request body for POST /attendees.
type CreateAttendeeRequest struct {
	EventID string `json:"eventId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Status  string `json:"status"`
}

// Validate implements helpers.Validator. All violations are collected.
func (c *CreateAttendeeRequest) Validate() []string {
	var errs []string
	if c.EventID == "" {
		errs = append(errs, "eventId is required")
	}
	if l := utf8.RuneCountInString(c.Name); l < 2 || l > 100 {
		errs = append(errs, "name must be between 2 and 100 characters")
	}
	if !emailRegex.MatchString(c.Email) {
		errs = append(errs, "email must be a valid email address")
	}
	if c.Phone != "" && !phoneRegex.MatchString(c.Phone) {
		errs = append(errs, "phone must be in valid E.164 format (e.g. +12345678901)")
	}
	if c.Status != "" && !domain.ValidAttendeeStatus(c.Status) {
		errs = append(errs, "status must be one of: registered, attended, cancelled")
	}
	return errs
}

// CreateAttendee godoc
// @Summary Register an attendee
// @Description Registers an attendee for an event. Status defaults to registered; registrationDate is set once at creation.
// @Tags attendees
// @Accept json
// @Produce json
// @Param attendee body CreateAttendeeRequest true "Attendee data"
// @Success 201 {object} helpers.APIResponse "data contains the created attendee"
// @Failure 400 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /attendees [post]
func (c *AttendeeController) CreateAttendee(w http.ResponseWriter, r *http.Request) {
	var req CreateAttendeeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	attendee, err := c.Service.CreateAttendee(r.Context(), domain.CreateAttendeeInput{
		EventID: req.EventID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Status:  req.Status,
	})
	if err != nil {
		c.respondError(w, r, err, "failed to create attendee")
		return
	}
	helpers.WriteSuccess(w, http.StatusCreated, "Attendee created successfully", attendee)
}

// ListAttendees godoc
// @Summary List attendees
// @Description Lists attendees with optional equality filters and sorting.
// @Tags attendees
// @Produce json
// @Param eventId query string false "Filter by event ID"
// @Param status query string false "Filter by status (registered|attended|cancelled)"
// @Param sortBy query string false "Sort field (name|registrationDate)"
// @Param order query string false "Sort order (asc|desc), default asc"
// @Success 200 {object} helpers.APIResponse "data contains the attendees, count the number returned"
// @Failure 500 {object} helpers.APIResponse
// @Router /attendees [get]
func (c *AttendeeController) ListAttendees(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.AttendeeFilter{
		EventID: q.Get("eventId"),
		Status:  q.Get("status"),
	}
	attendees, err := c.Service.ListAttendees(r.Context(), filter, helpers.ParseSortParams(r))
	if err != nil {
		c.respondError(w, r, err, "failed to fetch attendees")
		return
	}
	helpers.WriteList(w, attendees, len(attendees))
}

// GetAttendeeByID godoc
// @Summary Get an attendee by ID
// @Tags attendees
// @Produce json
// @Param id path string true "Attendee ID"
// @Success 200 {object} helpers.APIResponse "data contains the attendee"
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /attendees/{id} [get]
func (c *AttendeeController) GetAttendeeByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	attendee, err := c.Service.GetAttendeeByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, fmt.Sprintf("attendee with id %s not found", id))
			return
		}
		c.respondError(w, r, err, "failed to fetch attendee")
		return
	}
	helpers.WriteSuccess(w, http.StatusOK, "", attendee)
}

// ListEventAttendees godoc
// @Summary List attendees for an event
// @Tags attendees
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the attendees, count the number returned"
// @Failure 500 {object} helpers.APIResponse
// @Router /events/{eventID}/attendees [get]
func (c *AttendeeController) ListEventAttendees(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	attendees, err := c.Service.ListAttendeesByEventID(r.Context(), eventID)
	if err != nil {
		c.respondError(w, r, err, "failed to fetch attendees for event")
		return
	}
	helpers.WriteList(w, attendees, len(attendees))
}

// UpdateAttendeeRequest is the request body for PUT /attendees/{id}.
// registrationDate is immutable and not accepted.
type UpdateAttendeeRequest struct {
	EventID *string `json:"eventId"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Status  *string `json:"status"`
}

// Validate implements helpers.Validator.
func (u *UpdateAttendeeRequest) Validate() []string {
	var errs []string
	if u.EventID == nil && u.Name == nil && u.Email == nil && u.Phone == nil && u.Status == nil {
		return []string{"at least one field must be provided"}
	}
	if u.EventID != nil && *u.EventID == "" {
		errs = append(errs, "eventId cannot be empty")
	}
	if u.Name != nil {
		if l := utf8.RuneCountInString(*u.Name); l < 2 || l > 100 {
			errs = append(errs, "name must be between 2 and 100 characters")
		}
	}
	if u.Email != nil && !emailRegex.MatchString(*u.Email) {
		errs = append(errs, "email must be a valid email address")
	}
	if u.Phone != nil && *u.Phone != "" && !phoneRegex.MatchString(*u.Phone) {
		errs = append(errs, "phone must be in valid E.164 format (e.g. +12345678901)")
	}
	if u.Status != nil && !domain.ValidAttendeeStatus(*u.Status) {
		errs = append(errs, "status must be one of: registered, attended, cancelled")
	}
	return errs
}

// UpdateAttendee godoc
// @Summary Update an attendee
// @Description Partially updates an attendee. Omitted fields are unchanged; registrationDate is immutable.
// @Tags attendees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendee ID"
// @Param attendee body UpdateAttendeeRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated attendee"
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /attendees/{id} [put]
func (c *AttendeeController) UpdateAttendee(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req UpdateAttendeeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	attendee, err := c.Service.UpdateAttendee(r.Context(), id, domain.UpdateAttendeeInput{
		EventID: req.EventID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Status:  req.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, fmt.Sprintf("attendee with id %s not found", id))
			return
		}
		c.respondError(w, r, err, "failed to update attendee")
		return
	}
	helpers.WriteSuccess(w, http.StatusOK, "Attendee updated successfully", attendee)
}

// DeleteAttendee godoc
// @Summary Delete an attendee
// @Tags attendees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendee ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /attendees/{id} [delete]
func (c *AttendeeController) DeleteAttendee(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	found, err := c.Service.DeleteAttendee(r.Context(), id)
	if err != nil {
		c.respondError(w, r, err, "failed to delete attendee")
		return
	}
	if !found {
		helpers.WriteError(w, http.StatusNotFound, fmt.Sprintf("attendee with id %s not found", id))
		return
	}
	helpers.WriteSuccess(w, http.StatusOK, "Attendee deleted successfully", nil)
}

func (c *AttendeeController) respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if errors.Is(err, domain.ErrInvalidInput) {
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteError(w, http.StatusInternalServerError, fallback)
}
