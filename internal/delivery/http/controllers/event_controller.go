package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// EventController translates HTTP requests into event service calls.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Capacity    *int   `json:"capacity"`
	Status      string `json:"status"`

	parsedDate time.Time
}

// Validate implements helpers.Validator. All violations are collected.
func (c *CreateEventRequest) Validate() []string {
	var errs []string
	if l := utf8.RuneCountInString(c.Name); l < 3 || l > 100 {
		errs = append(errs, "name must be between 3 and 100 characters")
	}
	if c.Date == "" {
		errs = append(errs, "date is required")
	} else {
		t, err := time.Parse(time.RFC3339, c.Date)
		if err != nil {
			errs = append(errs, "date must be a valid ISO-8601 date-time")
		} else {
			c.parsedDate = t
		}
	}
	if l := utf8.RuneCountInString(c.Location); l < 3 || l > 200 {
		errs = append(errs, "location must be between 3 and 200 characters")
	}
	if c.Capacity != nil && *c.Capacity < 1 {
		errs = append(errs, "capacity must be at least 1")
	}
	if c.Status != "" && !domain.ValidEventStatus(c.Status) {
		errs = append(errs, "status must be one of: upcoming, ongoing, completed")
	}
	return errs
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates an event. Status defaults to upcoming, capacity to 0. The date must be in the future.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), domain.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.parsedDate,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Status:      req.Status,
	})
	if err != nil {
		c.respondError(w, r, err, "failed to create event")
		return
	}
	helpers.WriteSuccess(w, http.StatusCreated, "Event created successfully", event)
}

// ListEvents godoc
// @Summary List events
// @Description Lists events with optional equality filters and sorting.
// @Tags events
// @Produce json
// @Param status query string false "Filter by status (upcoming|ongoing|completed)"
// @Param location query string false "Filter by location"
// @Param sortBy query string false "Sort field (date|name|capacity)"
// @Param order query string false "Sort order (asc|desc), default asc"
// @Success 200 {object} helpers.APIResponse "data contains the events, count the number returned"
// @Failure 500 {object} helpers.APIResponse
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.EventFilter{
		Status:   q.Get("status"),
		Location: q.Get("location"),
	}
	events, err := c.Service.ListEvents(r.Context(), filter, helpers.ParseSortParams(r))
	if err != nil {
		c.respondError(w, r, err, "failed to fetch events")
		return
	}
	helpers.WriteList(w, events, len(events))
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	event, err := c.Service.GetEventByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, fmt.Sprintf("event with id %s not found", id))
			return
		}
		c.respondError(w, r, err, "failed to fetch event")
		return
	}
	helpers.WriteSuccess(w, http.StatusOK, "", event)
}

// UpdateEventRequest is the request body for PUT /events/{id}. All fields
// are optional; at least one recognized field must be present.
type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Capacity    *int    `json:"capacity"`
	Status      *string `json:"status"`

	parsedDate *time.Time
}

// Validate implements helpers.Validator.
func (u *UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Name == nil && u.Description == nil && u.Date == nil && u.Location == nil && u.Capacity == nil && u.Status == nil {
		return []string{"at least one field must be provided"}
	}
	if u.Name != nil {
		if l := utf8.RuneCountInString(*u.Name); l < 3 || l > 100 {
			errs = append(errs, "name must be between 3 and 100 characters")
		}
	}
	if u.Date != nil {
		t, err := time.Parse(time.RFC3339, *u.Date)
		if err != nil {
			errs = append(errs, "date must be a valid ISO-8601 date-time")
		} else {
			u.parsedDate = &t
		}
	}
	if u.Location != nil {
		if l := utf8.RuneCountInString(*u.Location); l < 3 || l > 200 {
			errs = append(errs, "location must be between 3 and 200 characters")
		}
	}
	if u.Capacity != nil && *u.Capacity < 1 {
		errs = append(errs, "capacity must be at least 1")
	}
	if u.Status != nil && !domain.ValidEventStatus(*u.Status) {
		errs = append(errs, "status must be one of: upcoming, ongoing, completed")
	}
	return errs
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Partially updates an event. Omitted fields are unchanged; updatedAt is always refreshed.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param event body UpdateEventRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), id, domain.UpdateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.parsedDate,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, fmt.Sprintf("event with id %s not found", id))
			return
		}
		c.respondError(w, r, err, "failed to update event")
		return
	}
	helpers.WriteSuccess(w, http.StatusOK, "Event updated successfully", event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	found, err := c.Service.DeleteEvent(r.Context(), id)
	if err != nil {
		c.respondError(w, r, err, "failed to delete event")
		return
	}
	if !found {
		helpers.WriteError(w, http.StatusNotFound, fmt.Sprintf("event with id %s not found", id))
		return
	}
	helpers.WriteSuccess(w, http.StatusOK, "Event deleted successfully", nil)
}

// respondError maps business-rule violations to 400 and everything else
// to 500, logging the underlying cause.
func (c *EventController) respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if errors.Is(err, domain.ErrInvalidInput) {
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteError(w, http.StatusInternalServerError, fallback)
}
