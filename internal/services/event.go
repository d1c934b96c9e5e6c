package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"eventhub/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListEvents(ctx context.Context, filter domain.EventFilter, sortParams domain.SortParams) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if sortParams.Field != "" {
		sortEvents(events, sortParams.Field, sortParams.Order)
	}
	return events, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if input.Capacity != nil && *input.Capacity < 1 {
		return nil, fmt.Errorf("%w: event capacity must be at least 1", domain.ErrInvalidInput)
	}
	if !input.Date.After(time.Now()) {
		return nil, fmt.Errorf("%w: event date must be in the future", domain.ErrInvalidInput)
	}

	capacity := 0
	if input.Capacity != nil {
		capacity = *input.Capacity
	}
	status := input.Status
	if status == "" {
		status = domain.EventStatusUpcoming
	}

	now := time.Now()
	event := domain.NewEvent(input.Name, input.Description, input.Date, input.Location, capacity, status, now, now)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if input.Capacity != nil && *input.Capacity < 1 {
		return nil, fmt.Errorf("%w: event capacity must be at least 1", domain.ErrInvalidInput)
	}
	if input.Date != nil && !input.Date.After(time.Now()) {
		return nil, fmt.Errorf("%w: event date must be in the future", domain.ErrInvalidInput)
	}
	if input.Status != nil && !domain.ValidEventStatus(*input.Status) {
		return nil, fmt.Errorf("%w: invalid event status %q", domain.ErrInvalidInput, *input.Status)
	}

	upd := domain.EventUpdate{
		Name:        input.Name,
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
		Capacity:    input.Capacity,
		Status:      input.Status,
	}
	if upd.IsZero() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrInvalidInput)
	}
	event, err := s.eventRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("delete event: %w", err)
	}
	return true, nil
}

// sortEvents sorts in place by the named field. Ties keep whatever order
// the repository returned.
func sortEvents(events []*domain.Event, field, order string) {
	desc := order == domain.OrderDesc
	sort.Slice(events, func(i, j int) bool {
		var less bool
		switch field {
		case "date":
			less = events[i].Date.Before(events[j].Date)
		case "name":
			less = compareStrings(events[i].Name, events[j].Name) < 0
		case "capacity":
			less = events[i].Capacity < events[j].Capacity
		default:
			return false
		}
		if desc {
			return !less && !eventFieldsEqual(events[i], events[j], field)
		}
		return less
	})
}

func eventFieldsEqual(a, b *domain.Event, field string) bool {
	switch field {
	case "date":
		return a.Date.Equal(b.Date)
	case "name":
		return compareStrings(a.Name, b.Name) == 0
	case "capacity":
		return a.Capacity == b.Capacity
	}
	return false
}

// compareStrings orders text case-insensitively so sorting behaves the way
// users expect for names.
func compareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
