package domain

import (
	"context"
	"time"
)

// Event statuses. The scheduler only ever moves an event forward to
// completed; manual updates through the API may set any valid status.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
)

// ValidEventStatus reports whether s is one of the known event statuses.
func ValidEventStatus(s string) bool {
	return s == EventStatusUpcoming || s == EventStatusOngoing || s == EventStatusCompleted
}

// Event represents a managed event.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewEvent returns a new Event with the given fields. ID is set by the
// repository on create.
func NewEvent(name, description string, date time.Time, location string, capacity int, status string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Name:        name,
		Description: description,
		Date:        date,
		Location:    location,
		Capacity:    capacity,
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventUpdate describes a partial update. Nil fields are left unchanged;
// updated_at is always refreshed by the repository.
type EventUpdate struct {
	Name        *string
	Description *string
	Date        *time.Time
	Location    *string
	Capacity    *int
	Status      *string
}

// IsZero reports whether no field is set.
func (u EventUpdate) IsZero() bool {
	return u.Name == nil && u.Description == nil && u.Date == nil &&
		u.Location == nil && u.Capacity == nil && u.Status == nil
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	Update(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// CreateEventInput is the validated input for creating an event.
// Capacity is optional; nil defaults to 0.
type CreateEventInput struct {
	Name        string
	Description string
	Date        time.Time
	Location    string
	Capacity    *int
	Status      string
}

// UpdateEventInput is the validated partial input for updating an event.
type UpdateEventInput struct {
	Name        *string
	Description *string
	Date        *time.Time
	Location    *string
	Capacity    *int
	Status      *string
}

// EventService defines business operations on events.
type EventService interface {
	ListEvents(ctx context.Context, filter EventFilter, sort SortParams) ([]*Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	CreateEvent(ctx context.Context, input CreateEventInput) (*Event, error)
	UpdateEvent(ctx context.Context, id string, input UpdateEventInput) (*Event, error)
	// DeleteEvent returns false with a nil error when the event does not exist.
	DeleteEvent(ctx context.Context, id string) (bool, error)
}
