package domain

import (
	"context"
	"time"
)

// Attendee statuses.
const (
	AttendeeStatusRegistered = "registered"
	AttendeeStatusAttended   = "attended"
	AttendeeStatusCancelled  = "cancelled"
)

// ValidAttendeeStatus reports whether s is one of the known attendee statuses.
func ValidAttendeeStatus(s string) bool {
	return s == AttendeeStatusRegistered || s == AttendeeStatusAttended || s == AttendeeStatusCancelled
}

// Attendee represents a person registered for an event. The event
// association is a plain id lookup; referential integrity is advisory only.
// swagger:model Attendee
type Attendee struct {
	ID               string    `json:"id"`
	EventID          string    `json:"eventId"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	RegistrationDate time.Time `json:"registrationDate"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// NewAttendee returns a new Attendee. ID is set by the repository on create.
// RegistrationDate is set once at creation and never updated.
func NewAttendee(eventID, name, email, phone, status string, registrationDate, createdAt, updatedAt time.Time) *Attendee {
	return &Attendee{
		EventID:          eventID,
		Name:             name,
		Email:            email,
		Phone:            phone,
		RegistrationDate: registrationDate,
		Status:           status,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

// AttendeeUpdate describes a partial update. Nil fields are left unchanged.
// RegistrationDate is immutable and deliberately absent.
type AttendeeUpdate struct {
	EventID *string
	Name    *string
	Email   *string
	Phone   *string
	Status  *string
}

// IsZero reports whether no field is set.
func (u AttendeeUpdate) IsZero() bool {
	return u.EventID == nil && u.Name == nil && u.Email == nil &&
		u.Phone == nil && u.Status == nil
}

// AttendeeRepository defines the interface for attendee storage.
type AttendeeRepository interface {
	Create(ctx context.Context, attendee *Attendee) error
	GetByID(ctx context.Context, id string) (*Attendee, error)
	List(ctx context.Context, filter AttendeeFilter) ([]*Attendee, error)
	Update(ctx context.Context, id string, upd AttendeeUpdate) (*Attendee, error)
	Delete(ctx context.Context, id string) error
}

// CreateAttendeeInput is the validated input for creating an attendee.
type CreateAttendeeInput struct {
	EventID string
	Name    string
	Email   string
	Phone   string
	Status  string
}

// UpdateAttendeeInput is the validated partial input for updating an attendee.
type UpdateAttendeeInput struct {
	EventID *string
	Name    *string
	Email   *string
	Phone   *string
	Status  *string
}

// AttendeeService defines business operations on attendees.
type AttendeeService interface {
	ListAttendees(ctx context.Context, filter AttendeeFilter, sort SortParams) ([]*Attendee, error)
	GetAttendeeByID(ctx context.Context, id string) (*Attendee, error)
	ListAttendeesByEventID(ctx context.Context, eventID string) ([]*Attendee, error)
	CreateAttendee(ctx context.Context, input CreateAttendeeInput) (*Attendee, error)
	UpdateAttendee(ctx context.Context, id string, input UpdateAttendeeInput) (*Attendee, error)
	// DeleteAttendee returns false with a nil error when the attendee does not exist.
	DeleteAttendee(ctx context.Context, id string) (bool, error)
}
