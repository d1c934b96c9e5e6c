package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"

	"eventhub/internal/domain"
)

// emailRegex is the defensive email check re-applied at the service layer
// even though the request DTO already validated the format.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type attendeeService struct {
	attendeeRepo   domain.AttendeeRepository
	contextTimeout time.Duration
}

func NewAttendeeService(attendeeRepo domain.AttendeeRepository, timeout time.Duration) domain.AttendeeService {
	return &attendeeService{
		attendeeRepo:   attendeeRepo,
		contextTimeout: timeout,
	}
}

func (s *attendeeService) ListAttendees(ctx context.Context, filter domain.AttendeeFilter, sortParams domain.SortParams) ([]*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	attendees, err := s.attendeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	if sortParams.Field != "" {
		sortAttendees(attendees, sortParams.Field, sortParams.Order)
	}
	return attendees, nil
}

func (s *attendeeService) GetAttendeeByID(ctx context.Context, id string) (*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	attendee, err := s.attendeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get attendee: %w", err)
	}
	return attendee, nil
}

func (s *attendeeService) ListAttendeesByEventID(ctx context.Context, eventID string) ([]*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	attendees, err := s.attendeeRepo.List(ctx, domain.AttendeeFilter{EventID: eventID})
	if err != nil {
		return nil, fmt.Errorf("list attendees for event %s: %w", eventID, err)
	}
	return attendees, nil
}

func (s *attendeeService) CreateAttendee(ctx context.Context, input domain.CreateAttendeeInput) (*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !emailRegex.MatchString(input.Email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}

	status := input.Status
	if status == "" {
		status = domain.AttendeeStatusRegistered
	}

	now := time.Now()
	attendee := domain.NewAttendee(input.EventID, input.Name, input.Email, input.Phone, status, now, now, now)
	if err := s.attendeeRepo.Create(ctx, attendee); err != nil {
		return nil, fmt.Errorf("create attendee: %w", err)
	}
	return attendee, nil
}

func (s *attendeeService) UpdateAttendee(ctx context.Context, id string, input domain.UpdateAttendeeInput) (*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if input.Email != nil && !emailRegex.MatchString(*input.Email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if input.Status != nil && !domain.ValidAttendeeStatus(*input.Status) {
		return nil, fmt.Errorf("%w: invalid attendee status %q", domain.ErrInvalidInput, *input.Status)
	}

	upd := domain.AttendeeUpdate{
		EventID: input.EventID,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Status:  input.Status,
	}
	if upd.IsZero() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrInvalidInput)
	}
	attendee, err := s.attendeeRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update attendee: %w", err)
	}
	return attendee, nil
}

func (s *attendeeService) DeleteAttendee(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.attendeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("delete attendee: %w", err)
	}
	return true, nil
}

func sortAttendees(attendees []*domain.Attendee, field, order string) {
	desc := order == domain.OrderDesc
	sort.Slice(attendees, func(i, j int) bool {
		var less bool
		switch field {
		case "name":
			less = compareStrings(attendees[i].Name, attendees[j].Name) < 0
		case "registrationDate":
			less = attendees[i].RegistrationDate.Before(attendees[j].RegistrationDate)
		default:
			return false
		}
		if desc {
			return !less && !attendeeFieldsEqual(attendees[i], attendees[j], field)
		}
		return less
	})
}

func attendeeFieldsEqual(a, b *domain.Attendee, field string) bool {
	switch field {
	case "name":
		return compareStrings(a.Name, b.Name) == 0
	case "registrationDate":
		return a.RegistrationDate.Equal(b.RegistrationDate)
	}
	return false
}
