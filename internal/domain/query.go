package domain

// Sort orders accepted by list endpoints.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// SortParams describes an optional in-memory sort applied after the
// repository filter. An empty Field means no sorting.
type SortParams struct {
	Field string
	Order string
}

// EventFilter holds equality filters pushed down to the event repository.
// Empty fields are ignored.
type EventFilter struct {
	Status   string
	Location string
}

// AttendeeFilter holds equality filters pushed down to the attendee
// repository. Empty fields are ignored.
type AttendeeFilter struct {
	EventID string
	Status  string
}
