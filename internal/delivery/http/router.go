package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Read endpoints and attendee registration are public; mutating event,
// category, and attendee routes require an admin or organizer principal.
func NewRouter(
	events *controllers.EventController,
	categories *controllers.CategoryController,
	attendees *controllers.AttendeeController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()

	requireAuth := middleware.RequireAuth(verifier)
	requireRole := middleware.RequireRole(domain.RoleAdmin, domain.RoleOrganizer)
	manage := func(next http.HandlerFunc) http.HandlerFunc {
		return requireAuth(requireRole(next))
	}

	// Events
	mux.HandleFunc("GET /events", events.ListEvents)
	mux.HandleFunc("GET /events/{id}", events.GetEventByID)
	mux.HandleFunc("POST /events", manage(events.CreateEvent))
	mux.HandleFunc("PUT /events/{id}", manage(events.UpdateEvent))
	mux.HandleFunc("DELETE /events/{id}", manage(events.DeleteEvent))

	// Categories
	mux.HandleFunc("GET /categories", categories.ListCategories)
	mux.HandleFunc("GET /categories/{id}", categories.GetCategoryByID)
	mux.HandleFunc("POST /categories", manage(categories.CreateCategory))
	mux.HandleFunc("PUT /categories/{id}", manage(categories.UpdateCategory))
	mux.HandleFunc("DELETE /categories/{id}", manage(categories.DeleteCategory))

	// Attendees
	mux.HandleFunc("GET /attendees", attendees.ListAttendees)
	mux.HandleFunc("GET /attendees/{id}", attendees.GetAttendeeByID)
	mux.HandleFunc("GET /events/{eventID}/attendees", attendees.ListEventAttendees)
	mux.HandleFunc("POST /attendees", attendees.CreateAttendee)
	mux.HandleFunc("PUT /attendees/{id}", manage(attendees.UpdateAttendee))
	mux.HandleFunc("DELETE /attendees/{id}", manage(attendees.DeleteAttendee))

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteSuccess(w, http.StatusOK, "ok", nil)
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
