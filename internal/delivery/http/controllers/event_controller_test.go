package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeEventService struct {
	created   *domain.Event
	createErr error
	events    []*domain.Event
	listErr   error
	byID      map[string]*domain.Event
	updated   *domain.Event
	updateErr error
	deleted   bool
	deleteErr error
}

func (f *fakeEventService) ListEvents(ctx context.Context, filter domain.EventFilter, sortParams domain.SortParams) ([]*domain.Event, error) {
	return f.events, f.listErr
}

func (f *fakeEventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	return f.created, f.createErr
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	return f.updated, f.updateErr
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id string) (bool, error) {
	return f.deleted, f.deleteErr
}

func eventMux(svc domain.EventService) *http.ServeMux {
	ctrl := NewEventController(testLogger, svc)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /events", ctrl.ListEvents)
	mux.HandleFunc("POST /events", ctrl.CreateEvent)
	mux.HandleFunc("GET /events/{id}", ctrl.GetEventByID)
	mux.HandleFunc("PUT /events/{id}", ctrl.UpdateEvent)
	mux.HandleFunc("DELETE /events/{id}", ctrl.DeleteEvent)
	return mux
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var resp helpers.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestEventController_CreateEvent(t *testing.T) {
	date := time.Now().Add(24 * time.Hour).Format(time.RFC3339)

	tests := []struct {
		name       string
		body       string
		svc        *fakeEventService
		wantStatus int
		wantErrs   int
	}{
		{
			name: "created",
			body: `{"name":"Tech Conf","date":"` + date + `","location":"Hall A","capacity":50}`,
			svc: &fakeEventService{created: &domain.Event{
				ID:     "ev-1",
				Name:   "Tech Conf",
				Status: domain.EventStatusUpcoming,
			}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "validation failure collects all violations",
			body:       `{"name":"ab","date":"not-a-date","location":"x"}`,
			svc:        &fakeEventService{},
			wantStatus: http.StatusBadRequest,
			wantErrs:   3,
		},
		{
			name: "unknown field dropped",
			body: `{"name":"Tech Conf","date":"` + date + `","location":"Hall A","organizer":"me"}`,
			svc: &fakeEventService{created: &domain.Event{
				ID:     "ev-1",
				Name:   "Tech Conf",
				Status: domain.EventStatusUpcoming,
			}},
			wantStatus: http.StatusCreated,
		},
		{
			name: "multibyte name counted in characters",
			body: `{"name":"` + strings.Repeat("é", 100) + `","date":"` + date + `","location":"Hall A"}`,
			svc: &fakeEventService{created: &domain.Event{
				ID:     "ev-1",
				Status: domain.EventStatusUpcoming,
			}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "multibyte name over the limit",
			body:       `{"name":"` + strings.Repeat("é", 101) + `","date":"` + date + `","location":"Hall A"}`,
			svc:        &fakeEventService{},
			wantStatus: http.StatusBadRequest,
			wantErrs:   1,
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			svc:        &fakeEventService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "business rule violation",
			body:       `{"name":"Tech Conf","date":"` + date + `","location":"Hall A"}`,
			svc:        &fakeEventService{createErr: domain.ErrInvalidInput},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "store failure",
			body:       `{"name":"Tech Conf","date":"` + date + `","location":"Hall A"}`,
			svc:        &fakeEventService{createErr: errors.New("connection refused")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			eventMux(tt.svc).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeResponse(t, rec)
			if tt.wantStatus == http.StatusCreated {
				assert.True(t, resp.Success)
				assert.Equal(t, "Event created successfully", resp.Message)
			} else {
				assert.False(t, resp.Success)
			}
			if tt.wantErrs > 0 {
				assert.Len(t, resp.Errors, tt.wantErrs)
			}
		})
	}
}

func TestEventController_ListEvents(t *testing.T) {
	svc := &fakeEventService{events: []*domain.Event{
		{ID: "ev-1", Name: "Tech Conf"},
		{ID: "ev-2", Name: "Meetup"},
	}}
	req := httptest.NewRequest(http.MethodGet, "/events?status=upcoming&sortBy=name", nil)
	rec := httptest.NewRecorder()
	eventMux(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 2, *resp.Count)
}

func TestEventController_GetEventByID(t *testing.T) {
	svc := &fakeEventService{byID: map[string]*domain.Event{
		"ev-1": {ID: "ev-1", Name: "Tech Conf"},
	}}

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events/ev-1", nil)
		rec := httptest.NewRecorder()
		eventMux(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeResponse(t, rec).Success)
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events/ev-missing", nil)
		rec := httptest.NewRecorder()
		eventMux(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Message, "ev-missing")
	})
}

func TestEventController_UpdateEvent(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		svc := &fakeEventService{updated: &domain.Event{ID: "ev-1", Name: "Renamed"}}
		req := httptest.NewRequest(http.MethodPut, "/events/ev-1", strings.NewReader(`{"name":"Renamed"}`))
		rec := httptest.NewRecorder()
		eventMux(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)
		assert.Equal(t, "Event updated successfully", resp.Message)
	})

	t.Run("empty body rejected", func(t *testing.T) {
		svc := &fakeEventService{}
		req := httptest.NewRequest(http.MethodPut, "/events/ev-1", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		eventMux(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "at least one field must be provided", resp.Errors[0])
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEventService{updateErr: domain.ErrNotFound}
		req := httptest.NewRequest(http.MethodPut, "/events/ev-missing", strings.NewReader(`{"name":"Renamed"}`))
		rec := httptest.NewRecorder()
		eventMux(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEventController_DeleteEvent(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := &fakeEventService{deleted: true}
		req := httptest.NewRequest(http.MethodDelete, "/events/ev-1", nil)
		rec := httptest.NewRecorder()
		eventMux(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Event deleted successfully", decodeResponse(t, rec).Message)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEventService{deleted: false}
		req := httptest.NewRequest(http.MethodDelete, "/events/ev-missing", nil)
		rec := httptest.NewRecorder()
		eventMux(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
