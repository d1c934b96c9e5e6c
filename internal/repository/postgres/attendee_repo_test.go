package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"eventhub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var attendeeCols = []string{"id", "event_id", "name", "email", "phone", "registration_date", "status", "created_at", "updated_at"}

func TestAttendeeRepository_Create(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("with phone", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO attendees \(event_id, name, email, phone, registration_date, status, created_at, updated_at\)`).
			WithArgs("ev-1", "J Doe", "j@example.com", "+12345678901", ts, "registered", ts, ts).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("at-uuid-1"))

		repo := NewAttendeeRepository(db)
		attendee := domain.NewAttendee("ev-1", "J Doe", "j@example.com", "+12345678901", domain.AttendeeStatusRegistered, ts, ts, ts)
		require.NoError(t, repo.Create(ctx, attendee))
		require.Equal(t, "at-uuid-1", attendee.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without phone stores null", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO attendees`).
			WithArgs("ev-1", "J Doe", "j@example.com", nil, ts, "registered", ts, ts).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("at-uuid-2"))

		repo := NewAttendeeRepository(db)
		attendee := domain.NewAttendee("ev-1", "J Doe", "j@example.com", "", domain.AttendeeStatusRegistered, ts, ts, ts)
		require.NoError(t, repo.Create(ctx, attendee))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAttendeeRepository_List(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("filter by event and status", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM attendees WHERE event_id = \$1 AND status = \$2`).
			WithArgs("ev-1", "registered").
			WillReturnRows(sqlmock.NewRows(attendeeCols).
				AddRow("at-1", "ev-1", "J Doe", "j@example.com", nil, ts, "registered", ts, ts))

		repo := NewAttendeeRepository(db)
		attendees, err := repo.List(ctx, domain.AttendeeFilter{EventID: "ev-1", Status: "registered"})
		require.NoError(t, err)
		require.Len(t, attendees, 1)
		require.Equal(t, "", attendees[0].Phone)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM attendees`).
			WillReturnError(sql.ErrConnDone)

		repo := NewAttendeeRepository(db)
		_, err = repo.List(ctx, domain.AttendeeFilter{})
		require.Error(t, err)
	})
}

func TestAttendeeRepository_Update(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("status only", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE attendees SET updated_at = NOW\(\), status = \$1\s+WHERE id = \$2`).
			WithArgs("attended", "at-1").
			WillReturnRows(sqlmock.NewRows(attendeeCols).
				AddRow("at-1", "ev-1", "J Doe", "j@example.com", nil, ts, "attended", ts, ts.Add(time.Minute)))

		repo := NewAttendeeRepository(db)
		status := domain.AttendeeStatusAttended
		attendee, err := repo.Update(ctx, "at-1", domain.AttendeeUpdate{Status: &status})
		require.NoError(t, err)
		require.Equal(t, "attended", attendee.Status)
		require.Equal(t, ts, attendee.RegistrationDate)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE attendees SET`).
			WillReturnError(sql.ErrNoRows)

		repo := NewAttendeeRepository(db)
		name := "New"
		_, err = repo.Update(ctx, "at-missing", domain.AttendeeUpdate{Name: &name})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAttendeeRepository_Delete(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM attendees WHERE id = \$1`).
		WithArgs("at-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewAttendeeRepository(db)
	require.ErrorIs(t, repo.Delete(ctx, "at-missing"), domain.ErrNotFound)
}
