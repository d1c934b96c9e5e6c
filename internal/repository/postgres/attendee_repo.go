package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventhub/internal/domain"
)

const attendeeColumns = "id, event_id, name, email, phone, registration_date, status, created_at, updated_at"

type attendeeRepository struct {
	DB *sql.DB
}

func NewAttendeeRepository(db *sql.DB) domain.AttendeeRepository {
	return &attendeeRepository{
		DB: db,
	}
}

func scanAttendee(row interface{ Scan(...any) error }) (*domain.Attendee, error) {
	a := &domain.Attendee{}
	var phoneNull sql.NullString
	err := row.Scan(&a.ID, &a.EventID, &a.Name, &a.Email, &phoneNull, &a.RegistrationDate, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if phoneNull.Valid {
		a.Phone = phoneNull.String
	}
	return a, nil
}

func (r *attendeeRepository) Create(ctx context.Context, a *domain.Attendee) error {
	query := `
		INSERT INTO attendees (event_id, name, email, phone, registration_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	var phone interface{}
	if a.Phone != "" {
		phone = a.Phone
	}
	return r.DB.QueryRowContext(ctx, query,
		a.EventID, a.Name, a.Email, phone, a.RegistrationDate, a.Status, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
}

func (r *attendeeRepository) GetByID(ctx context.Context, id string) (*domain.Attendee, error) {
	query := fmt.Sprintf(`SELECT %s FROM attendees WHERE id = $1`, attendeeColumns)
	a, err := scanAttendee(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *attendeeRepository) List(ctx context.Context, filter domain.AttendeeFilter) ([]*domain.Attendee, error) {
	where := []string{}
	args := []interface{}{}
	n := 1
	if filter.EventID != "" {
		where = append(where, fmt.Sprintf("event_id = $%d", n))
		args = append(args, filter.EventID)
		n++
	}
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("status = $%d", n))
		args = append(args, filter.Status)
		n++
	}
	query := fmt.Sprintf(`SELECT %s FROM attendees`, attendeeColumns)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	attendees := make([]*domain.Attendee, 0)
	for rows.Next() {
		a, err := scanAttendee(rows)
		if err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}

func (r *attendeeRepository) Update(ctx context.Context, id string, upd domain.AttendeeUpdate) (*domain.Attendee, error) {
	if upd.IsZero() {
		return r.GetByID(ctx, id)
	}
	// registration_date is immutable and never part of the SET clause.
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	if upd.EventID != nil {
		setClauses = append(setClauses, fmt.Sprintf("event_id = $%d", n))
		args = append(args, *upd.EventID)
		n++
	}
	if upd.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", n))
		args = append(args, *upd.Name)
		n++
	}
	if upd.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", n))
		args = append(args, *upd.Email)
		n++
	}
	if upd.Phone != nil {
		setClauses = append(setClauses, fmt.Sprintf("phone = $%d", n))
		args = append(args, *upd.Phone)
		n++
	}
	if upd.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", n))
		args = append(args, *upd.Status)
		n++
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE attendees SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, attendeeColumns)
	a, err := scanAttendee(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *attendeeRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM attendees WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
