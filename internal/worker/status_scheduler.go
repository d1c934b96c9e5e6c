package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"eventhub/internal/domain"
)

// How far back the cleanup scan looks for completed events whose cancelled
// attendees are eligible for removal.
const cleanupAge = 30 * 24 * time.Hour

// StatusScheduler periodically re-evaluates derived event and attendee
// state. Every pass reads fresh store contents; no run bookkeeping is
// persisted, so each job is idempotent and safe to re-run.
type StatusScheduler struct {
	events    domain.EventService
	attendees domain.AttendeeService
	mailer    domain.Mailer
	renderer  domain.EmailTemplateRenderer
	logger    *slog.Logger

	completionInterval time.Duration
	dailyInterval      time.Duration

	stopCh chan struct{}
	wg     sync.WaitGroup

	// Per-job guards: a tick is skipped when the previous pass of the
	// same job has not finished yet.
	completionRunning atomic.Bool
	attendanceRunning atomic.Bool
	remindersRunning  atomic.Bool
	cleanupRunning    atomic.Bool
	summaryRunning    atomic.Bool
}

func NewStatusScheduler(
	events domain.EventService,
	attendees domain.AttendeeService,
	mailer domain.Mailer,
	renderer domain.EmailTemplateRenderer,
	logger *slog.Logger,
	completionInterval, dailyInterval time.Duration,
) *StatusScheduler {
	return &StatusScheduler{
		events:             events,
		attendees:          attendees,
		mailer:             mailer,
		renderer:           renderer,
		logger:             logger,
		completionInterval: completionInterval,
		dailyInterval:      dailyInterval,
		stopCh:             make(chan struct{}),
	}
}

// Start launches one timer loop per job. Jobs are independent and may
// interleave with each other and with HTTP traffic.
func (s *StatusScheduler) Start(ctx context.Context) {
	s.logger.Info("status scheduler starting",
		"completion_interval", s.completionInterval,
		"daily_interval", s.dailyInterval,
	)

	jobs := []struct {
		name     string
		interval time.Duration
		guard    *atomic.Bool
		run      func(context.Context) (int, error)
	}{
		{"event-completion", s.completionInterval, &s.completionRunning, s.CompleteElapsedEvents},
		{"auto-attendance", s.dailyInterval, &s.attendanceRunning, s.AutoMarkAttendance},
		{"event-reminders", s.dailyInterval, &s.remindersRunning, s.SendEventReminders},
		{"cleanup-scan", s.dailyInterval, &s.cleanupRunning, s.ScanCancelledAttendees},
		{"daily-summary", s.dailyInterval, &s.summaryRunning, s.EmitDailySummary},
	}
	for _, job := range jobs {
		s.wg.Add(1)
		go s.runLoop(ctx, job.name, job.interval, job.guard, job.run)
	}
}

// Stop signals all job loops to exit and waits for them. A pass already in
// progress runs to completion.
func (s *StatusScheduler) Stop() {
	close(s.stopCh)
	s.wg.Wait()
	s.logger.Info("status scheduler stopped")
}

func (s *StatusScheduler) runLoop(ctx context.Context, name string, interval time.Duration, guard *atomic.Bool, run func(context.Context) (int, error)) {
	defer s.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			if !guard.CompareAndSwap(false, true) {
				s.logger.Warn("previous pass still running, skipping tick", "job", name)
				continue
			}
			count, err := run(ctx)
			guard.Store(false)
			if err != nil {
				s.logger.Error("job pass failed", "job", name, "err", err)
				continue
			}
			s.logger.Info("job pass finished", "job", name, "affected", count)
		}
	}
}

// CompleteElapsedEvents marks every event whose date is strictly in the
// past and whose status is not yet completed as completed. Already
// completed events are never touched, so re-running is a no-op.
func (s *StatusScheduler) CompleteElapsedEvents(ctx context.Context) (int, error) {
	events, err := s.events.ListEvents(ctx, domain.EventFilter{}, domain.SortParams{})
	if err != nil {
		return 0, err
	}

	now := time.Now()
	updated := 0
	for _, event := range events {
		if !event.Date.Before(now) || event.Status == domain.EventStatusCompleted {
			continue
		}
		status := domain.EventStatusCompleted
		if _, err := s.events.UpdateEvent(ctx, event.ID, domain.UpdateEventInput{Status: &status}); err != nil {
			s.logger.Error("failed to complete event", "event_id", event.ID, "err", err)
			continue
		}
		s.logger.Info("event marked as completed", "event_id", event.ID, "name", event.Name)
		updated++
	}
	return updated, nil
}

// AutoMarkAttendance transitions registered attendees of events that took
// place yesterday (local calendar day) to attended.
func (s *StatusScheduler) AutoMarkAttendance(ctx context.Context) (int, error) {
	events, err := s.events.ListEvents(ctx, domain.EventFilter{}, domain.SortParams{})
	if err != nil {
		return 0, err
	}

	now := time.Now()
	yesterday := startOfDay(now).AddDate(0, 0, -1)

	updated := 0
	for _, event := range events {
		if !startOfDay(event.Date.In(now.Location())).Equal(yesterday) {
			continue
		}
		attendees, err := s.attendees.ListAttendees(ctx, domain.AttendeeFilter{
			EventID: event.ID,
			Status:  domain.AttendeeStatusRegistered,
		}, domain.SortParams{})
		if err != nil {
			s.logger.Error("failed to list attendees for attendance", "event_id", event.ID, "err", err)
			continue
		}
		for _, attendee := range attendees {
			status := domain.AttendeeStatusAttended
			if _, err := s.attendees.UpdateAttendee(ctx, attendee.ID, domain.UpdateAttendeeInput{Status: &status}); err != nil {
				s.logger.Error("failed to mark attendee as attended", "attendee_id", attendee.ID, "err", err)
				continue
			}
			s.logger.Info("attendee marked as attended", "attendee_id", attendee.ID, "event_id", event.ID)
			updated++
		}
	}
	return updated, nil
}

// SendEventReminders emails every registered attendee of upcoming events
// that start within the next 24 hours. Delivery failures are logged per
// attendee and do not stop the pass.
func (s *StatusScheduler) SendEventReminders(ctx context.Context) (int, error) {
	events, err := s.events.ListEvents(ctx, domain.EventFilter{Status: domain.EventStatusUpcoming}, domain.SortParams{})
	if err != nil {
		return 0, err
	}

	now := time.Now()
	windowEnd := now.Add(24 * time.Hour)

	sent := 0
	for _, event := range events {
		if !event.Date.After(now) || event.Date.After(windowEnd) {
			continue
		}
		attendees, err := s.attendees.ListAttendees(ctx, domain.AttendeeFilter{
			EventID: event.ID,
			Status:  domain.AttendeeStatusRegistered,
		}, domain.SortParams{})
		if err != nil {
			s.logger.Error("failed to list attendees for reminders", "event_id", event.ID, "err", err)
			continue
		}
		if len(attendees) == 0 {
			continue
		}
		s.logger.Info("event starting soon, notifying attendees",
			"event_id", event.ID, "name", event.Name, "date", event.Date, "attendees", len(attendees))
		for _, attendee := range attendees {
			if err := s.sendReminder(event, attendee); err != nil {
				s.logger.Error("failed to send reminder", "attendee_id", attendee.ID, "email", attendee.Email, "err", err)
				continue
			}
			sent++
		}
	}
	return sent, nil
}

func (s *StatusScheduler) sendReminder(event *domain.Event, attendee *domain.Attendee) error {
	subject, html, text, err := s.renderer.Render("reminder", domain.ReminderEmailData{
		AttendeeName: attendee.Name,
		EventName:    event.Name,
		EventDate:    event.Date.Format(time.RFC1123),
		Location:     event.Location,
	})
	if err != nil {
		return err
	}
	return s.mailer.Send(attendee.Email, subject, html, text)
}

// ScanCancelledAttendees identifies cancelled attendees of events completed
// more than 30 days ago. Identification only: nothing is deleted.
func (s *StatusScheduler) ScanCancelledAttendees(ctx context.Context) (int, error) {
	events, err := s.events.ListEvents(ctx, domain.EventFilter{Status: domain.EventStatusCompleted}, domain.SortParams{})
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-cleanupAge)
	found := 0
	for _, event := range events {
		if !event.Date.Before(cutoff) {
			continue
		}
		attendees, err := s.attendees.ListAttendees(ctx, domain.AttendeeFilter{
			EventID: event.ID,
			Status:  domain.AttendeeStatusCancelled,
		}, domain.SortParams{})
		if err != nil {
			s.logger.Error("failed to list cancelled attendees", "event_id", event.ID, "err", err)
			continue
		}
		for _, attendee := range attendees {
			s.logger.Info("cancelled attendee eligible for cleanup",
				"attendee_id", attendee.ID, "event_id", event.ID, "event_name", event.Name)
			found++
		}
	}
	return found, nil
}

// EmitDailySummary logs aggregate counts of events by status and total
// attendees.
func (s *StatusScheduler) EmitDailySummary(ctx context.Context) (int, error) {
	events, err := s.events.ListEvents(ctx, domain.EventFilter{}, domain.SortParams{})
	if err != nil {
		return 0, err
	}
	attendees, err := s.attendees.ListAttendees(ctx, domain.AttendeeFilter{}, domain.SortParams{})
	if err != nil {
		return 0, err
	}

	byStatus := map[string]int{}
	for _, event := range events {
		byStatus[event.Status]++
	}
	s.logger.Info("daily event summary",
		"total_events", len(events),
		"upcoming", byStatus[domain.EventStatusUpcoming],
		"ongoing", byStatus[domain.EventStatusOngoing],
		"completed", byStatus[domain.EventStatusCompleted],
		"total_attendees", len(attendees),
	)
	return len(events), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
