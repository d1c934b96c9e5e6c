package domain

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ReminderEmailData holds data for the event reminder email sent to
// registered attendees shortly before the event starts.
type ReminderEmailData struct {
	AttendeeName string
	EventName    string
	EventDate    string
	Location     string
}
