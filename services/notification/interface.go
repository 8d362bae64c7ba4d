package notification

import "context"

// Template names understood by the sender. The intake service guarantees
// the data shape matching each kind; delivery is the sender's concern.
const (
	TemplateContactNotification = "contact-notification"
	TemplateContactConfirmation = "contact-confirmation"
	TemplateBookingNotification = "booking-notification"
	TemplateBookingConfirmation = "booking-confirmation"
	TemplateBookingReminder     = "booking-reminder"
)

// Message is a single templated notification.
type Message struct {
	To       string
	Subject  string
	Template string
	Data     map[string]any
}

// Sender delivers templated notifications. Implementations own their
// delivery timeouts; callers treat every failure as best-effort.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
