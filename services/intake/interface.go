package intake

import (
	"context"
	"time"

	"brightwater/models"
)

// Service turns raw form payloads into persisted-and-notified outcomes.
// Validation failures come back as *ValidationError; any other error is an
// unexpected internal fault. Collaborator failures never surface here.
type Service interface {
	SubmitContact(ctx context.Context, req models.ContactRequest) (*ContactOutcome, error)
	SubmitBooking(ctx context.Context, req models.BookingRequest) (*BookingOutcome, error)
}

// ContactOutcome is the result of a successfully accepted enquiry. The
// reference id is empty when persistence failed or was skipped.
type ContactOutcome struct {
	Message     string
	ReferenceID string
}

// BookingOutcome is the result of a successfully accepted booking request.
// The confirmation token is always present; the booking id is empty when
// persistence failed or was skipped.
type BookingOutcome struct {
	Message           string
	BookingID         string
	ConfirmationToken string
}

// ReminderQueue schedules a follow-up reminder for a pending booking.
// Optional collaborator: a nil queue disables reminders.
type ReminderQueue interface {
	ScheduleBookingReminder(ctx context.Context, sub models.BookingSubmission) error
}

// Config carries the practice details the orchestrator injects into
// notifications. All ambient state comes in here rather than being read
// from the environment at call time.
type Config struct {
	BusinessEmail string
	BusinessName  string
	SiteBaseURL   string
	Timezone      *time.Location
}
