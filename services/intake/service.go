package intake

import (
	"context"
	"fmt"
	"sync"
	"time"

	"brightwater/models"
	"brightwater/services/notification"
	"brightwater/utils"

	submissionRepo "brightwater/database/repository/submission"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fixed messages returned to the caller regardless of collaborator outcomes.
const (
	contactAcceptedMessage = "Thank you for your message. We'll be in touch within one business day."
	bookingAcceptedMessage = "Thank you for your booking request. We'll confirm your appointment shortly."
)

const submittedAtLayout = "Mon, 2 Jan 2006 3:04 PM"

// DefaultIntakeService is the production implementation. Repo and Reminders
// are optional; Notifier is required (use the console sender when SMTP is
// not configured).
type DefaultIntakeService struct {
	Repo      submissionRepo.SubmissionRepository
	Notifier  notification.Sender
	Reminders ReminderQueue
	Config    Config
}

// SubmitContact validates an enquiry, then runs the best-effort pipeline:
// persist, notify the business, notify the submitter. Collaborator failures
// are logged and absorbed; the caller always gets the fixed success message.
func (s *DefaultIntakeService) SubmitContact(ctx context.Context, req models.ContactRequest) (*ContactOutcome, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	now := time.Now().In(s.location())
	sub := models.ContactSubmission{
		ID:                uuid.New().String(),
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		EnquiryType:       req.EnquiryType,
		PreferredLocation: req.PreferredLocation,
		Message:           req.Message,
		Status:            models.ContactStatusNew,
		CreatedAt:         now,
	}

	outcome := &ContactOutcome{Message: contactAcceptedMessage}
	if s.Repo != nil {
		id, err := s.Repo.CreateContact(ctx, sub)
		if err != nil {
			logger.Error("SubmitContact: failed to persist submission",
				zap.String("submissionId", sub.ID), zap.Error(err))
		} else {
			outcome.ReferenceID = id
		}
	}

	data := map[string]any{
		"firstName":         sub.FirstName,
		"lastName":          sub.LastName,
		"email":             sub.Email,
		"phone":             sub.Phone,
		"enquiryType":       sub.EnquiryType,
		"preferredLocation": sub.PreferredLocation,
		"message":           sub.Message,
		"submittedAt":       now.Format(submittedAtLayout),
		"referenceId":       outcome.ReferenceID,
		"businessName":      s.Config.BusinessName,
	}

	s.sendPair(ctx, sub.ID,
		notification.Message{
			To:       s.Config.BusinessEmail,
			Subject:  fmt.Sprintf("New enquiry from %s %s", sub.FirstName, sub.LastName),
			Template: notification.TemplateContactNotification,
			Data:     data,
		},
		notification.Message{
			To:       sub.Email,
			Subject:  fmt.Sprintf("We've received your message — %s", s.Config.BusinessName),
			Template: notification.TemplateContactConfirmation,
			Data:     data,
		},
	)

	return outcome, nil
}

// SubmitBooking validates a booking request, derives the server-side fields
// (status, confirmation token), then runs the same best-effort pipeline plus
// an optional reminder enqueue. The confirmation token is generated locally,
// so it is present in the outcome even when persistence fails.
func (s *DefaultIntakeService) SubmitBooking(ctx context.Context, req models.BookingRequest) (*BookingOutcome, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	logger := utils.GetLogger()

	token, err := utils.NewConfirmationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to derive booking fields: %w", err)
	}
	date, err := time.ParseInLocation("2006-01-02", req.PreferredDate, s.location())
	if err != nil {
		return nil, fmt.Errorf("failed to derive booking fields: %w", err)
	}

	now := time.Now().In(s.location())
	sub := models.BookingSubmission{
		ID:                uuid.New().String(),
		ClientFirstName:   req.ClientFirstName,
		ClientLastName:    req.ClientLastName,
		ClientEmail:       req.ClientEmail,
		ClientPhone:       req.ClientPhone,
		ServiceType:       req.ServiceType,
		PreferredDate:     date,
		PreferredTime:     req.PreferredTime,
		Location:          req.Location,
		Notes:             req.Notes,
		Status:            models.BookingStatusPending,
		ConfirmationToken: token,
		CreatedAt:         now,
	}

	outcome := &BookingOutcome{
		Message:           bookingAcceptedMessage,
		ConfirmationToken: token,
	}
	if s.Repo != nil {
		id, err := s.Repo.CreateBooking(ctx, sub)
		if err != nil {
			logger.Error("SubmitBooking: failed to persist submission",
				zap.String("submissionId", sub.ID), zap.Error(err))
		} else {
			outcome.BookingID = id
		}
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(ctx, sub); err != nil {
			logger.Error("SubmitBooking: failed to schedule reminder",
				zap.String("submissionId", sub.ID), zap.Error(err))
		}
	}

	data := map[string]any{
		"clientFirstName":  sub.ClientFirstName,
		"clientLastName":   sub.ClientLastName,
		"clientEmail":      sub.ClientEmail,
		"clientPhone":      sub.ClientPhone,
		"serviceType":      sub.ServiceType,
		"preferredDate":    sub.PreferredDate.Format("Monday, 2 January 2006"),
		"preferredTime":    sub.PreferredTime,
		"location":         sub.Location,
		"notes":            sub.Notes,
		"submittedAt":      now.Format(submittedAtLayout),
		"bookingId":        outcome.BookingID,
		"businessName":     s.Config.BusinessName,
		"confirmationLink": fmt.Sprintf("%s/bookings/confirm?token=%s", s.Config.SiteBaseURL, token),
	}

	s.sendPair(ctx, sub.ID,
		notification.Message{
			To:       s.Config.BusinessEmail,
			Subject:  fmt.Sprintf("New booking request from %s %s", sub.ClientFirstName, sub.ClientLastName),
			Template: notification.TemplateBookingNotification,
			Data:     data,
		},
		notification.Message{
			To:       sub.ClientEmail,
			Subject:  fmt.Sprintf("Your booking request — %s", s.Config.BusinessName),
			Template: notification.TemplateBookingConfirmation,
			Data:     data,
		},
	)

	return outcome, nil
}

// sendPair delivers the business and submitter notifications concurrently.
// The two are independent; each failure is logged and absorbed on its own.
func (s *DefaultIntakeService) sendPair(ctx context.Context, submissionID string, msgs ...notification.Message) {
	logger := utils.GetLogger()

	var wg sync.WaitGroup
	for _, msg := range msgs {
		wg.Add(1)
		go func(msg notification.Message) {
			defer wg.Done()
			if err := s.Notifier.Send(ctx, msg); err != nil {
				logger.Error("Failed to send notification",
					zap.String("template", msg.Template),
					zap.String("submissionId", submissionID),
					zap.Error(err))
			}
		}(msg)
	}
	wg.Wait()
}

func (s *DefaultIntakeService) location() *time.Location {
	if s.Config.Timezone != nil {
		return s.Config.Timezone
	}
	return time.UTC
}
