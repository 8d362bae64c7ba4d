package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplates(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]any
		contains []string
	}{
		{
			name:     "contact notification",
			template: TemplateContactNotification,
			data: map[string]any{
				"firstName":   "Jo",
				"lastName":    "Lee",
				"email":       "jo@example.com",
				"enquiryType": "general",
				"message":     "Hello there, I have a question.",
				"submittedAt": "Mon, 1 Sep 2025 10:30 AM",
				"referenceId": "abc-123",
			},
			contains: []string{"Jo Lee", "jo@example.com", "abc-123", "Hello there"},
		},
		{
			name:     "contact confirmation",
			template: TemplateContactConfirmation,
			data: map[string]any{
				"firstName":    "Jo",
				"businessName": "Brightwater Counselling",
			},
			contains: []string{"Hi Jo", "Brightwater Counselling"},
		},
		{
			name:     "booking notification omits empty reference",
			template: TemplateBookingNotification,
			data: map[string]any{
				"clientFirstName": "Jo",
				"clientLastName":  "Lee",
				"clientEmail":     "jo@example.com",
				"clientPhone":     "0412345678",
				"serviceType":     "individual",
				"preferredDate":   "Thursday, 1 October 2026",
				"preferredTime":   "09:30",
				"location":        "telehealth",
				"submittedAt":     "Mon, 1 Sep 2025 10:30 AM",
				"bookingId":       "",
			},
			contains: []string{"Jo Lee", "09:30", "telehealth"},
		},
		{
			name:     "booking confirmation carries link",
			template: TemplateBookingConfirmation,
			data: map[string]any{
				"clientFirstName":  "Jo",
				"businessName":     "Brightwater Counselling",
				"preferredDate":    "Thursday, 1 October 2026",
				"preferredTime":    "09:30",
				"confirmationLink": "https://brightwatercounselling.com.au/bookings/confirm?token=tok123",
			},
			contains: []string{`href="https://brightwatercounselling.com.au/bookings/confirm?token=tok123"`},
		},
		{
			name:     "booking reminder",
			template: TemplateBookingReminder,
			data: map[string]any{
				"clientName":    "Jo Lee",
				"serviceType":   "couples",
				"preferredDate": "Thursday, 1 October 2026",
				"preferredTime": "14:00",
				"location":      "sutherland",
				"bookingId":     "abc-123",
			},
			contains: []string{"Jo Lee", "couples", "abc-123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := renderTemplate(tt.template, tt.data)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestRenderTemplateUnknownName(t *testing.T) {
	_, err := renderTemplate("password-reset", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown notification template")
}

func TestRenderTemplateEscapesHTML(t *testing.T) {
	body, err := renderTemplate(TemplateContactNotification, map[string]any{
		"firstName":   "Jo",
		"lastName":    "Lee",
		"email":       "jo@example.com",
		"enquiryType": "general",
		"message":     `<script>alert("x")</script>`,
		"submittedAt": "Mon, 1 Sep 2025 10:30 AM",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestConsoleSenderSwallowsNothing(t *testing.T) {
	sender := NewConsoleSender(testLogger(t))

	err := sender.Send(context.Background(), Message{
		To:       "jo@example.com",
		Subject:  "We've received your message",
		Template: TemplateContactConfirmation,
		Data:     map[string]any{"firstName": "Jo", "businessName": "Brightwater Counselling"},
	})
	assert.NoError(t, err)

	err = sender.Send(context.Background(), Message{Template: "nope"})
	assert.Error(t, err, "a bad template name still surfaces to the caller")
}
