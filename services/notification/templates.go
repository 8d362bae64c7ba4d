package notification

import (
	"bytes"
	"fmt"
	"html/template"
)

// Email bodies for the five notification kinds. Kept as one parsed set so
// an unknown template name fails at send time with a clear error rather
// than delivering an empty body.
var templates = template.Must(template.New("notifications").Parse(`
{{define "contact-notification"}}
<h2>New enquiry via the website</h2>
<p><strong>Name:</strong> {{.firstName}} {{.lastName}}</p>
<p><strong>Email:</strong> {{.email}}</p>
{{if .phone}}<p><strong>Phone:</strong> {{.phone}}</p>{{end}}
<p><strong>Enquiry type:</strong> {{.enquiryType}}</p>
{{if .preferredLocation}}<p><strong>Preferred location:</strong> {{.preferredLocation}}</p>{{end}}
<p><strong>Message:</strong></p>
<p>{{.message}}</p>
<p><strong>Submitted:</strong> {{.submittedAt}}</p>
{{if .referenceId}}<p><strong>Reference:</strong> {{.referenceId}}</p>{{end}}
{{end}}

{{define "contact-confirmation"}}
<p>Hi {{.firstName}},</p>
<p>Thanks for reaching out to {{.businessName}}. Your message has arrived
safely and we'll be in touch within one business day.</p>
<p>If your enquiry is urgent, please call the practice directly.</p>
<p>Warm regards,<br>{{.businessName}}</p>
{{end}}

{{define "booking-notification"}}
<h2>New booking request via the website</h2>
<p><strong>Client:</strong> {{.clientFirstName}} {{.clientLastName}}</p>
<p><strong>Email:</strong> {{.clientEmail}}</p>
<p><strong>Phone:</strong> {{.clientPhone}}</p>
<p><strong>Session type:</strong> {{.serviceType}}</p>
<p><strong>Preferred date:</strong> {{.preferredDate}} at {{.preferredTime}}</p>
<p><strong>Location:</strong> {{.location}}</p>
{{if .notes}}<p><strong>Notes:</strong></p><p>{{.notes}}</p>{{end}}
<p><strong>Submitted:</strong> {{.submittedAt}}</p>
{{if .bookingId}}<p><strong>Reference:</strong> {{.bookingId}}</p>{{end}}
{{end}}

{{define "booking-confirmation"}}
<p>Hi {{.clientFirstName}},</p>
<p>Thanks for your booking request with {{.businessName}} for
{{.preferredDate}} at {{.preferredTime}}.</p>
<p>We'll confirm your appointment shortly. You can review your request at
any time using the link below:</p>
<p><a href="{{.confirmationLink}}">Confirm your booking</a></p>
<p>Warm regards,<br>{{.businessName}}</p>
{{end}}

{{define "booking-reminder"}}
<h2>Booking still pending</h2>
<p>{{.clientName}} requested a {{.serviceType}} session for
{{.preferredDate}} at {{.preferredTime}} ({{.location}}) and the booking is
still pending.</p>
{{if .bookingId}}<p><strong>Reference:</strong> {{.bookingId}}</p>{{end}}
{{end}}
`))

func renderTemplate(name string, data map[string]any) (string, error) {
	if templates.Lookup(name) == nil {
		return "", fmt.Errorf("unknown notification template %q", name)
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}
	return buf.String(), nil
}
