package models

import "time"

// Session types offered by the practice.
const (
	ServiceIndividual = "individual"
	ServiceCouples    = "couples"
	ServiceAdolescent = "adolescent"
	ServiceTelehealth = "telehealth"
)

// BookingStatusPending is the status attached to every new booking record.
// It is server-derived and never accepted from caller input.
const BookingStatusPending = "pending"

// BookingRequest is the raw booking form payload as submitted by the website.
// PreferredDate must be a calendar date ("2006-01-02") and PreferredTime a
// 24-hour HH:MM value with exactly two digits on each side of the colon.
type BookingRequest struct {
	ClientFirstName string `json:"clientFirstName" validate:"required,max=100"`
	ClientLastName  string `json:"clientLastName" validate:"required,max=100"`
	ClientEmail     string `json:"clientEmail" validate:"required,email"`
	ClientPhone     string `json:"clientPhone" validate:"required,min=10,max=20"`
	ServiceType     string `json:"serviceType" validate:"required,oneof=individual couples adolescent telehealth"`
	PreferredDate   string `json:"preferredDate" validate:"required,datetime=2006-01-02"`
	PreferredTime   string `json:"preferredTime" validate:"required,len=5,datetime=15:04"`
	Location        string `json:"location" validate:"required,oneof=sutherland caringbah telehealth"`
	Notes           string `json:"notes" validate:"omitempty,max=5000"`
}

// BookingSubmission is the immutable record persisted for a validated booking
// request. The confirmation token is generated exactly once at creation.
type BookingSubmission struct {
	ID                string    `bson:"id" json:"id"`
	ClientFirstName   string    `bson:"client_first_name" json:"clientFirstName"`
	ClientLastName    string    `bson:"client_last_name" json:"clientLastName"`
	ClientEmail       string    `bson:"client_email" json:"clientEmail"`
	ClientPhone       string    `bson:"client_phone" json:"clientPhone"`
	ServiceType       string    `bson:"service_type" json:"serviceType"`
	PreferredDate     time.Time `bson:"preferred_date" json:"preferredDate"`
	PreferredTime     string    `bson:"preferred_time" json:"preferredTime"`
	Location          string    `bson:"location" json:"location"`
	Notes             string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status            string    `bson:"status" json:"status"`
	ConfirmationToken string    `bson:"confirmation_token" json:"confirmationToken"`
	CreatedAt         time.Time `bson:"created_at" json:"createdAt"`
}

// BookingResponse is the wire response for POST /bookings. The confirmation
// token is always present on success since it is generated locally; the
// booking id may be absent when persistence failed or was skipped.
type BookingResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	BookingID         string `json:"bookingId,omitempty"`
	ConfirmationToken string `json:"confirmationToken,omitempty"`
}
