package models

import "time"

// Enquiry types accepted by the contact form.
const (
	EnquiryGeneral  = "general"
	EnquiryBooking  = "booking"
	EnquiryMedicare = "medicare"
	EnquiryFees     = "fees"
	EnquiryOther    = "other"
)

// Service locations offered by the practice.
const (
	LocationSutherland = "sutherland"
	LocationCaringbah  = "caringbah"
	LocationTelehealth = "telehealth"
)

// ContactStatusNew is the status attached to every new contact record.
// It is server-derived and never accepted from caller input.
const ContactStatusNew = "new"

// ContactRequest is the raw contact form payload as submitted by the website.
type ContactRequest struct {
	FirstName         string `json:"firstName" validate:"required,max=100"`
	LastName          string `json:"lastName" validate:"required,max=100"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone" validate:"omitempty"`
	EnquiryType       string `json:"enquiryType" validate:"required,oneof=general booking medicare fees other"`
	PreferredLocation string `json:"preferredLocation" validate:"omitempty,oneof=sutherland caringbah telehealth"`
	Message           string `json:"message" validate:"required,min=10,max=5000"`
}

// ContactSubmission is the immutable record persisted for a validated enquiry.
type ContactSubmission struct {
	ID                string    `bson:"id" json:"id"`
	FirstName         string    `bson:"first_name" json:"firstName"`
	LastName          string    `bson:"last_name" json:"lastName"`
	Email             string    `bson:"email" json:"email"`
	Phone             string    `bson:"phone,omitempty" json:"phone,omitempty"`
	EnquiryType       string    `bson:"enquiry_type" json:"enquiryType"`
	PreferredLocation string    `bson:"preferred_location,omitempty" json:"preferredLocation,omitempty"`
	Message           string    `bson:"message" json:"message"`
	Status            string    `bson:"status" json:"status"`
	CreatedAt         time.Time `bson:"created_at" json:"createdAt"`
}

// ContactResponse is the wire response for POST /contact.
type ContactResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ReferenceID string `json:"referenceId,omitempty"`
}
