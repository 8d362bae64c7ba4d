package submissionRepo

import (
	"context"
	"time"

	"brightwater/models"

	"github.com/google/uuid"
)

// CreateContact inserts a new contact submission and returns its ID.
func (r *mongoSubmissionRepo) CreateContact(ctx context.Context, sub models.ContactSubmission) (string, error) {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.contacts.InsertOne(ctx, sub); err != nil {
		return "", err
	}
	return sub.ID, nil
}

// CreateBooking inserts a new booking submission and returns its ID.
func (r *mongoSubmissionRepo) CreateBooking(ctx context.Context, sub models.BookingSubmission) (string, error) {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.bookings.InsertOne(ctx, sub); err != nil {
		return "", err
	}
	return sub.ID, nil
}

// CheckConnection reports whether the store is currently reachable.
func (r *mongoSubmissionRepo) CheckConnection(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return r.client.Ping(ctx, nil) == nil
}
