package submissionRepo

import (
	"context"

	"brightwater/config"
	"brightwater/database"
	"brightwater/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SubmissionRepository is the record store for validated form submissions.
// Implementations own their call timeouts.
type SubmissionRepository interface {
	CreateContact(ctx context.Context, sub models.ContactSubmission) (string, error)
	CreateBooking(ctx context.Context, sub models.BookingSubmission) (string, error)
	CheckConnection(ctx context.Context) bool
}

type mongoSubmissionRepo struct {
	client   *mongo.Client
	contacts *mongo.Collection
	bookings *mongo.Collection
}

// NewMongoSubmissionRepo returns a new SubmissionRepository instance using MongoDB.
func NewMongoSubmissionRepo() SubmissionRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDatabase)
	return &mongoSubmissionRepo{
		client:   database.MongoClient,
		contacts: db.Collection("contact_submissions"),
		bookings: db.Collection("booking_submissions"),
	}
}
