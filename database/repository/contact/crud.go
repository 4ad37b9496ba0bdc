package contactRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"morisbiz/config"
	"morisbiz/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoContactRepo implements ContactRepository using MongoDB.
type MongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo creates a new ContactRepository backed by the given
// database handle.
func NewMongoContactRepo(db *mongo.Database) ContactRepository {
	repo := &MongoContactRepo{coll: db.Collection("contactSubmissions")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), config.StoreTimeout())
}

func wrapErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &models.TimeoutError{Op: op}
	}
	return &models.StoreUnavailableError{Op: op, Err: err}
}

// Create inserts a new submission with a server-assigned ID and timestamp.
func (r *MongoContactRepo) Create(s *models.ContactSubmission) (string, error) {
	ctx, cancel := newContext()
	defer cancel()

	s.ID = uuid.NewString()
	s.SubmittedAt = time.Now()
	s.Read = false
	s.ReadAt = nil

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return "", wrapErr("contact.Create", err)
	}
	return s.ID, nil
}

// List returns all submissions, newest first.
func (r *MongoContactRepo) List() ([]models.ContactSubmission, error) {
	ctx, cancel := newContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, wrapErr("contact.List", err)
	}
	defer cursor.Close(ctx)

	var submissions []models.ContactSubmission
	for cursor.Next(ctx) {
		var s models.ContactSubmission
		if err := cursor.Decode(&s); err != nil {
			return nil, wrapErr("contact.List", err)
		}
		submissions = append(submissions, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, wrapErr("contact.List", err)
	}
	return submissions, nil
}

// GetByID retrieves a submission by its unique ID.
func (r *MongoContactRepo) GetByID(id string) (*models.ContactSubmission, error) {
	ctx, cancel := newContext()
	defer cancel()

	var s models.ContactSubmission
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, wrapErr("contact.GetByID", err)
	}
	return &s, nil
}

// MarkRead flips the read flag and records the time.
func (r *MongoContactRepo) MarkRead(id string) error {
	ctx, cancel := newContext()
	defer cancel()

	update := bson.M{"$set": bson.M{"read": true, "readAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return wrapErr("contact.MarkRead", err)
	}
	if result.MatchedCount == 0 {
		return &models.NotFoundError{Entity: "contact submission", ID: id}
	}
	return nil
}
