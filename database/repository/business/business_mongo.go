package businessRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"morisbiz/config"
	"morisbiz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo creates a new instance of BusinessRepository backed by
// the given database handle.
func NewMongoBusinessRepo(db *mongo.Database) BusinessRepository {
	repo := &MongoBusinessRepo{coll: db.Collection("businesses")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the configured store timeout.
func newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), config.StoreTimeout())
}

// wrapErr classifies a store failure into the domain error kinds.
func wrapErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &models.TimeoutError{Op: op}
	}
	return &models.StoreUnavailableError{Op: op, Err: err}
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoBusinessRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a business by its unique ID.
func (r *MongoBusinessRepo) GetByID(id string) (*models.Business, error) {
	ctx, cancel := newContext()
	defer cancel()

	var b models.Business
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, wrapErr("business.GetByID", err)
	}
	return &b, nil
}

// FindByNameAndEmail retrieves a business matching both name and email.
func (r *MongoBusinessRepo) FindByNameAndEmail(name, email string) (*models.Business, error) {
	ctx, cancel := newContext()
	defer cancel()

	var b models.Business
	filter := bson.M{"name": name, "email": email}
	if err := r.coll.FindOne(ctx, filter).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, wrapErr("business.FindByNameAndEmail", err)
	}
	return &b, nil
}

// GetAll retrieves every business document.
func (r *MongoBusinessRepo) GetAll() ([]models.Business, error) {
	return r.findAll(bson.M{}, nil)
}

// findAll runs a filtered find and decodes the cursor.
func (r *MongoBusinessRepo) findAll(filter bson.M, opts *options.FindOptions) ([]models.Business, error) {
	ctx, cancel := newContext()
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, wrapErr("business.List", err)
	}
	defer cursor.Close(ctx)

	var businesses []models.Business
	for cursor.Next(ctx) {
		var b models.Business
		if err := cursor.Decode(&b); err != nil {
			return nil, wrapErr("business.List", err)
		}
		businesses = append(businesses, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, wrapErr("business.List", err)
	}
	return businesses, nil
}
