package propertyRepo

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

// MongoPropertyRepo implements PropertyRepository using MongoDB.
type MongoPropertyRepo struct {
	coll *mongo.Collection
}

// NewMongoPropertyRepo creates a new PropertyRepository backed by the given
// database handle.
func NewMongoPropertyRepo(db *mongo.Database) PropertyRepository {
	repo := &MongoPropertyRepo{coll: db.Collection("properties")}

	if err := repo.ensureIndexes(); err != nil {
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

func (r *MongoPropertyRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// List retrieves properties matching the criteria. A price band on the
// criteria is translated to its [min, max) range before querying; explicit
// PriceMin/PriceMax take precedence over a band.
func (r *MongoPropertyRepo) List(criteria models.PropertyCriteria) ([]models.Property, error) {
	filter := bson.M{}
	if criteria.Type != "" {
		filter["type"] = criteria.Type
	}
	if criteria.Location != "" {
		filter["location"] = criteria.Location
	}
	if criteria.Status != "" {
		filter["status"] = criteria.Status
	}

	priceMin, priceMax := criteria.PriceMin, criteria.PriceMax
	if priceMin == 0 && priceMax == 0 && criteria.Band.Valid() {
		priceMin, priceMax = criteria.Band.Range()
	}
	price := bson.M{}
	if priceMin > 0 {
		price["$gte"] = priceMin
	}
	if priceMax > 0 {
		price["$lt"] = priceMax
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	opts := options.Find()
	switch criteria.SortBy {
	case models.SortNewest:
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}

	return r.findAll(filter, opts)
}

// GetByID retrieves a property by its unique ID.
func (r *MongoPropertyRepo) GetByID(id string) (*models.Property, error) {
	ctx, cancel := newContext()
	defer cancel()

	var p models.Property
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, wrapErr("property.GetByID", err)
	}
	return &p, nil
}

// GetAll retrieves every property document.
func (r *MongoPropertyRepo) GetAll() ([]models.Property, error) {
	return r.findAll(bson.M{}, options.Find())
}

func (r *MongoPropertyRepo) findAll(filter bson.M, opts *options.FindOptions) ([]models.Property, error) {
	ctx, cancel := newContext()
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, wrapErr("property.List", err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	for cursor.Next(ctx) {
		var p models.Property
		if err := cursor.Decode(&p); err != nil {
			return nil, wrapErr("property.List", err)
		}
		properties = append(properties, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, wrapErr("property.List", err)
	}
	return properties, nil
}

// Create inserts a new property document with forced initial state.
func (r *MongoPropertyRepo) Create(p *models.Property) (string, error) {
	ctx, cancel := newContext()
	defer cancel()

	now := time.Now()
	p.ID = uuid.NewString()
	p.Status = models.StatusPending
	p.ApprovedAt = nil
	p.RejectedAt = nil
	p.RejectionReason = ""
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return "", wrapErr("property.Create", err)
	}
	return p.ID, nil
}

// Update merges fields into an existing property document. The id and
// createdAt fields are stripped before the update.
func (r *MongoPropertyRepo) Update(id string, fields map[string]interface{}) error {
	ctx, cancel := newContext()
	defer cancel()

	set := bson.M{}
	for k, v := range fields {
		if k == "id" || k == "createdAt" {
			continue
		}
		set[k] = v
	}
	set["updatedAt"] = time.Now()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return wrapErr("property.Update", err)
	}
	if result.MatchedCount == 0 {
		return &models.NotFoundError{Entity: "property", ID: id}
	}
	return nil
}

// SetApprovalState mirrors the business guard: the conditional filter only
// matches pending documents, and re-applying the current state is a no-op.
func (r *MongoPropertyRepo) SetApprovalState(id string, state models.ApprovalStatus, reason string) error {
	ctx, cancel := newContext()
	defer cancel()

	now := time.Now()
	set := bson.M{"status": state, "updatedAt": now}
	switch state {
	case models.StatusApproved:
		set["approvedAt"] = now
	case models.StatusRejected:
		set["rejectedAt"] = now
		set["rejectionReason"] = reason
	}

	filter := bson.M{"id": id, "status": models.StatusPending}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return wrapErr("property.SetApprovalState", err)
	}
	if result.MatchedCount > 0 {
		return nil
	}

	current, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if current == nil {
		return &models.NotFoundError{Entity: "property", ID: id}
	}
	if current.Status == state {
		return nil
	}
	return &models.InvalidTransitionError{From: current.Status, To: state}
}

// Delete removes a property document, idempotently.
func (r *MongoPropertyRepo) Delete(id string) error {
	ctx, cancel := newContext()
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return wrapErr("property.Delete", err)
	}
	return nil
}
