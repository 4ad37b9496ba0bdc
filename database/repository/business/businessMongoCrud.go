package businessRepo

import (
	"time"

	"morisbiz/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new business document. The server assigns the ID and
// creation timestamp; approval state and counters are forced to their
// initial values regardless of what the caller supplied.
func (r *MongoBusinessRepo) Create(b *models.Business) (string, error) {
	ctx, cancel := newContext()
	defer cancel()

	now := time.Now()
	b.ID = uuid.NewString()
	b.Status = models.StatusPending
	b.Rating = 0
	b.Views = 0
	b.Reviews = []models.Review{}
	b.ApprovedAt = nil
	b.RejectedAt = nil
	b.RejectionReason = ""
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return "", wrapErr("business.Create", err)
	}
	return b.ID, nil
}

// Update merges the set fields of upd into an existing document. Identity
// and creation timestamp cannot be changed through this path.
func (r *MongoBusinessRepo) Update(id string, upd models.BusinessUpdate) error {
	ctx, cancel := newContext()
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Website != nil {
		set["website"] = *upd.Website
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Images != nil {
		set["images"] = upd.Images
	}
	if upd.Services != nil {
		set["services"] = upd.Services
	}
	if upd.Featured != nil {
		set["featured"] = *upd.Featured
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return wrapErr("business.Update", err)
	}
	if result.MatchedCount == 0 {
		return &models.NotFoundError{Entity: "business", ID: id}
	}
	return nil
}

// SetApprovalState transitions the approval state with a conditional update:
// the filter only matches documents still in pending, so concurrent admin
// actions cannot overwrite a decision. Re-applying the current state is a
// no-op; any other transition from a decided state is refused.
func (r *MongoBusinessRepo) SetApprovalState(id string, state models.ApprovalStatus, reason string) error {
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
		return wrapErr("business.SetApprovalState", err)
	}
	if result.MatchedCount > 0 {
		return nil
	}

	current, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if current == nil {
		return &models.NotFoundError{Entity: "business", ID: id}
	}
	if current.Status == state {
		return nil
	}
	return &models.InvalidTransitionError{From: current.Status, To: state}
}

// Delete removes a business document. Deleting an absent ID succeeds so the
// operation stays idempotent.
func (r *MongoBusinessRepo) Delete(id string) error {
	ctx, cancel := newContext()
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return wrapErr("business.Delete", err)
	}
	return nil
}

// IncrementViews bumps the view counter with an atomic $inc so concurrent
// visitors never lose an update.
func (r *MongoBusinessRepo) IncrementViews(id string) error {
	ctx, cancel := newContext()
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return wrapErr("business.IncrementViews", err)
	}
	if result.MatchedCount == 0 {
		return &models.NotFoundError{Entity: "business", ID: id}
	}
	return nil
}

// AddReview appends a review and stores the recomputed average rating.
func (r *MongoBusinessRepo) AddReview(id string, review models.Review, newRating float64) error {
	ctx, cancel := newContext()
	defer cancel()

	update := bson.M{
		"$push": bson.M{"reviews": review},
		"$set":  bson.M{"rating": newRating, "updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return wrapErr("business.AddReview", err)
	}
	if result.MatchedCount == 0 {
		return &models.NotFoundError{Entity: "business", ID: id}
	}
	return nil
}
