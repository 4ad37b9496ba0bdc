package analyticsRepo

import (
	"context"
	"errors"
	"time"

	"morisbiz/config"
	"morisbiz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAnalyticsRepo implements AnalyticsRepository using MongoDB. Daily
// documents are keyed by their YYYY-MM-DD date string as _id.
type MongoAnalyticsRepo struct {
	coll *mongo.Collection
}

// NewMongoAnalyticsRepo creates a new AnalyticsRepository backed by the
// given database handle.
func NewMongoAnalyticsRepo(db *mongo.Database) AnalyticsRepository {
	return &MongoAnalyticsRepo{coll: db.Collection("analytics")}
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

// IncrementPageView bumps the day's total and per-path counters in one
// upserted $inc, creating the document on the first event of the day.
func (r *MongoAnalyticsRepo) IncrementPageView(date, pathKey string) error {
	update := bson.M{
		"$inc": bson.M{
			"totalViews":           1,
			"pageViews." + pathKey: 1,
		},
		"$set":         bson.M{"lastUpdated": time.Now()},
		"$setOnInsert": bson.M{"createdAt": time.Now()},
	}
	return r.upsert(date, update, "analytics.IncrementPageView")
}

// IncrementAdminClick bumps the day's counter for one admin action key.
func (r *MongoAnalyticsRepo) IncrementAdminClick(date, actionKey string) error {
	update := bson.M{
		"$inc":         bson.M{"adminClicks." + actionKey: 1},
		"$set":         bson.M{"lastUpdated": time.Now()},
		"$setOnInsert": bson.M{"createdAt": time.Now()},
	}
	return r.upsert(date, update, "analytics.IncrementAdminClick")
}

func (r *MongoAnalyticsRepo) upsert(date string, update bson.M, op string) error {
	ctx, cancel := newContext()
	defer cancel()

	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": date}, update, opts); err != nil {
		return wrapErr(op, err)
	}
	return nil
}

// Range retrieves daily records with date keys in [start, end], ascending.
func (r *MongoAnalyticsRepo) Range(start, end string) ([]models.DailyAnalytics, error) {
	ctx, cancel := newContext()
	defer cancel()

	filter := bson.M{"_id": bson.M{"$gte": start, "$lte": end}}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, wrapErr("analytics.Range", err)
	}
	defer cursor.Close(ctx)

	var records []models.DailyAnalytics
	for cursor.Next(ctx) {
		var rec models.DailyAnalytics
		if err := cursor.Decode(&rec); err != nil {
			return nil, wrapErr("analytics.Range", err)
		}
		records = append(records, rec)
	}
	if err := cursor.Err(); err != nil {
		return nil, wrapErr("analytics.Range", err)
	}
	return records, nil
}

// TotalViews sums the total counter across all daily records with a single
// $group aggregation.
func (r *MongoAnalyticsRepo) TotalViews() (int64, error) {
	ctx, cancel := newContext()
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$totalViews"}}},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, wrapErr("analytics.TotalViews", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Total int64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, wrapErr("analytics.TotalViews", err)
		}
	}
	return result.Total, nil
}
