package businessRepo

import (
	"morisbiz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List retrieves businesses matching the criteria. Equality filters compose
// conjunctively; at most one sort key is applied, after filtering.
func (r *MongoBusinessRepo) List(criteria models.BusinessCriteria) ([]models.Business, error) {
	filter := bson.M{}
	if criteria.Category != "" {
		filter["category"] = criteria.Category
	}
	if criteria.Location != "" {
		filter["location"] = criteria.Location
	}
	if criteria.Status != "" {
		filter["status"] = criteria.Status
	}

	opts := options.Find()
	if sort := sortFor(criteria.SortBy); sort != nil {
		opts.SetSort(sort)
	}
	if criteria.Limit > 0 {
		opts.SetLimit(criteria.Limit)
	}

	return r.findAll(filter, opts)
}

// sortFor maps a sort key to its Mongo sort document. SortNone keeps the
// store's natural order.
func sortFor(key models.SortKey) bson.D {
	switch key {
	case models.SortRating:
		return bson.D{{Key: "rating", Value: -1}}
	case models.SortViews:
		return bson.D{{Key: "views", Value: -1}}
	case models.SortNewest:
		return bson.D{{Key: "createdAt", Value: -1}}
	default:
		return nil
	}
}
