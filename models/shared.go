package models

// ApprovalStatus is the moderation state attached to businesses and properties.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// Valid reports whether s is one of the three known states.
func (s ApprovalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// SortKey selects the single sort order applied to a listing query.
type SortKey string

const (
	SortNone   SortKey = ""
	SortRating SortKey = "rating"  // rating descending
	SortViews  SortKey = "popular" // view count descending
	SortNewest SortKey = "newest"  // creation time descending
)

// BusinessCriteria narrows a business listing query. Zero-value fields are
// ignored; set fields compose conjunctively. Only one sort key is honoured.
type BusinessCriteria struct {
	Category string
	Location string
	Status   ApprovalStatus
	SortBy   SortKey
	Limit    int64
}

// PropertyCriteria narrows a property listing query.
type PropertyCriteria struct {
	Type     string // sale, rent or empty for both
	Location string
	Status   ApprovalStatus
	PriceMin float64
	PriceMax float64
	Band     PriceBand
	SortBy   SortKey
}
