package models

import "time"

// Property types.
const (
	PropertySale = "sale"
	PropertyRent = "rent"
)

// Property is a real estate listing. Same approval lifecycle as Business.
type Property struct {
	ID          string   `bson:"id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Type        string   `bson:"type" json:"type"` // sale or rent
	Price       float64  `bson:"price" json:"price"`
	Location    string   `bson:"location" json:"location"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Bedrooms    int      `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms   int      `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Area        float64  `bson:"area,omitempty" json:"area,omitempty"` // square metres
	Images      []string `bson:"images,omitempty" json:"images,omitempty"`

	Status          ApprovalStatus `bson:"status" json:"status"`
	ApprovedAt      *time.Time     `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	RejectedAt      *time.Time     `bson:"rejectedAt,omitempty" json:"rejectedAt,omitempty"`
	RejectionReason string         `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PriceBand buckets listing prices for the browse filter.
type PriceBand string

const (
	BandLow     PriceBand = "low"
	BandMedium  PriceBand = "medium"
	BandHigh    PriceBand = "high"
	BandPremium PriceBand = "premium"
)

// Band boundaries in rupees. Each band's floor is inclusive, its ceiling
// exclusive: low [0, 50000), medium [50000, 200000), high [200000, 500000),
// premium [500000, inf). A price of exactly 50000 is medium.
const (
	bandMediumFloor  = 50000
	bandHighFloor    = 200000
	bandPremiumFloor = 500000
)

// BandFor classifies a price into its band.
func BandFor(price float64) PriceBand {
	switch {
	case price >= bandPremiumFloor:
		return BandPremium
	case price >= bandHighFloor:
		return BandHigh
	case price >= bandMediumFloor:
		return BandMedium
	default:
		return BandLow
	}
}

// Range returns the half-open [min, max) price interval for the band.
// A max of 0 means unbounded.
func (b PriceBand) Range() (min, max float64) {
	switch b {
	case BandLow:
		return 0, bandMediumFloor
	case BandMedium:
		return bandMediumFloor, bandHighFloor
	case BandHigh:
		return bandHighFloor, bandPremiumFloor
	case BandPremium:
		return bandPremiumFloor, 0
	default:
		return 0, 0
	}
}

// Valid reports whether the band is one of the four known bands.
func (b PriceBand) Valid() bool {
	switch b {
	case BandLow, BandMedium, BandHigh, BandPremium:
		return true
	}
	return false
}
