package models

import "time"

// Business is a single directory entry. Publicly submitted, admin approved.
type Business struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Category    string    `bson:"category" json:"category"`
	Description string    `bson:"description" json:"description"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone" json:"phone"`
	Website     string    `bson:"website,omitempty" json:"website,omitempty"`
	Location    string    `bson:"location" json:"location"`
	Images      []string  `bson:"images,omitempty" json:"images,omitempty"`
	Services    []string  `bson:"services,omitempty" json:"services,omitempty"`
	Rating      float64   `bson:"rating" json:"rating"` // 0-5, one decimal
	Reviews     []Review  `bson:"reviews" json:"reviews"`
	Views       int64     `bson:"views" json:"views"`
	Featured    bool      `bson:"featured,omitempty" json:"featured,omitempty"`

	Imported   bool       `bson:"imported,omitempty" json:"imported,omitempty"`
	ImportedAt *time.Time `bson:"importedAt,omitempty" json:"importedAt,omitempty"`

	Status          ApprovalStatus `bson:"status" json:"status"`
	ApprovedAt      *time.Time     `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	RejectedAt      *time.Time     `bson:"rejectedAt,omitempty" json:"rejectedAt,omitempty"`
	RejectionReason string         `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Review is embedded in the business document, never stored on its own.
type Review struct {
	Author  string    `bson:"author" json:"author"`
	Rating  float64   `bson:"rating" json:"rating"` // expected 1-5
	Comment string    `bson:"comment" json:"comment"`
	Date    time.Time `bson:"date" json:"date"`
}

// BusinessUpdate carries the fields a caller may change after creation.
// Identity, counters and approval fields are managed elsewhere.
type BusinessUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Website     *string  `json:"website,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Images      []string `json:"images,omitempty"`
	Services    []string `json:"services,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
}
