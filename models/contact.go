package models

import "time"

// ContactSubmission is a message left through the public contact form.
// Submissions are only ever flipped to read, never deleted.
type ContactSubmission struct {
	ID          string     `bson:"id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Email       string     `bson:"email" json:"email"`
	Phone       string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject     string     `bson:"subject,omitempty" json:"subject,omitempty"`
	Message     string     `bson:"message" json:"message"`
	SubmittedAt time.Time  `bson:"submittedAt" json:"submittedAt"`
	Read        bool       `bson:"read" json:"read"`
	ReadAt      *time.Time `bson:"readAt,omitempty" json:"readAt,omitempty"`
}
