package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactStatus tracks triage of a public contact request.
type ContactStatus string

// Contact request statuses
const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusResolved ContactStatus = "resolved"
)

// ValidContactStatus reports whether the value names a known status.
func ValidContactStatus(value string) bool {
	switch ContactStatus(value) {
	case ContactStatusNew, ContactStatusRead, ContactStatusResolved:
		return true
	}
	return false
}

// ContactRequest is stored in the 'contact_requests' collection. It is created
// by the public contact form; the admin surface only reads it and moves its
// status.
type ContactRequest struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	Status    ContactStatus      `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
