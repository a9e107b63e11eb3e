package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Teacher is stored in the 'teachers' collection.
type Teacher struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RegistrationNumber string             `bson:"registration_number" json:"registrationNumber" example:"UAP25001"`
	Name               string             `bson:"name" json:"name"`
	Email              string             `bson:"email" json:"email"`
	Phone              *string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Department         string             `bson:"department" json:"department"`
	Designation        *string            `bson:"designation,omitempty" json:"designation,omitempty"`
	SessionStartYear   int                `bson:"session_start_year" json:"sessionStartYear"`
	SessionEndYear     int                `bson:"session_end_year" json:"sessionEndYear"`
	Password           string             `bson:"password_hash" json:"-"`
	IsActive           bool               `bson:"is_active" json:"isActive"`
	CreatedAt          time.Time          `bson:"created_at" json:"createdAt"`
}
