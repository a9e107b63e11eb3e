package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is stored in the 'students' collection.
type Student struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RegistrationNumber string             `bson:"registration_number" json:"registrationNumber" example:"UAP25001"`
	RollNumber         string             `bson:"roll_number" json:"rollNumber" example:"CSE2025-001"`
	Name               string             `bson:"name" json:"name"`
	Email              string             `bson:"email" json:"email"`
	Phone              *string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Department         string             `bson:"department" json:"department" example:"CSE"`
	Category           *string            `bson:"category,omitempty" json:"category,omitempty"`
	Label              *string            `bson:"label,omitempty" json:"label,omitempty"`
	SessionStartYear   int                `bson:"session_start_year" json:"sessionStartYear" example:"2025"`
	SessionEndYear     int                `bson:"session_end_year" json:"sessionEndYear" example:"2029"`
	AadhaarNumber      *string            `bson:"aadhaar_number,omitempty" json:"aadhaarNumber,omitempty"`
	GuardianName       *string            `bson:"guardian_name,omitempty" json:"guardianName,omitempty"`
	DOB                *time.Time         `bson:"dob,omitempty" json:"dob,omitempty"`
	Address            *string            `bson:"address,omitempty" json:"address,omitempty"`
	Password           string             `bson:"password_hash" json:"-"`
	IsActive           bool               `bson:"is_active" json:"isActive"`
	CreatedAt          time.Time          `bson:"created_at" json:"createdAt"`
}
