package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unifiedacademics/uap-backend/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	EmployeeRepository *EmployeeRepository
	StudentRepository  *StudentRepository
	TeacherRepository  *TeacherRepository
	StaffRepository    *StaffRepository
	ContactRepository  *ContactRepository
	CounterRepository  *CounterRepository
}

// NewRepositories initializes all repositories
func NewRepositories(postgres *db.PostgresDB, mongodb *db.MongoDB) *Repositories {
	return &Repositories{
		EmployeeRepository: NewEmployeeRepository(postgres),
		StudentRepository:  NewStudentRepository(mongodb.Database),
		TeacherRepository:  NewTeacherRepository(mongodb.Database),
		StaffRepository:    NewStaffRepository(mongodb.Database),
		ContactRepository:  NewContactRepository(mongodb.Database),
		CounterRepository:  NewCounterRepository(mongodb.Database),
	}
}

// EnsureIndexes creates the unique indexes the document collections rely on.
// Safe to run on every startup; MongoDB treats matching definitions as no-ops.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	sparse := options.Index().SetUnique(true).SetSparse(true)

	specs := map[string][]mongo.IndexModel{
		studentsCollection: {
			{Keys: bson.D{{Key: "registration_number", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "roll_number", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "aadhaar_number", Value: 1}}, Options: sparse},
		},
		teachersCollection: {
			{Keys: bson.D{{Key: "registration_number", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		staffCollection: {
			{Keys: bson.D{{Key: "employee_number", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		contactRequestsCollection: {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
	}

	for collection, models := range specs {
		if _, err := database.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", collection, err)
		}
	}
	return nil
}
