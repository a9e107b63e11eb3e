package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unifiedacademics/uap-backend/internal/app/models"
	"github.com/unifiedacademics/uap-backend/internal/pkg/apperrors"
	"github.com/unifiedacademics/uap-backend/internal/pkg/dberrors"
)

const studentsCollection = "students"

// StudentFilter narrows student listings.
type StudentFilter struct {
	Department       string
	SessionStartYear int
	IncludeInactive  bool
}

// IStudentRepository defines student document operations
type IStudentRepository interface {
	Insert(ctx context.Context, student *models.Student) error
	FindDuplicateFields(ctx context.Context, email, phone, aadhaar string) ([]string, error)
	GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*models.Student, error)
	List(ctx context.Context, filter StudentFilter) ([]*models.Student, error)
	Update(ctx context.Context, registrationNumber string, student *models.Student) error
	Delete(ctx context.Context, registrationNumber string) error
	Count(ctx context.Context) (int64, error)
}

// StudentRepository handles student persistence in MongoDB.
type StudentRepository struct {
	collection *mongo.Collection
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database *mongo.Database) *StudentRepository {
	return &StudentRepository{collection: database.Collection(studentsCollection)}
}

// Insert stores a new student document.
func (r *StudentRepository) Insert(ctx context.Context, student *models.Student) error {
	result, err := r.collection.InsertOne(ctx, student)
	if err != nil {
		if dberrors.IsMongoDuplicateKey(err) {
			return apperrors.ErrDuplicateRecord
		}
		return fmt.Errorf("error inserting student: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		student.ID = oid
	}
	return nil
}

// FindDuplicateFields reports which unique fields of a candidate already
// exist in the collection. Empty values are ignored.
func (r *StudentRepository) FindDuplicateFields(ctx context.Context, email, phone, aadhaar string) ([]string, error) {
	return findDuplicateFields(ctx, r.collection, []uniqueField{
		{key: "aadhaar_number", label: "aadhaar number", value: aadhaar},
		{key: "email", label: "email", value: email},
		{key: "phone", label: "phone", value: phone},
	})
}

// GetByRegistrationNumber retrieves one student by registration number
func (r *StudentRepository) GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*models.Student, error) {
	student := &models.Student{}
	err := r.collection.FindOne(ctx, bson.M{"registration_number": registrationNumber}).Decode(student)
	if err != nil {
		if dberrors.IsNoDocuments(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// List retrieves students matching the filter, ordered by roll number.
func (r *StudentRepository) List(ctx context.Context, filter StudentFilter) ([]*models.Student, error) {
	query := bson.M{}
	if filter.Department != "" {
		query["department"] = filter.Department
	}
	if filter.SessionStartYear != 0 {
		query["session_start_year"] = filter.SessionStartYear
	}
	if !filter.IncludeInactive {
		query["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "roll_number", Value: 1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []*models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("error decoding students: %w", err)
	}
	return students, nil
}

// Update overwrites the mutable fields of a student. Registration and roll
// numbers are never rewritten.
func (r *StudentRepository) Update(ctx context.Context, registrationNumber string, student *models.Student) error {
	update := bson.M{"$set": bson.M{
		"name":          student.Name,
		"email":         student.Email,
		"phone":         student.Phone,
		"category":      student.Category,
		"label":         student.Label,
		"guardian_name": student.GuardianName,
		"address":       student.Address,
		"is_active":     student.IsActive,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"registration_number": registrationNumber}, update)
	if err != nil {
		if dberrors.IsMongoDuplicateKey(err) {
			return apperrors.ErrDuplicateRecord
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student document.
func (r *StudentRepository) Delete(ctx context.Context, registrationNumber string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"registration_number": registrationNumber})
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Count reports the number of student documents.
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
