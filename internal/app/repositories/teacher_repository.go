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

const teachersCollection = "teachers"

// TeacherFilter narrows teacher listings.
type TeacherFilter struct {
	Department      string
	IncludeInactive bool
}

// ITeacherRepository defines teacher document operations
type ITeacherRepository interface {
	Insert(ctx context.Context, teacher *models.Teacher) error
	FindDuplicateFields(ctx context.Context, email, phone string) ([]string, error)
	GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*models.Teacher, error)
	List(ctx context.Context, filter TeacherFilter) ([]*models.Teacher, error)
	Update(ctx context.Context, registrationNumber string, teacher *models.Teacher) error
	Delete(ctx context.Context, registrationNumber string) error
	Count(ctx context.Context) (int64, error)
}

// TeacherRepository handles teacher persistence in MongoDB.
type TeacherRepository struct {
	collection *mongo.Collection
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(database *mongo.Database) *TeacherRepository {
	return &TeacherRepository{collection: database.Collection(teachersCollection)}
}

// Insert stores a new teacher document.
func (r *TeacherRepository) Insert(ctx context.Context, teacher *models.Teacher) error {
	result, err := r.collection.InsertOne(ctx, teacher)
	if err != nil {
		if dberrors.IsMongoDuplicateKey(err) {
			return apperrors.ErrDuplicateRecord
		}
		return fmt.Errorf("error inserting teacher: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		teacher.ID = oid
	}
	return nil
}

// FindDuplicateFields reports which unique fields of a candidate already
// exist in the collection.
func (r *TeacherRepository) FindDuplicateFields(ctx context.Context, email, phone string) ([]string, error) {
	return findDuplicateFields(ctx, r.collection, []uniqueField{
		{key: "email", label: "email", value: email},
		{key: "phone", label: "phone", value: phone},
	})
}

// GetByRegistrationNumber retrieves one teacher by registration number
func (r *TeacherRepository) GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*models.Teacher, error) {
	teacher := &models.Teacher{}
	err := r.collection.FindOne(ctx, bson.M{"registration_number": registrationNumber}).Decode(teacher)
	if err != nil {
		if dberrors.IsNoDocuments(err) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return teacher, nil
}

// List retrieves teachers matching the filter, ordered by registration number.
func (r *TeacherRepository) List(ctx context.Context, filter TeacherFilter) ([]*models.Teacher, error) {
	query := bson.M{}
	if filter.Department != "" {
		query["department"] = filter.Department
	}
	if !filter.IncludeInactive {
		query["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "registration_number", Value: 1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing teachers: %w", err)
	}
	defer cursor.Close(ctx)

	var teachers []*models.Teacher
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, fmt.Errorf("error decoding teachers: %w", err)
	}
	return teachers, nil
}

// Update overwrites the mutable fields of a teacher. The registration number
// is never rewritten.
func (r *TeacherRepository) Update(ctx context.Context, registrationNumber string, teacher *models.Teacher) error {
	update := bson.M{"$set": bson.M{
		"name":        teacher.Name,
		"email":       teacher.Email,
		"phone":       teacher.Phone,
		"designation": teacher.Designation,
		"is_active":   teacher.IsActive,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"registration_number": registrationNumber}, update)
	if err != nil {
		if dberrors.IsMongoDuplicateKey(err) {
			return apperrors.ErrDuplicateRecord
		}
		return fmt.Errorf("error updating teacher: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

// Delete removes a teacher document.
func (r *TeacherRepository) Delete(ctx context.Context, registrationNumber string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"registration_number": registrationNumber})
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

// Count reports the number of teacher documents.
func (r *TeacherRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting teachers: %w", err)
	}
	return count, nil
}
