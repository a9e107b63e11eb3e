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

const staffCollection = "staff"

// StaffFilter narrows staff listings.
type StaffFilter struct {
	Role            string
	IncludeInactive bool
}

// IStaffRepository defines staff document operations
type IStaffRepository interface {
	Insert(ctx context.Context, staff *models.Staff) error
	FindDuplicateFields(ctx context.Context, email, phone, aadhaar, pan string) ([]string, error)
	GetByEmployeeNumber(ctx context.Context, employeeNumber string) (*models.Staff, error)
	List(ctx context.Context, filter StaffFilter) ([]*models.Staff, error)
	Update(ctx context.Context, employeeNumber string, staff *models.Staff) error
	Delete(ctx context.Context, employeeNumber string) error
	Count(ctx context.Context) (int64, error)
}

// StaffRepository handles staff persistence in MongoDB.
type StaffRepository struct {
	collection *mongo.Collection
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(database *mongo.Database) *StaffRepository {
	return &StaffRepository{collection: database.Collection(staffCollection)}
}

// Insert stores a new staff document.
func (r *StaffRepository) Insert(ctx context.Context, staff *models.Staff) error {
	result, err := r.collection.InsertOne(ctx, staff)
	if err != nil {
		if dberrors.IsMongoDuplicateKey(err) {
			return apperrors.ErrDuplicateRecord
		}
		return fmt.Errorf("error inserting staff member: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		staff.ID = oid
	}
	return nil
}

// FindDuplicateFields reports which unique fields of a candidate already
// exist in the collection.
func (r *StaffRepository) FindDuplicateFields(ctx context.Context, email, phone, aadhaar, pan string) ([]string, error) {
	return findDuplicateFields(ctx, r.collection, []uniqueField{
		{key: "aadhaar_number", label: "aadhaar number", value: aadhaar},
		{key: "pan_number", label: "pan number", value: pan},
		{key: "email", label: "email", value: email},
		{key: "phone", label: "phone", value: phone},
	})
}

// GetByEmployeeNumber retrieves one staff member by employee number
func (r *StaffRepository) GetByEmployeeNumber(ctx context.Context, employeeNumber string) (*models.Staff, error) {
	staff := &models.Staff{}
	err := r.collection.FindOne(ctx, bson.M{"employee_number": employeeNumber}).Decode(staff)
	if err != nil {
		if dberrors.IsNoDocuments(err) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error retrieving staff member: %w", err)
	}
	return staff, nil
}

// List retrieves staff matching the filter, ordered by employee number.
func (r *StaffRepository) List(ctx context.Context, filter StaffFilter) ([]*models.Staff, error) {
	query := bson.M{}
	if filter.Role != "" {
		query["role"] = filter.Role
	}
	if !filter.IncludeInactive {
		query["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "employee_number", Value: 1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing staff: %w", err)
	}
	defer cursor.Close(ctx)

	var staff []*models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("error decoding staff: %w", err)
	}
	return staff, nil
}

// Update overwrites the mutable fields of a staff member. The employee number
// is never rewritten.
func (r *StaffRepository) Update(ctx context.Context, employeeNumber string, staff *models.Staff) error {
	update := bson.M{"$set": bson.M{
		"name":                staff.Name,
		"email":               staff.Email,
		"phone":               staff.Phone,
		"role":                staff.Role,
		"years_of_experience": staff.YearsOfExperience,
		"is_active":           staff.IsActive,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"employee_number": employeeNumber}, update)
	if err != nil {
		if dberrors.IsMongoDuplicateKey(err) {
			return apperrors.ErrDuplicateRecord
		}
		return fmt.Errorf("error updating staff member: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrStaffNotFound
	}
	return nil
}

// Delete removes a staff document.
func (r *StaffRepository) Delete(ctx context.Context, employeeNumber string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"employee_number": employeeNumber})
	if err != nil {
		return fmt.Errorf("error deleting staff member: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrStaffNotFound
	}
	return nil
}

// Count reports the number of staff documents.
func (r *StaffRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting staff: %w", err)
	}
	return count, nil
}
