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

const contactRequestsCollection = "contact_requests"

// IContactRepository defines contact request document operations
type IContactRepository interface {
	Insert(ctx context.Context, request *models.ContactRequest) error
	GetByID(ctx context.Context, id string) (*models.ContactRequest, error)
	List(ctx context.Context, status string) ([]*models.ContactRequest, error)
	UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ContactRepository handles contact request persistence in MongoDB.
type ContactRepository struct {
	collection *mongo.Collection
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(database *mongo.Database) *ContactRepository {
	return &ContactRepository{collection: database.Collection(contactRequestsCollection)}
}

// Insert stores a new contact request.
func (r *ContactRepository) Insert(ctx context.Context, request *models.ContactRequest) error {
	result, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return fmt.Errorf("error inserting contact request: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		request.ID = oid
	}
	return nil
}

// GetByID retrieves one contact request by its hex document ID.
func (r *ContactRepository) GetByID(ctx context.Context, id string) (*models.ContactRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrContactRequestNotFound
	}

	request := &models.ContactRequest{}
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(request)
	if err != nil {
		if dberrors.IsNoDocuments(err) {
			return nil, apperrors.ErrContactRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving contact request: %w", err)
	}
	return request, nil
}

// List retrieves contact requests, newest first, optionally filtered by status.
func (r *ContactRepository) List(ctx context.Context, status string) ([]*models.ContactRequest, error) {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing contact requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []*models.ContactRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("error decoding contact requests: %w", err)
	}
	return requests, nil
}

// UpdateStatus moves a contact request to a new triage status.
func (r *ContactRepository) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrContactRequestNotFound
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("error updating contact request status: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrContactRequestNotFound
	}
	return nil
}

// Delete removes a contact request.
func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrContactRequestNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("error deleting contact request: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrContactRequestNotFound
	}
	return nil
}

// Count reports the number of contact request documents.
func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting contact requests: %w", err)
	}
	return count, nil
}
