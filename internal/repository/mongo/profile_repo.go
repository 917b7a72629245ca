package mongo

import (
	"context"
	"errors"

	"vitalfit/wellness-app/internal/domain"
	"vitalfit/wellness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const profileCollectionName = "profiles"

// mongoProfileRepository implements repository.ProfileRepository
type mongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new Profile repository.
func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &mongoProfileRepository{
		collection: db.Collection(profileCollectionName),
	}
}

// GetByID retrieves a user's profile. Profiles are written by the auth
// backend; this layer only reads them.
func (r *mongoProfileRepository) GetByID(ctx context.Context, userID string) (*domain.Profile, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	var profile domain.Profile
	filter := bson.M{"_id": userID}
	err := r.collection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}
