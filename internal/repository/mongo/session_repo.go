package mongo

import (
	"context"
	"errors"
	"log"
	"time"

	"vitalfit/wellness-app/internal/domain"
	"vitalfit/wellness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionCollectionName = "workout_sessions"

// mongoSessionRepository implements repository.SessionRepository
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new workout session repository.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// Create inserts a new workout session.
func (r *mongoSessionRepository) Create(ctx context.Context, session *domain.WorkoutSession) (string, error) {
	if session.UserID == "" || session.WorkoutID == "" {
		return "", errors.New("session requires userId and workoutId")
	}
	session.ID = primitive.NewObjectID().Hex()
	session.Status = domain.SessionActive
	session.StartedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, session); err != nil {
		return "", err
	}
	return session.ID, nil
}

// GetByID retrieves a single session by its ID.
func (r *mongoSessionRepository) GetByID(ctx context.Context, id string) (*domain.WorkoutSession, error) {
	var session domain.WorkoutSession
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Complete marks an active session as completed and returns the updated
// document. The filter includes userID so users can only complete their own
// sessions.
func (r *mongoSessionRepository) Complete(ctx context.Context, id string, userID string) (*domain.WorkoutSession, error) {
	if id == "" || userID == "" {
		return nil, errors.New("session ID and user ID are required")
	}

	now := time.Now().UTC()
	filter := bson.M{
		"_id":    id,
		"userId": userID,
		"status": domain.SessionActive,
	}
	update := bson.M{
		"$set": bson.M{
			"status":      domain.SessionCompleted,
			"completedAt": now,
		},
	}

	var session domain.WorkoutSession
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// EnsureSessionIndexes creates necessary indexes. Call during startup.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
