package mongo

import (
	"context"
	"errors"
	"log"

	"vitalfit/wellness-app/internal/domain"
	"vitalfit/wellness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// GetByID retrieves a single workout by its ID.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	var workout domain.Workout
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// List returns the shared workout library plus any workouts owned by the
// given user. Pass an empty userID for the anonymous view.
func (r *mongoWorkoutRepository) List(ctx context.Context, userID string) ([]domain.Workout, error) {
	owners := []bson.M{
		{"ownerId": bson.M{"$exists": false}},
		{"ownerId": ""},
	}
	if userID != "" {
		owners = append(owners, bson.M{"ownerId": userID})
	}
	filter := bson.M{"$or": owners}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workouts []domain.Workout
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// ListMachine returns workouts that include at least one machine-based
// exercise. This is a separate query from List and the results may overlap;
// callers are expected to deduplicate the merged list.
func (r *mongoWorkoutRepository) ListMachine(ctx context.Context) ([]domain.Workout, error) {
	filter := bson.M{"$or": []bson.M{
		{"exercises.isMachineExercise": true},
		{"exercises.equipment": bson.M{"$regex": "machine", "$options": "i"}},
	}}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workouts []domain.Workout
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// Delete removes a workout, but only when it is owned by ownerID. Library
// workouts (no owner) cannot be deleted through this path.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, id string, ownerID string) error {
	if id == "" || ownerID == "" {
		return errors.New("workout ID and owner ID are required for deletion")
	}

	filter := bson.M{
		"_id":     id,
		"ownerId": ownerID,
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		// Workout not found OR not owned by this user.
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "exercises.isMachineExercise", Value: 1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
