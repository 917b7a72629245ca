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

const postCollectionName = "posts"

// mongoPostRepository implements repository.PostRepository
type mongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new Post repository.
func NewMongoPostRepository(db *mongo.Database) repository.PostRepository {
	return &mongoPostRepository{
		collection: db.Collection(postCollectionName),
	}
}

// ListNewestFirst returns every post ordered by creation time descending,
// with the author profile joined on. Posts whose author has no profile
// document come back with a nil Profile; display defaulting happens in the
// service layer, not here.
func (r *mongoPostRepository) ListNewestFirst(ctx context.Context) ([]domain.PostRow, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: profileCollectionName},
			{Key: "localField", Value: "userId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "profile"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$profile"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []domain.PostRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Insert stores a new post and returns its generated ID.
func (r *mongoPostRepository) Insert(ctx context.Context, post *domain.NewPost) (string, error) {
	if post.UserID == "" || post.Content == "" {
		return "", errors.New("post requires userId and content")
	}

	row := domain.PostRow{
		ID:        primitive.NewObjectID().Hex(),
		UserID:    post.UserID,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := r.collection.InsertOne(ctx, row); err != nil {
		return "", err
	}
	return row.ID, nil
}

// IncrementLikes adjusts the like counter of a post by delta.
func (r *mongoPostRepository) IncrementLikes(ctx context.Context, postID string, delta int) error {
	if postID == "" {
		return errors.New("post ID is required")
	}

	filter := bson.M{"_id": postID}
	update := bson.M{"$inc": bson.M{"likes": delta}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Watch opens an unfiltered change stream on the post collection and pumps
// every event onto the returned channel until ctx is cancelled. The channel
// is closed when the stream ends.
func (r *mongoPostRepository) Watch(ctx context.Context) (<-chan domain.PostChange, error) {
	stream, err := r.collection.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, err
	}

	events := make(chan domain.PostChange)
	go func() {
		defer close(events)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var ev struct {
				OperationType string `bson:"operationType"`
				DocumentKey   struct {
					ID string `bson:"_id"`
				} `bson:"documentKey"`
			}
			if err := stream.Decode(&ev); err != nil {
				log.Printf("WARN: Failed to decode post change event: %v", err)
				continue
			}
			select {
			case events <- domain.PostChange{Operation: ev.OperationType, PostID: ev.DocumentKey.ID}:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			log.Printf("ERROR: Post change stream ended: %v", err)
		}
	}()

	return events, nil
}

// EnsurePostIndexes creates necessary indexes. Call during startup.
func EnsurePostIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Feed reads are always newest-first
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
