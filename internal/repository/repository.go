package repository

import (
	"context"

	"vitalfit/wellness-app/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// PostRepository defines the interface for the authoritative post store.
type PostRepository interface {
	// ListNewestFirst returns all posts ordered by creation time descending,
	// each joined with its author's profile where one exists.
	ListNewestFirst(ctx context.Context) ([]domain.PostRow, error)
	Insert(ctx context.Context, post *domain.NewPost) (string, error)
	IncrementLikes(ctx context.Context, postID string, delta int) error
	// Watch streams change notifications for the post collection until ctx
	// is cancelled. The returned channel is closed on cancellation or on an
	// unrecoverable stream error.
	Watch(ctx context.Context) (<-chan domain.PostChange, error)
}

// ProfileRepository defines read access to user profiles.
type ProfileRepository interface {
	GetByID(ctx context.Context, userID string) (*domain.Profile, error)
}

// WorkoutRepository defines the interface for the workout library.
type WorkoutRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Workout, error)
	// List returns the standard workout library plus workouts owned by
	// userID (pass "" for the anonymous library view).
	List(ctx context.Context, userID string) ([]domain.Workout, error)
	// ListMachine returns workouts containing machine-based exercises,
	// sourced as a separate query from List and possibly overlapping it.
	ListMachine(ctx context.Context) ([]domain.Workout, error)
	Delete(ctx context.Context, id string, ownerID string) error
}

// SessionRepository defines the interface for workout session tracking.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) (string, error)
	GetByID(ctx context.Context, id string) (*domain.WorkoutSession, error)
	Complete(ctx context.Context, id string, userID string) (*domain.WorkoutSession, error)
}
