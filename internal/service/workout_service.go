package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"vitalfit/wellness-app/internal/domain"
	"vitalfit/wellness-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrSessionNotFound = errors.New("workout session not found")
)

// Filter value meaning "no level filter".
const LevelFilterAll = "all"

// --- Service Interface ---

type WorkoutService interface {
	// ListWorkouts returns the browsable workout list for a user (userID may
	// be empty for the anonymous view): the library plus machine workouts,
	// merged, deduplicated, filtered and normalized for display.
	ListWorkouts(ctx context.Context, userID, search, level string) ([]domain.Workout, error)

	// StartSession begins a workout session and returns it together with
	// the workout normalized for display.
	StartSession(ctx context.Context, userID, workoutID string) (*domain.WorkoutSession, *domain.Workout, error)

	CompleteSession(ctx context.Context, userID, sessionID string) (*domain.WorkoutSession, error)

	// DeleteWorkout removes a workout owned by userID.
	DeleteWorkout(ctx context.Context, userID, workoutID string) error
}

// --- Service Implementation ---

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	sessionRepo repository.SessionRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	workoutRepo repository.WorkoutRepository,
	sessionRepo repository.SessionRepository,
) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		sessionRepo: sessionRepo,
	}
}

// ListWorkouts merges the primary workout list with the separately sourced
// machine workouts. The primary list is appended first, so when the two
// sources overlap, deduplication keeps the primary entry.
func (s *workoutService) ListWorkouts(ctx context.Context, userID, search, level string) ([]domain.Workout, error) {
	workouts, err := s.workoutRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	machine, err := s.workoutRepo.ListMachine(ctx)
	if err != nil {
		// The machine source is an enrichment; losing it should not blank
		// the whole page.
		log.Printf("WARN: Could not load machine workouts: %v", err)
	}

	combined := DedupeWorkouts(append(workouts, machine...))

	result := make([]domain.Workout, 0, len(combined))
	term := strings.ToLower(search)
	for i := range combined {
		w := &combined[i]
		if level != "" && level != LevelFilterAll && w.Level != level {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(w.Name), term) &&
			!strings.Contains(strings.ToLower(w.Description), term) {
			continue
		}
		result = append(result, *NormalizeWorkout(w))
	}
	return result, nil
}

// StartSession begins tracking a workout for a user.
func (s *workoutService) StartSession(ctx context.Context, userID, workoutID string) (*domain.WorkoutSession, *domain.Workout, error) {
	if userID == "" {
		return nil, nil, ErrAuthRequired
	}

	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrWorkoutNotFound
		}
		return nil, nil, err
	}
	NormalizeWorkout(workout)

	session := &domain.WorkoutSession{
		UserID:      userID,
		WorkoutID:   workout.ID,
		WorkoutName: workout.Name,
	}
	if _, err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, workout, nil
}

// CompleteSession marks a user's active session as finished.
func (s *workoutService) CompleteSession(ctx context.Context, userID, sessionID string) (*domain.WorkoutSession, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}

	session, err := s.sessionRepo.Complete(ctx, sessionID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// DeleteWorkout removes a workout the user owns. The repository filter
// enforces ownership, so a wrong owner surfaces as not-found.
func (s *workoutService) DeleteWorkout(ctx context.Context, userID, workoutID string) error {
	if userID == "" {
		return ErrAuthRequired
	}

	if err := s.workoutRepo.Delete(ctx, workoutID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}
