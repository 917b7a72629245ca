package service

import (
	"context"
	"errors"
	"testing"

	"vitalfit/wellness-app/internal/domain"
	"vitalfit/wellness-app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkoutRepo struct {
	workouts   []domain.Workout
	listErr    error
	machine    []domain.Workout
	machineErr error
	byID       map[string]*domain.Workout
	deleted    []string
	deleteErr  error
}

func (f *fakeWorkoutRepo) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	w, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *w
	return &clone, nil
}

func (f *fakeWorkoutRepo) List(ctx context.Context, userID string) ([]domain.Workout, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Workout(nil), f.workouts...), nil
}

func (f *fakeWorkoutRepo) ListMachine(ctx context.Context) ([]domain.Workout, error) {
	if f.machineErr != nil {
		return nil, f.machineErr
	}
	return append([]domain.Workout(nil), f.machine...), nil
}

func (f *fakeWorkoutRepo) Delete(ctx context.Context, id, ownerID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSessionRepo struct {
	createErr   error
	created     []*domain.WorkoutSession
	completeErr error
	completed   *domain.WorkoutSession
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *domain.WorkoutSession) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	session.ID = "session-1"
	session.Status = domain.SessionActive
	f.created = append(f.created, session)
	return session.ID, nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.WorkoutSession, error) {
	if f.completed != nil && f.completed.ID == id {
		return f.completed, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSessionRepo) Complete(ctx context.Context, id, userID string) (*domain.WorkoutSession, error) {
	if f.completeErr != nil {
		return nil, f.completeErr
	}
	f.completed = &domain.WorkoutSession{ID: id, UserID: userID, Status: domain.SessionCompleted}
	return f.completed, nil
}

func wk(id, name, level string) domain.Workout {
	return domain.Workout{ID: id, Name: name, Level: level}
}

func TestListWorkoutsMergesAndDeduplicates(t *testing.T) {
	repo := &fakeWorkoutRepo{
		workouts: []domain.Workout{
			wk("w1", "Full Body Blast", domain.LevelBeginner),
			wk("w2", "HIIT Express", domain.LevelAdvanced),
		},
		machine: []domain.Workout{
			{ID: "w2", Name: "HIIT Express (machine copy)", Level: domain.LevelAdvanced},
			wk("w3", "Cable Circuit", domain.LevelIntermediate),
		},
	}
	svc := NewWorkoutService(repo, &fakeSessionRepo{})

	out, err := svc.ListWorkouts(context.Background(), "user-1", "", "")

	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"w1", "w2", "w3"}, []string{out[0].ID, out[1].ID, out[2].ID})
	// The primary entry wins when both sources carry the same workout.
	assert.Equal(t, "HIIT Express", out[1].Name)
}

func TestListWorkoutsNormalizesForDisplay(t *testing.T) {
	repo := &fakeWorkoutRepo{
		workouts: []domain.Workout{{
			ID:    "w1",
			Name:  "Pull Day",
			Level: domain.LevelIntermediate,
			Exercises: []domain.Exercise{
				{ID: "e1", Name: "Lat Pulldown", Equipment: "Cable Machine"},
			},
		}},
	}
	svc := NewWorkoutService(repo, &fakeSessionRepo{})

	out, err := svc.ListWorkouts(context.Background(), "", "", "")

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, domain.WorkoutTypeStandard, out[0].Type)
	require.Len(t, out[0].Exercises, 1)
	ex := out[0].Exercises[0]
	assert.True(t, ex.IsMachineExercise)
	assert.Equal(t, "Cable Machine", ex.MachineType)
	assert.NotEmpty(t, ex.GifURL)
}

func TestListWorkoutsLevelAndSearchFilters(t *testing.T) {
	repo := &fakeWorkoutRepo{
		workouts: []domain.Workout{
			wk("w1", "Morning Yoga", domain.LevelBeginner),
			{ID: "w2", Name: "Power Lifts", Description: "heavy barbell work", Level: domain.LevelAdvanced},
			wk("w3", "Evening Yoga", domain.LevelAdvanced),
		},
	}
	svc := NewWorkoutService(repo, &fakeSessionRepo{})
	ctx := context.Background()

	out, err := svc.ListWorkouts(ctx, "", "", domain.LevelAdvanced)
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = svc.ListWorkouts(ctx, "", "", LevelFilterAll)
	require.NoError(t, err)
	assert.Len(t, out, 3)

	out, err = svc.ListWorkouts(ctx, "", "yoga", "")
	require.NoError(t, err)
	assert.Len(t, out, 2)

	// Search matches the description as well as the name.
	out, err = svc.ListWorkouts(ctx, "", "barbell", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "w2", out[0].ID)

	out, err = svc.ListWorkouts(ctx, "", "yoga", domain.LevelAdvanced)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "w3", out[0].ID)
}

func TestListWorkoutsMachineSourceFailureIsNonFatal(t *testing.T) {
	repo := &fakeWorkoutRepo{
		workouts:   []domain.Workout{wk("w1", "Full Body Blast", domain.LevelBeginner)},
		machineErr: errors.New("machine index offline"),
	}
	svc := NewWorkoutService(repo, &fakeSessionRepo{})

	out, err := svc.ListWorkouts(context.Background(), "user-1", "", "")

	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestListWorkoutsPrimaryFailure(t *testing.T) {
	repo := &fakeWorkoutRepo{listErr: errors.New("db down")}
	svc := NewWorkoutService(repo, &fakeSessionRepo{})

	_, err := svc.ListWorkouts(context.Background(), "user-1", "", "")

	require.Error(t, err)
}

func TestStartSession(t *testing.T) {
	repo := &fakeWorkoutRepo{byID: map[string]*domain.Workout{
		"w1": {ID: "w1", Name: "Full Body Blast", Level: domain.LevelBeginner},
	}}
	sessions := &fakeSessionRepo{}
	svc := NewWorkoutService(repo, sessions)

	session, workout, err := svc.StartSession(context.Background(), "user-1", "w1")

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "w1", session.WorkoutID)
	assert.Equal(t, "Full Body Blast", session.WorkoutName)
	assert.Equal(t, domain.SessionActive, session.Status)
	require.NotNil(t, workout)
	// The returned workout is normalized for display.
	assert.Equal(t, domain.WorkoutTypeStandard, workout.Type)
}

func TestStartSessionErrors(t *testing.T) {
	repo := &fakeWorkoutRepo{byID: map[string]*domain.Workout{}}
	svc := NewWorkoutService(repo, &fakeSessionRepo{})
	ctx := context.Background()

	_, _, err := svc.StartSession(ctx, "", "w1")
	require.ErrorIs(t, err, ErrAuthRequired)

	_, _, err = svc.StartSession(ctx, "user-1", "missing")
	require.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestCompleteSession(t *testing.T) {
	sessions := &fakeSessionRepo{}
	svc := NewWorkoutService(&fakeWorkoutRepo{}, sessions)

	session, err := svc.CompleteSession(context.Background(), "user-1", "session-1")

	require.NoError(t, err)
	assert.Equal(t, domain.SessionCompleted, session.Status)

	_, err = svc.CompleteSession(context.Background(), "", "session-1")
	require.ErrorIs(t, err, ErrAuthRequired)

	sessions.completeErr = repository.ErrNotFound
	_, err = svc.CompleteSession(context.Background(), "user-1", "other")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteWorkout(t *testing.T) {
	repo := &fakeWorkoutRepo{}
	svc := NewWorkoutService(repo, &fakeSessionRepo{})
	ctx := context.Background()

	require.NoError(t, svc.DeleteWorkout(ctx, "user-1", "w1"))
	assert.Equal(t, []string{"w1"}, repo.deleted)

	require.ErrorIs(t, svc.DeleteWorkout(ctx, "", "w1"), ErrAuthRequired)

	repo.deleteErr = repository.ErrNotFound
	require.ErrorIs(t, svc.DeleteWorkout(ctx, "user-1", "w2"), ErrWorkoutNotFound)
}
