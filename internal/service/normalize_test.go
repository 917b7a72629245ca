package service

import (
	"testing"

	"vitalfit/wellness-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWorkoutDefaultsType(t *testing.T) {
	tests := []struct {
		name     string
		workout  domain.Workout
		wantType string
	}{
		{"custom level", domain.Workout{ID: "w1", Level: "custom"}, "custom"},
		{"beginner level", domain.Workout{ID: "w2", Level: "beginner"}, "standard"},
		{"no level", domain.Workout{ID: "w3"}, "standard"},
		{"already set", domain.Workout{ID: "w4", Level: "custom", Type: "standard"}, "standard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeWorkout(&tt.workout)
			assert.Equal(t, tt.wantType, got.Type)
		})
	}
}

func TestNormalizeWorkoutMachineDetection(t *testing.T) {
	w := &domain.Workout{
		ID: "w1",
		Exercises: []domain.Exercise{
			{Name: "Cable Row", Equipment: "Cable Machine"},
			{Name: "Bicep Curl", Equipment: "Dumbbell"},
		},
	}

	NormalizeWorkout(w)

	assert.True(t, w.Exercises[0].IsMachineExercise)
	assert.Equal(t, "Cable Machine", w.Exercises[0].MachineType)

	assert.False(t, w.Exercises[1].IsMachineExercise)
	assert.Empty(t, w.Exercises[1].MachineType)
}

func TestNormalizeWorkoutKeepsExplicitMachineType(t *testing.T) {
	w := &domain.Workout{
		ID: "w1",
		Exercises: []domain.Exercise{
			{Name: "Incline Walk", Equipment: "Treadmill Machine", MachineType: "treadmill"},
		},
	}

	NormalizeWorkout(w)

	assert.True(t, w.Exercises[0].IsMachineExercise)
	assert.Equal(t, "treadmill", w.Exercises[0].MachineType)
}

func TestNormalizeWorkoutBackfillsExerciseDisplayFields(t *testing.T) {
	w := &domain.Workout{
		ID: "w1",
		Exercises: []domain.Exercise{
			{ID: "ex-1", Name: "Squat"},
			{Name: "Obscure Stretch"},
		},
	}

	NormalizeWorkout(w)

	// Image is always resolved to something usable.
	assert.NotEmpty(t, w.Exercises[0].GifURL)
	assert.Equal(t, placeholderImageURL, w.Exercises[1].GifURL)

	// Known exercise picks up a video; unknown one simply has none.
	assert.Equal(t, "aclHkVaku9U", w.Exercises[0].YoutubeID)
	assert.Empty(t, w.Exercises[1].YoutubeID)

	assert.Equal(t, domain.DisplayAuto, w.Exercises[0].DisplayPreference)
	assert.Equal(t, domain.DisplayAuto, w.Exercises[1].DisplayPreference)
}

func TestNormalizeWorkoutDoesNotOverrideVideoID(t *testing.T) {
	w := &domain.Workout{
		ID:        "w1",
		Exercises: []domain.Exercise{{Name: "Squat", YoutubeID: "custom123"}},
	}

	NormalizeWorkout(w)

	assert.Equal(t, "custom123", w.Exercises[0].YoutubeID)
}

func TestNormalizeWorkoutRecursesIntoPackItems(t *testing.T) {
	w := &domain.Workout{
		ID:     "pack1",
		IsPack: true,
		PackItems: []domain.Workout{
			{
				ID:        "item1",
				Exercises: []domain.Exercise{{Name: "Lat Pulldown", Equipment: "Machine"}},
			},
			{ID: "item2", Type: "custom"},
		},
	}

	NormalizeWorkout(w)

	assert.Equal(t, "standard", w.PackItems[0].Type)
	assert.True(t, w.PackItems[0].Exercises[0].IsMachineExercise)
	assert.Equal(t, "Machine", w.PackItems[0].Exercises[0].MachineType)

	// Pack items with an explicit type keep it.
	assert.Equal(t, "custom", w.PackItems[1].Type)
}

func TestNormalizeWorkoutIdempotent(t *testing.T) {
	build := func() *domain.Workout {
		return &domain.Workout{
			ID:     "pack1",
			Level:  "custom",
			IsPack: true,
			Exercises: []domain.Exercise{
				{ID: "ex-1", Name: "Squat", Equipment: "Smith Machine"},
			},
			PackItems: []domain.Workout{
				{ID: "item1", Exercises: []domain.Exercise{{Name: "Push-Up"}}},
			},
		}
	}

	once := NormalizeWorkout(build())
	twice := NormalizeWorkout(NormalizeWorkout(build()))

	require.Equal(t, once, twice)
}

func TestNormalizeWorkoutNil(t *testing.T) {
	assert.Nil(t, NormalizeWorkout(nil))
}

func TestDedupeWorkoutsFirstSeenWins(t *testing.T) {
	input := []domain.Workout{
		{ID: "a", Name: "first a"},
		{ID: "b"},
		{ID: "a", Name: "second a"},
		{ID: "c"},
		{ID: "b"},
	}

	got := DedupeWorkouts(input)

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)

	// The first occurrence is the one kept.
	assert.Equal(t, "first a", got[0].Name)
}

func TestDedupeWorkoutsEmpty(t *testing.T) {
	assert.Empty(t, DedupeWorkouts(nil))
}
