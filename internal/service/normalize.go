package service

import (
	"strings"

	"vitalfit/wellness-app/internal/domain"
)

// NormalizeWorkout backfills the display fields a raw workout record may
// arrive without: the type tag, per-exercise image URLs, video IDs, display
// preferences, and the machine-exercise flags. Pack items get the same
// treatment recursively.
//
// The record is mutated in place and returned; callers must treat the
// return value as the canonical normalized record. Normalization never
// fails and applying it twice yields the same result as applying it once.
func NormalizeWorkout(w *domain.Workout) *domain.Workout {
	if w == nil {
		return nil
	}

	if w.Type == "" {
		if w.Level == domain.LevelCustom {
			w.Type = domain.WorkoutTypeCustom
		} else {
			w.Type = domain.WorkoutTypeStandard
		}
	}

	for i := range w.Exercises {
		normalizeExercise(&w.Exercises[i])
	}

	if w.IsPack {
		for i := range w.PackItems {
			item := &w.PackItems[i]
			if item.Type == "" {
				item.Type = domain.WorkoutTypeStandard
			}
			for j := range item.Exercises {
				normalizeExercise(&item.Exercises[j])
			}
		}
	}

	return w
}

func normalizeExercise(ex *domain.Exercise) {
	// Always recomputed; BestExerciseImageURL is stable under its own output.
	ex.GifURL = BestExerciseImageURL(ex)

	if ex.YoutubeID == "" {
		ex.YoutubeID = exerciseVideoID(ex)
	}
	if ex.DisplayPreference == "" {
		ex.DisplayPreference = domain.DisplayAuto
	}
	if !ex.IsMachineExercise && strings.Contains(strings.ToLower(ex.Equipment), "machine") {
		ex.IsMachineExercise = true
	}
	if ex.IsMachineExercise && ex.MachineType == "" {
		ex.MachineType = ex.Equipment
	}
}

// DedupeWorkouts collapses a merged workout list so each ID appears exactly
// once. The first occurrence wins and the relative order of kept items is
// preserved.
func DedupeWorkouts(workouts []domain.Workout) []domain.Workout {
	seen := make(map[string]struct{}, len(workouts))
	unique := make([]domain.Workout, 0, len(workouts))
	for _, w := range workouts {
		if _, ok := seen[w.ID]; ok {
			continue
		}
		seen[w.ID] = struct{}{}
		unique = append(unique, w)
	}
	return unique
}
