package domain

import (
	"time"
)

// Workout session statuses.
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
)

// WorkoutSession records one user working through one workout, from start
// to completion.
type WorkoutSession struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	UserID      string     `bson:"userId" json:"userId"`
	WorkoutID   string     `bson:"workoutId" json:"workoutId"`
	WorkoutName string     `bson:"workoutName,omitempty" json:"workoutName,omitempty"`
	Status      string     `bson:"status" json:"status"`
	StartedAt   time.Time  `bson:"startedAt" json:"startedAt"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}
