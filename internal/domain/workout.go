package domain

import (
	"time"
)

// Workout type values. Type is a display attribute derived from Level
// when the backend record arrives without one.
const (
	WorkoutTypeStandard = "standard"
	WorkoutTypeCustom   = "custom"
)

// Workout difficulty levels as stored by the backend.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelCustom       = "custom"
)

// Workout represents a workout routine from the library, or a nested item
// inside a workout pack. The ID is the stable identity used when
// deduplicating merged lists.
type Workout struct {
	ID          string     `bson:"_id" json:"id"`
	OwnerID     string     `bson:"ownerId,omitempty" json:"ownerId,omitempty"` // empty for library workouts
	Name        string     `bson:"name" json:"name"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Level       string     `bson:"level,omitempty" json:"level,omitempty"`
	Type        string     `bson:"type,omitempty" json:"type,omitempty"`
	Duration    string     `bson:"duration,omitempty" json:"duration,omitempty"` // e.g. "30 min"
	ImageURL    string     `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsPack      bool       `bson:"isPack,omitempty" json:"isPack,omitempty"`
	PackItems   []Workout  `bson:"packItems,omitempty" json:"packItems,omitempty"`
	Exercises   []Exercise `bson:"exercises,omitempty" json:"exercises,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time  `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Display preference values for an exercise within a workout.
const (
	DisplayVideo = "video"
	DisplayPhoto = "photo"
	DisplayAuto  = "auto"
)

// Exercise is a single exercise reference embedded in a Workout. Several of
// its fields (GifURL, YoutubeID, DisplayPreference, the machine flags) are
// derived for display and may arrive absent from the backend.
type Exercise struct {
	ID                string   `bson:"id,omitempty" json:"id,omitempty"`
	Name              string   `bson:"name" json:"name"`
	BodyPart          string   `bson:"bodyPart,omitempty" json:"bodyPart,omitempty"`
	Target            string   `bson:"target,omitempty" json:"target,omitempty"`
	Equipment         string   `bson:"equipment,omitempty" json:"equipment,omitempty"`
	SecondaryMuscles  []string `bson:"secondaryMuscles,omitempty" json:"secondaryMuscles,omitempty"`
	Instructions      []string `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Sets              int      `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps              int      `bson:"reps,omitempty" json:"reps,omitempty"`
	RestTime          int      `bson:"restTime,omitempty" json:"restTime,omitempty"` // seconds
	GifURL            string   `bson:"gifUrl,omitempty" json:"gifUrl,omitempty"`
	WikiImageURL      string   `bson:"wikiImageUrl,omitempty" json:"wikiImageUrl,omitempty"`
	YoutubeID         string   `bson:"youtubeId,omitempty" json:"youtubeId,omitempty"`
	DisplayPreference string   `bson:"displayPreference,omitempty" json:"displayPreference,omitempty"`
	IsMachineExercise bool     `bson:"isMachineExercise,omitempty" json:"isMachineExercise,omitempty"`
	MachineType       string   `bson:"machineType,omitempty" json:"machineType,omitempty"`
}
