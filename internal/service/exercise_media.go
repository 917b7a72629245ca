package service

import (
	"fmt"
	"strings"

	"vitalfit/wellness-app/internal/domain"
)

const (
	// Per-exercise demonstration GIFs hosted by exercise ID.
	exerciseGifURLFormat = "https://media.vitalfit.example.com/exercises/%s.gif"

	// Shown when nothing better can be determined for an exercise.
	placeholderImageURL = "https://media.vitalfit.example.com/exercises/placeholder.png"
)

// BestExerciseImageURL picks the best available image for an exercise:
// a wiki image when present, then an already-resolved GIF URL, then the
// hosted GIF derived from the exercise ID, and finally a placeholder.
// It never fails and always returns a usable URL.
func BestExerciseImageURL(ex *domain.Exercise) string {
	switch {
	case ex == nil:
		return placeholderImageURL
	case ex.WikiImageURL != "":
		return ex.WikiImageURL
	case ex.GifURL != "":
		return ex.GifURL
	case ex.ID != "":
		return fmt.Sprintf(exerciseGifURLFormat, ex.ID)
	default:
		return placeholderImageURL
	}
}

// Curated demonstration videos for common exercises, keyed by lowercase
// exercise name. Unknown exercises simply get no video.
var exerciseVideos = map[string]string{
	"push-up":          "IODxDxX7oi4",
	"pull-up":          "eGo4IYlbE5g",
	"squat":            "aclHkVaku9U",
	"deadlift":         "op9kVnSso6Q",
	"bench press":      "rT7DgCr-3pg",
	"plank":            "pSHjTRCQxIw",
	"lunge":            "QOVaHwm-Q6U",
	"burpee":           "TU8QYVW0gDU",
	"mountain climber": "nmwgirgXLYM",
	"lat pulldown":     "CAwf7n6Luuc",
	"leg press":        "IZxyjW7MPJQ",
	"cable row":        "GZbfZ033f74",
}

func exerciseVideoID(ex *domain.Exercise) string {
	if ex == nil || ex.Name == "" {
		return ""
	}
	return exerciseVideos[strings.ToLower(ex.Name)]
}
