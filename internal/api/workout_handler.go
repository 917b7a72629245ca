package api

import (
	"errors"
	"net/http"

	"vitalfit/wellness-app/internal/domain"
	"vitalfit/wellness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs for API (Data Transfer Objects) ---

// StartSessionResponse returns the created session together with the
// workout normalized for display.
type StartSessionResponse struct {
	Session *domain.WorkoutSession `json:"session"`
	Workout *domain.Workout        `json:"workout"`
}

// --- Handler Methods ---

// ListWorkouts returns the browsable workout list, filtered by the search
// and level query parameters. Anonymous visitors see the shared library;
// signed-in users additionally see their own workouts.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID := optionalUserID(c)

	workouts, err := h.workoutService.ListWorkouts(
		c.Request.Context(),
		userID,
		c.Query("search"),
		c.Query("level"),
	)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}

	if workouts == nil {
		workouts = []domain.Workout{}
	}
	c.JSON(http.StatusOK, workouts)
}

// StartSession begins a workout session for the authenticated user.
func (h *WorkoutHandler) StartSession(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from session.")
		return
	}

	session, workout, err := h.workoutService.StartSession(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, "Workout not found.")
		case errors.Is(err, service.ErrAuthRequired):
			abortWithError(c, http.StatusUnauthorized, "Please sign in to start workouts.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to start workout.")
		}
		return
	}

	c.JSON(http.StatusCreated, StartSessionResponse{Session: session, Workout: workout})
}

// CompleteSession finishes the authenticated user's workout session.
func (h *WorkoutHandler) CompleteSession(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from session.")
		return
	}

	session, err := h.workoutService.CompleteSession(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			abortWithError(c, http.StatusNotFound, "Workout session not found.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to complete workout.")
		}
		return
	}

	c.JSON(http.StatusOK, session)
}

// DeleteWorkout removes a workout owned by the authenticated user.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from session.")
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), userID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, "Workout not found.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
