package api

import (
	"net/http"

	"vitalfit/wellness-app/internal/config"
	"vitalfit/wellness-app/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtCfg config.JWTConfig,
	feedService service.FeedService,
	workoutService service.WorkoutService,
	mediaService service.MediaService,
) {
	communityHandler := NewCommunityHandler(feedService, mediaService)
	workoutHandler := NewWorkoutHandler(workoutService)

	sessionRequired := SessionMiddleware(jwtCfg)
	sessionOptional := OptionalSessionMiddleware(jwtCfg)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		workouts := apiV1.Group("/workouts")
		{
			workouts.GET("", sessionOptional, workoutHandler.ListWorkouts)
			workouts.POST("/:id/start", sessionRequired, workoutHandler.StartSession)
			workouts.DELETE("/:id", sessionRequired, workoutHandler.DeleteWorkout)
		}

		apiV1.POST("/sessions/:id/complete", sessionRequired, workoutHandler.CompleteSession)

		community := apiV1.Group("/community")
		{
			community.GET("/posts", communityHandler.GetFeed)
			community.POST("/posts/refresh", communityHandler.RefreshFeed)
			community.POST("/posts", sessionRequired, communityHandler.CreatePost)
			community.POST("/posts/:id/like", sessionRequired, communityHandler.LikePost)
			community.POST("/uploads", sessionRequired, communityHandler.RequestUpload)
		}
	}
}
