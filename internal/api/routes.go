package api

import (
	"net/http"
	"time"

	"fitnesshub/fitness-app/internal/domain"
	"fitnesshub/fitness-app/internal/metrics"
	"fitnesshub/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// RouterParams carries everything the HTTP layer needs. A nil RateLimiter
// disables rate limiting; a nil MetricsManager disables request metrics.
// Location is the tracker calendar used for bare dates in queries, UTC when
// nil.
type RouterParams struct {
	JWTSecret string

	AuthService        service.AuthService
	ProfileService     service.ProfileService
	CompletionService  service.CompletionService
	ExerciseLogService service.ExerciseLogService
	CatalogService     service.CatalogService
	FeedService        service.FeedService

	RateLimiter     RequestRateLimiter
	WritesPerMinute int
	LoginsPerMinute int

	MetricsManager *metrics.Manager
	MetricsHandler http.Handler
	PlanSize       int
	Location       *time.Location
}

// NewRouter builds a gin engine with the logrus logger, recovery and
// metrics middleware, then registers all routes.
func NewRouter(params RouterParams) *gin.Engine {
	router := gin.New()
	router.Use(Recovery(params.MetricsManager), RequestLogger())
	if params.MetricsManager != nil {
		router.Use(RequestMetrics(params.MetricsManager))
	}
	SetupRoutes(router, params)
	return router
}

func SetupRoutes(router *gin.Engine, params RouterParams) {
	authHandler := NewAuthHandler(params.AuthService)
	profileHandler := NewProfileHandler(params.ProfileService)
	workoutHandler := NewWorkoutHandler(params.CompletionService, params.ExerciseLogService, params.CatalogService, params.PlanSize, params.Location)
	feedHandler := NewFeedHandler(params.FeedService, params.MetricsManager, params.Location)

	authMiddleware := AuthMiddleware(params.JWTSecret)
	limit := func(name string, perMin int) gin.HandlerFunc {
		if params.RateLimiter == nil || perMin <= 0 {
			return func(c *gin.Context) { c.Next() }
		}
		return RateLimit(params.RateLimiter, name, perMin, params.MetricsManager)
	}
	writeLimit := limit("writes", params.WritesPerMinute)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if params.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(params.MetricsHandler))
	}

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", limit("register", params.LoginsPerMinute), authHandler.Register)
			authGroup.POST("/login", limit("login", params.LoginsPerMinute), authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Profile ---
		profileGroup := protected.Group("/profile")
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.PUT("/goals", profileHandler.UpdateGoals)
			profileGroup.PUT("/notifications", profileHandler.UpdateNotifications)
			profileGroup.PUT("/metrics", profileHandler.UpdateMetrics)
			profileGroup.POST("/avatar-url", writeLimit, profileHandler.RequestAvatarUploadURL)
		}

		// --- Program catalog ---
		protected.GET("/programs", workoutHandler.ListPrograms)
		protected.GET("/programs/:type/days/:day", workoutHandler.GetDayPlan)

		// --- Weekly tracker ---
		workoutGroup := protected.Group("/workouts/:type")
		{
			workoutGroup.GET("/status", workoutHandler.GetWeeklyStatus)
			workoutGroup.GET("/days/:day/completion", workoutHandler.GetCompletion)
			workoutGroup.GET("/days/:day/exercises", workoutHandler.ListExerciseLog)
			workoutGroup.POST("/days/:day/exercises", writeLimit, workoutHandler.LogExercise)
			workoutGroup.POST("/days/:day/finish", writeLimit, workoutHandler.FinishSession)
		}

		// --- Community feed ---
		feedGroup := protected.Group("/feed")
		{
			feedGroup.GET("/posts", feedHandler.ListPosts)
			feedGroup.POST("/posts", writeLimit, feedHandler.CreatePost)
			feedGroup.GET("/posts/:id", feedHandler.GetPost)
			feedGroup.DELETE("/posts/:id", feedHandler.DeletePost)
			feedGroup.POST("/posts/:id/like", writeLimit, feedHandler.LikePost)
			feedGroup.DELETE("/posts/:id/like", feedHandler.UnlikePost)
			feedGroup.GET("/posts/:id/comments", feedHandler.ListComments)
			feedGroup.POST("/posts/:id/comments", writeLimit, feedHandler.AddComment)
			feedGroup.DELETE("/comments/:id", feedHandler.DeleteComment)
			feedGroup.POST("/media-url", writeLimit, feedHandler.RequestMediaUploadURL)
			feedGroup.GET("/stream", feedHandler.Stream)
		}

		// --- Moderation ---
		moderationGroup := protected.Group("/moderation")
		moderationGroup.Use(RoleMiddleware(domain.RoleModerator))
		{
			moderationGroup.DELETE("/posts/:id", feedHandler.DeletePost)
		}

		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr, "role": role})
		})
	}
}
