package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fitnesshub/fitness-app/internal/domain"
	"fitnesshub/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler serves the program catalog, the exercise log and the
// weekly completion lock.
type WorkoutHandler struct {
	completionService  service.CompletionService
	exerciseLogService service.ExerciseLogService
	catalogService     service.CatalogService
	planSize           int
	location           *time.Location // calendar for bare ?at= dates
}

func NewWorkoutHandler(
	completionService service.CompletionService,
	exerciseLogService service.ExerciseLogService,
	catalogService service.CatalogService,
	planSize int,
	location *time.Location,
) *WorkoutHandler {
	return &WorkoutHandler{
		completionService:  completionService,
		exerciseLogService: exerciseLogService,
		catalogService:     catalogService,
		planSize:           planSize,
		location:           location,
	}
}

// --- Request/Response Structs ---

type LogExerciseRequest struct {
	ExerciseTitle string  `json:"exerciseTitle" binding:"required"`
	Sets          int     `json:"sets" binding:"required,min=1"`
	Weight        float64 `json:"weight" binding:"min=0"`
}

type CompletionResponse struct {
	WorkoutType domain.WorkoutType `json:"workoutType"`
	DayOfWeek   domain.DayOfWeek   `json:"dayOfWeek"`
	WeekStart   time.Time          `json:"weekStart"`
	WeekEnd     time.Time          `json:"weekEnd"`
	Completed   bool               `json:"completed"`
	Session     *domain.Session    `json:"session,omitempty"`
}

type WeeklyStatusResponse struct {
	WorkoutType domain.WorkoutType  `json:"workoutType"`
	WeekStart   time.Time           `json:"weekStart"`
	WeekEnd     time.Time           `json:"weekEnd"`
	Days        domain.WeeklyStatus `json:"days"`
}

type ExerciseLogResponse struct {
	WorkoutType domain.WorkoutType        `json:"workoutType"`
	DayOfWeek   domain.DayOfWeek          `json:"dayOfWeek"`
	WeekStart   time.Time                 `json:"weekStart"`
	Entries     []domain.ExerciseLogEntry `json:"entries"`
}

// --- Catalog ---

func (h *WorkoutHandler) ListPrograms(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.Programs())
}

// GetDayPlan returns this week's exercise selection for a program day.
// ?count= overrides the configured plan size, ?at= picks another week.
func (h *WorkoutHandler) GetDayPlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}
	ref, ok := parseTimeParam(c, "at", h.location)
	if !ok {
		return
	}
	count := h.planSize
	if raw := c.Query("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil || count < 1 {
			abortWithError(c, http.StatusBadRequest, "Invalid count: must be a positive integer")
			return
		}
	}

	plan, err := h.catalogService.PlanForWeek(userID, workoutTypeParam(c), dayParam(c), ref, count)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// --- Weekly completion ---

// GetWeeklyStatus godoc
// @Summary Completion state of all seven days of the current week
// @Tags Workouts
// @Produce json
// @Param type path string true "Workout type"
// @Param at query string false "Reference time (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} WeeklyStatusResponse
// @Failure 400,503 {object} gin.H
// @Router /workouts/{type}/status [get]
func (h *WorkoutHandler) GetWeeklyStatus(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}
	ref, ok := parseTimeParam(c, "at", h.location)
	if !ok {
		return
	}
	workoutType := workoutTypeParam(c)

	status, err := h.completionService.GetWeeklyStatus(c.Request.Context(), userID, workoutType, ref)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	week := h.completionService.WeekBounds(ref)
	c.JSON(http.StatusOK, WeeklyStatusResponse{
		WorkoutType: workoutType,
		WeekStart:   week.Start,
		WeekEnd:     week.End,
		Days:        status,
	})
}

func (h *WorkoutHandler) GetCompletion(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}
	ref, ok := parseTimeParam(c, "at", h.location)
	if !ok {
		return
	}
	workoutType, day := workoutTypeParam(c), dayParam(c)

	session, err := h.completionService.CheckCompletion(c.Request.Context(), userID, workoutType, day, ref)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	week := h.completionService.WeekBounds(ref)
	c.JSON(http.StatusOK, CompletionResponse{
		WorkoutType: workoutType,
		DayOfWeek:   day,
		WeekStart:   week.Start,
		WeekEnd:     week.End,
		Completed:   session != nil,
		Session:     session,
	})
}

// FinishSession godoc
// @Summary Lock the day for the current week with the logged exercises
// @Tags Workouts
// @Produce json
// @Param type path string true "Workout type"
// @Param day path string true "Day label (Monday..Sunday)"
// @Success 201 {object} domain.Session
// @Failure 400 {object} gin.H "Invalid input or nothing logged"
// @Failure 409 {object} gin.H "Already completed this week"
// @Failure 503 {object} gin.H "Store temporarily unavailable"
// @Router /workouts/{type}/days/{day}/finish [post]
func (h *WorkoutHandler) FinishSession(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	session, err := h.exerciseLogService.FinishSession(c.Request.Context(), userID, workoutTypeParam(c), dayParam(c), time.Time{})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// --- Exercise log ---

func (h *WorkoutHandler) LogExercise(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}
	var req LogExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.exerciseLogService.LogExercise(c.Request.Context(), userID, workoutTypeParam(c), dayParam(c), domain.ExerciseEntry{
		ExerciseTitle: req.ExerciseTitle,
		Sets:          req.Sets,
		Weight:        req.Weight,
	}, time.Time{})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *WorkoutHandler) ListExerciseLog(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}
	ref, ok := parseTimeParam(c, "at", h.location)
	if !ok {
		return
	}
	workoutType, day := workoutTypeParam(c), dayParam(c)

	entries, err := h.exerciseLogService.ListWeekLog(c.Request.Context(), userID, workoutType, day, ref)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ExerciseLogResponse{
		WorkoutType: workoutType,
		DayOfWeek:   day,
		WeekStart:   h.completionService.WeekBounds(ref).Start,
		Entries:     entries,
	})
}

// path values are validated by the services
func workoutTypeParam(c *gin.Context) domain.WorkoutType {
	return domain.WorkoutType(c.Param("type"))
}

func dayParam(c *gin.Context) domain.DayOfWeek {
	return domain.DayOfWeek(c.Param("day"))
}
