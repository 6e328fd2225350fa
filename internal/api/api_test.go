package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"fitnesshub/fitness-app/internal/domain"
	"fitnesshub/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v9"
	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testJWTSecret = "test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func signToken(t *testing.T, userID string, role domain.Role) string {
	t.Helper()
	claims := &service.JWTClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    service.TokenIssuer,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func doRequest(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// stubCompletion computes real UTC week bounds and delegates the store calls.
type stubCompletion struct {
	service.CompletionService
	check  func(userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, ref time.Time) (*domain.Session, error)
	status func(userID string, workoutType domain.WorkoutType, ref time.Time) (domain.WeeklyStatus, error)
}

func (s *stubCompletion) WeekBounds(ref time.Time) domain.WeekBounds {
	return domain.ComputeWeekBounds(ref, time.UTC)
}

func (s *stubCompletion) CheckCompletion(_ context.Context, userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, ref time.Time) (*domain.Session, error) {
	return s.check(userID, workoutType, day, ref)
}

func (s *stubCompletion) GetWeeklyStatus(_ context.Context, userID string, workoutType domain.WorkoutType, ref time.Time) (domain.WeeklyStatus, error) {
	return s.status(userID, workoutType, ref)
}

type stubExerciseLog struct {
	service.ExerciseLogService
	finish func(userID string, workoutType domain.WorkoutType, day domain.DayOfWeek) (*domain.Session, error)
	log    func(userID string, entry domain.ExerciseEntry) (*domain.ExerciseLogEntry, error)
}

func (s *stubExerciseLog) FinishSession(_ context.Context, userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, _ time.Time) (*domain.Session, error) {
	return s.finish(userID, workoutType, day)
}

func (s *stubExerciseLog) LogExercise(_ context.Context, userID string, _ domain.WorkoutType, _ domain.DayOfWeek, entry domain.ExerciseEntry, _ time.Time) (*domain.ExerciseLogEntry, error) {
	return s.log(userID, entry)
}

type stubFeed struct {
	service.FeedService
	deletePost func(actorID, postID primitive.ObjectID) error
	listPosts  func(limit int, before time.Time) ([]service.PostDetails, error)
}

func (s *stubFeed) DeletePost(_ context.Context, actorID, postID primitive.ObjectID) error {
	return s.deletePost(actorID, postID)
}

func (s *stubFeed) ListPosts(_ context.Context, limit int, before time.Time) ([]service.PostDetails, error) {
	return s.listPosts(limit, before)
}

type testRequestRateLimiter struct {
	allow bool
	keys  []string
}

func (l *testRequestRateLimiter) Allow(_ context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	l.keys = append(l.keys, key)
	if l.allow {
		return &redis_rate.Result{Limit: limit, Allowed: 1, Remaining: limit.Rate - 1}, nil
	}
	return &redis_rate.Result{Limit: limit, Allowed: 0, RetryAfter: 30 * time.Second}, nil
}
