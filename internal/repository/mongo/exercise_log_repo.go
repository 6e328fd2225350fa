package mongo

import (
	"context"
	"errors"
	"time"

	"fitnesshub/fitness-app/internal/domain"
	"fitnesshub/fitness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseLogCollectionName = "exercise_logs"

// mongoExerciseLogRepository implements repository.ExerciseLogRepository
type mongoExerciseLogRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseLogRepository creates a new exercise log repository backed by MongoDB.
func NewMongoExerciseLogRepository(db *mongo.Database) repository.ExerciseLogRepository {
	return &mongoExerciseLogRepository{
		collection: db.Collection(exerciseLogCollectionName),
	}
}

// Create appends a log entry.
func (r *mongoExerciseLogRepository) Create(ctx context.Context, entry *domain.ExerciseLogEntry) (primitive.ObjectID, error) {
	if entry.UserID == "" || entry.ExerciseTitle == "" || entry.WeekStart.IsZero() {
		return primitive.NilObjectID, errors.New("exercise log requires userId, exerciseTitle and weekStart")
	}

	entry.ID = primitive.NewObjectID()
	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, wrapErr("insert exercise log", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// FindByDay returns the entries logged for one day label in one week, oldest first.
func (r *mongoExerciseLogRepository) FindByDay(ctx context.Context, userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, weekStart time.Time) ([]domain.ExerciseLogEntry, error) {
	filter := bson.M{
		"userId":      userID,
		"workoutType": workoutType,
		"dayOfWeek":   day,
		"weekStart":   weekStart,
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "completedAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, wrapErr("find exercise logs", err)
	}
	defer cursor.Close(ctx)

	entries := []domain.ExerciseLogEntry{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, wrapErr("decode exercise logs", err)
	}
	return entries, nil
}

// EnsureExerciseLogIndexes creates necessary indexes for the exercise log collection.
func EnsureExerciseLogIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "workoutType", Value: 1},
				{Key: "dayOfWeek", Value: 1},
				{Key: "weekStart", Value: 1},
			},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
