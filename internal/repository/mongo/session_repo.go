package mongo

import (
	"context"
	"errors"

	"fitnesshub/fitness-app/internal/domain"
	"fitnesshub/fitness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionCollectionName = "weekly_sessions"

// mongoSessionRepository implements repository.SessionRepository
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new weekly session repository.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// Insert stores a finalized session. A second session for the same
// (user, workout type, day, week start) is rejected by the unique index.
func (r *mongoSessionRepository) Insert(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	if session.UserID == "" || session.WorkoutType == "" || session.DayOfWeek == "" || session.WeekStart.IsZero() {
		return nil, errors.New("session requires userId, workoutType, dayOfWeek and weekStart")
	}
	if session.ID == primitive.NilObjectID {
		session.ID = primitive.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, session); err != nil {
		return nil, wrapErr("insert weekly session", err)
	}
	return session, nil
}

// FindOne returns the first session matching the filter or repository.ErrNotFound.
func (r *mongoSessionRepository) FindOne(ctx context.Context, filter repository.SessionFilter) (*domain.Session, error) {
	var session domain.Session
	opts := options.FindOne().SetSort(bson.D{{Key: "completedAt", Value: 1}})

	err := r.collection.FindOne(ctx, sessionQuery(filter), opts).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, wrapErr("find weekly session", err)
	}
	return &session, nil
}

// FindMany returns all sessions matching the filter, oldest completion first.
func (r *mongoSessionRepository) FindMany(ctx context.Context, filter repository.SessionFilter) ([]domain.Session, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completedAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, sessionQuery(filter), opts)
	if err != nil {
		return nil, wrapErr("find weekly sessions", err)
	}
	defer cursor.Close(ctx)

	sessions := []domain.Session{}
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, wrapErr("decode weekly sessions", err)
	}
	return sessions, nil
}

func sessionQuery(f repository.SessionFilter) bson.M {
	q := bson.M{
		"userId":      f.UserID,
		"workoutType": f.WorkoutType,
		"completedAt": bson.M{"$gte": f.From, "$lte": f.To},
	}
	if f.DayOfWeek != "" {
		q["dayOfWeek"] = f.DayOfWeek
	}
	return q
}

// EnsureSessionIndexes creates the unique weekly-completion index and the
// lookup index used by the status queries.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "workoutType", Value: 1},
				{Key: "dayOfWeek", Value: 1},
				{Key: "weekStart", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_user_type_day_week"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "workoutType", Value: 1}, {Key: "completedAt", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
