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

const postCollectionName = "posts"

// maxPostPage caps a single feed page.
const maxPostPage = 100

// mongoPostRepository implements repository.PostRepository
type mongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new post repository backed by MongoDB.
func NewMongoPostRepository(db *mongo.Database) repository.PostRepository {
	return &mongoPostRepository{
		collection: db.Collection(postCollectionName),
	}
}

// Create inserts a new post.
func (r *mongoPostRepository) Create(ctx context.Context, post *domain.Post) (primitive.ObjectID, error) {
	if post.AuthorID == primitive.NilObjectID || post.Content == "" {
		return primitive.NilObjectID, errors.New("post requires authorId and content")
	}
	post.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return primitive.NilObjectID, wrapErr("insert post", err)
	}
	return post.ID, nil
}

// GetByID retrieves a single post by its ID.
func (r *mongoPostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error) {
	var post domain.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, wrapErr("find post", err)
	}
	return &post, nil
}

// List returns up to limit posts created strictly before the given time, newest first.
func (r *mongoPostRepository) List(ctx context.Context, limit int, before time.Time) ([]domain.Post, error) {
	if limit <= 0 || limit > maxPostPage {
		limit = maxPostPage
	}
	filter := bson.M{}
	if !before.IsZero() {
		filter["createdAt"] = bson.M{"$lt": before}
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, wrapErr("find posts", err)
	}
	defer cursor.Close(ctx)

	posts := []domain.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, wrapErr("decode posts", err)
	}
	return posts, nil
}

// Delete removes a post.
func (r *mongoPostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapErr("delete post", err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// IncrementCounters adjusts the denormalized like and comment counters.
func (r *mongoPostRepository) IncrementCounters(ctx context.Context, id primitive.ObjectID, likes, comments int) error {
	update := bson.M{
		"$inc": bson.M{"likeCount": likes, "commentCount": comments},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return wrapErr("update post counters", err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePostIndexes creates necessary indexes. Call during startup.
func EnsurePostIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "authorId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
