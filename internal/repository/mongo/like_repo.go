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

const likeCollectionName = "likes"

// mongoLikeRepository implements repository.LikeRepository
type mongoLikeRepository struct {
	collection *mongo.Collection
}

// NewMongoLikeRepository creates a new like repository backed by MongoDB.
func NewMongoLikeRepository(db *mongo.Database) repository.LikeRepository {
	return &mongoLikeRepository{
		collection: db.Collection(likeCollectionName),
	}
}

// Create records a like. The (postId, userId) unique index turns a repeated
// like into repository.ErrDuplicate.
func (r *mongoLikeRepository) Create(ctx context.Context, like *domain.Like) (primitive.ObjectID, error) {
	if like.PostID == primitive.NilObjectID || like.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("like requires postId and userId")
	}
	like.ID = primitive.NewObjectID()
	like.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, like); err != nil {
		return primitive.NilObjectID, wrapErr("insert like", err)
	}
	return like.ID, nil
}

// Delete removes the user's like from a post.
func (r *mongoLikeRepository) Delete(ctx context.Context, postID, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"postId": postID, "userId": userID})
	if err != nil {
		return wrapErr("delete like", err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteByPost removes every like of a post.
func (r *mongoLikeRepository) DeleteByPost(ctx context.Context, postID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"postId": postID})
	return wrapErr("delete post likes", err)
}

// EnsureLikeIndexes creates the unique (postId, userId) index.
func EnsureLikeIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "postId", Value: 1}, {Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
