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

const commentCollectionName = "comments"

// mongoCommentRepository implements repository.CommentRepository
type mongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a new comment repository backed by MongoDB.
func NewMongoCommentRepository(db *mongo.Database) repository.CommentRepository {
	return &mongoCommentRepository{
		collection: db.Collection(commentCollectionName),
	}
}

// Create inserts a new comment.
func (r *mongoCommentRepository) Create(ctx context.Context, comment *domain.Comment) (primitive.ObjectID, error) {
	if comment.PostID == primitive.NilObjectID || comment.AuthorID == primitive.NilObjectID || comment.Content == "" {
		return primitive.NilObjectID, errors.New("comment requires postId, authorId and content")
	}
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, comment); err != nil {
		return primitive.NilObjectID, wrapErr("insert comment", err)
	}
	return comment.ID, nil
}

// GetByID retrieves a single comment.
func (r *mongoCommentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, wrapErr("find comment", err)
	}
	return &comment, nil
}

// ListByPost returns the comments of a post, oldest first.
func (r *mongoCommentRepository) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]domain.Comment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"postId": postID}, findOptions)
	if err != nil {
		return nil, wrapErr("find comments", err)
	}
	defer cursor.Close(ctx)

	comments := []domain.Comment{}
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, wrapErr("decode comments", err)
	}
	return comments, nil
}

// Delete removes a single comment.
func (r *mongoCommentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapErr("delete comment", err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteByPost removes every comment of a post.
func (r *mongoCommentRepository) DeleteByPost(ctx context.Context, postID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"postId": postID})
	return wrapErr("delete post comments", err)
}

// EnsureCommentIndexes creates necessary indexes for the comments collection.
func EnsureCommentIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "postId", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
