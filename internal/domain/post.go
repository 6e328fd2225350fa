package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a community feed entry.
type Post struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorID     primitive.ObjectID `bson:"authorId" json:"authorId"`
	AuthorName   string             `bson:"authorName" json:"authorName"` // denormalized for feed rendering
	Content      string             `bson:"content" json:"content"`
	MediaKey     string             `bson:"mediaKey,omitempty" json:"-"` // object key in file storage
	LikeCount    int                `bson:"likeCount" json:"likeCount"`
	CommentCount int                `bson:"commentCount" json:"commentCount"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Comment belongs to a Post.
type Comment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID     primitive.ObjectID `bson:"postId" json:"postId"`
	AuthorID   primitive.ObjectID `bson:"authorId" json:"authorId"`
	AuthorName string             `bson:"authorName" json:"authorName"`
	Content    string             `bson:"content" json:"content"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// Like is unique per (PostID, UserID).
type Like struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    primitive.ObjectID `bson:"postId" json:"postId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// FeedEventType names a feed mutation relayed to live subscribers.
type FeedEventType string

const (
	FeedPostCreated    FeedEventType = "post.created"
	FeedPostDeleted    FeedEventType = "post.deleted"
	FeedCommentAdded   FeedEventType = "comment.added"
	FeedCommentDeleted FeedEventType = "comment.deleted"
	FeedPostLiked      FeedEventType = "post.liked"
	FeedPostUnliked    FeedEventType = "post.unliked"
)

// FeedEvent is published on every feed mutation.
type FeedEvent struct {
	Type      FeedEventType `json:"type"`
	PostID    string        `json:"postId"`
	CommentID string        `json:"commentId,omitempty"`
	UserID    string        `json:"userId"`
	At        time.Time     `json:"at"`
}
