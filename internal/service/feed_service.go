package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"fitnesshub/fitness-app/internal/domain"
	"fitnesshub/fitness-app/internal/repository"
	"fitnesshub/fitness-app/internal/storage"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	postMediaPrefix  = "posts"
	maxPostLength    = 2000
	maxCommentLength = 500
	DefaultFeedLimit = 20
)

// FeedPublisher relays feed mutations to live subscribers.
type FeedPublisher interface {
	Publish(ctx context.Context, event domain.FeedEvent) error
	Subscribe(ctx context.Context) (<-chan domain.FeedEvent, error)
}

// PostDetails is a post with a temporary media URL.
type PostDetails struct {
	domain.Post
	MediaURL *string `json:"mediaUrl,omitempty"`
}

type FeedService interface {
	CreatePost(ctx context.Context, authorID primitive.ObjectID, content, mediaKey string) (*PostDetails, error)
	GetPost(ctx context.Context, postID primitive.ObjectID) (*PostDetails, error)
	ListPosts(ctx context.Context, limit int, before time.Time) ([]PostDetails, error)
	DeletePost(ctx context.Context, actorID, postID primitive.ObjectID) error

	AddComment(ctx context.Context, authorID, postID primitive.ObjectID, content string) (*domain.Comment, error)
	ListComments(ctx context.Context, postID primitive.ObjectID) ([]domain.Comment, error)
	DeleteComment(ctx context.Context, actorID, commentID primitive.ObjectID) error

	LikePost(ctx context.Context, userID, postID primitive.ObjectID) error
	UnlikePost(ctx context.Context, userID, postID primitive.ObjectID) error

	RequestMediaUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (*UploadURLResponse, error)
	Subscribe(ctx context.Context) (<-chan domain.FeedEvent, error)
}

type feedService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
	publisher   FeedPublisher
	recorder    Recorder
	now         func() time.Time
}

// NewFeedService creates a new instance of feedService.
func NewFeedService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
	userRepo repository.UserRepository,
	fileStorage storage.FileStorage,
	publisher FeedPublisher,
	recorder Recorder,
) FeedService {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &feedService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
		fileStorage: fileStorage,
		publisher:   publisher,
		recorder:    recorder,
		now:         time.Now,
	}
}

// === Posts ===

func (s *feedService) CreatePost(ctx context.Context, authorID primitive.ObjectID, content, mediaKey string) (*PostDetails, error) {
	content = strings.TrimSpace(content)
	if err := validateText("content", content, maxPostLength); err != nil {
		return nil, err
	}
	if mediaKey != "" && !storage.OwnedBy(mediaKey, postMediaPrefix, authorID.Hex()) {
		return nil, &ValidationError{Field: "mediaKey", Reason: "was not issued to this user"}
	}

	author, err := s.getUser(ctx, authorID)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		AuthorID:   authorID,
		AuthorName: author.Name,
		Content:    content,
		MediaKey:   mediaKey,
	}
	if _, err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.publish(ctx, domain.FeedEvent{Type: domain.FeedPostCreated, PostID: post.ID.Hex(), UserID: authorID.Hex()})
	return s.details(ctx, post), nil
}

func (s *feedService) GetPost(ctx context.Context, postID primitive.ObjectID) (*PostDetails, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, post), nil
}

// ListPosts returns a page of the feed, newest first.
func (s *feedService) ListPosts(ctx context.Context, limit int, before time.Time) ([]PostDetails, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	posts, err := s.postRepo.List(ctx, limit, before)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	result := make([]PostDetails, 0, len(posts))
	for i := range posts {
		result = append(result, *s.details(ctx, &posts[i]))
	}
	return result, nil
}

// DeletePost removes a post with its comments, likes and media. Only the
// author or a moderator may delete.
func (s *feedService) DeletePost(ctx context.Context, actorID, postID primitive.ObjectID) error {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, actorID, post.AuthorID); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("delete post: %w", err)
	}

	logger := log.WithField("post", postID.Hex())
	if err := s.commentRepo.DeleteByPost(ctx, postID); err != nil {
		logger.Errorf("delete comments of removed post: %s", err)
	}
	if err := s.likeRepo.DeleteByPost(ctx, postID); err != nil {
		logger.Errorf("delete likes of removed post: %s", err)
	}
	if post.MediaKey != "" {
		if err := s.fileStorage.DeleteObject(ctx, post.MediaKey); err != nil {
			logger.Errorf("delete media of removed post: %s", err)
		}
	}

	s.publish(ctx, domain.FeedEvent{Type: domain.FeedPostDeleted, PostID: postID.Hex(), UserID: actorID.Hex()})
	return nil
}

// === Comments ===

func (s *feedService) AddComment(ctx context.Context, authorID, postID primitive.ObjectID, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if err := validateText("content", content, maxCommentLength); err != nil {
		return nil, err
	}
	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}
	author, err := s.getUser(ctx, authorID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID:     postID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Content:    content,
	}
	if _, err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	if err := s.postRepo.IncrementCounters(ctx, postID, 0, 1); err != nil {
		log.WithField("post", postID.Hex()).Warnf("increment comment count: %s", err)
	}

	s.publish(ctx, domain.FeedEvent{Type: domain.FeedCommentAdded, PostID: postID.Hex(), CommentID: comment.ID.Hex(), UserID: authorID.Hex()})
	return comment, nil
}

func (s *feedService) ListComments(ctx context.Context, postID primitive.ObjectID) ([]domain.Comment, error) {
	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *feedService) DeleteComment(ctx context.Context, actorID, commentID primitive.ObjectID) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if err := s.authorize(ctx, actorID, comment.AuthorID); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	if err := s.postRepo.IncrementCounters(ctx, comment.PostID, 0, -1); err != nil {
		log.WithField("post", comment.PostID.Hex()).Warnf("decrement comment count: %s", err)
	}

	s.publish(ctx, domain.FeedEvent{Type: domain.FeedCommentDeleted, PostID: comment.PostID.Hex(), CommentID: commentID.Hex(), UserID: actorID.Hex()})
	return nil
}

// === Likes ===

func (s *feedService) LikePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	if _, err := s.getPost(ctx, postID); err != nil {
		return err
	}
	if _, err := s.likeRepo.Create(ctx, &domain.Like{PostID: postID, UserID: userID}); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyLiked
		}
		return fmt.Errorf("like post: %w", err)
	}
	if err := s.postRepo.IncrementCounters(ctx, postID, 1, 0); err != nil {
		log.WithField("post", postID.Hex()).Warnf("increment like count: %s", err)
	}

	s.publish(ctx, domain.FeedEvent{Type: domain.FeedPostLiked, PostID: postID.Hex(), UserID: userID.Hex()})
	return nil
}

func (s *feedService) UnlikePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	if err := s.likeRepo.Delete(ctx, postID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotLiked
		}
		return fmt.Errorf("unlike post: %w", err)
	}
	if err := s.postRepo.IncrementCounters(ctx, postID, -1, 0); err != nil {
		log.WithField("post", postID.Hex()).Warnf("decrement like count: %s", err)
	}

	s.publish(ctx, domain.FeedEvent{Type: domain.FeedPostUnliked, PostID: postID.Hex(), UserID: userID.Hex()})
	return nil
}

// === Media & live updates ===

// RequestMediaUploadURL issues a presigned PUT URL for a post image. The
// returned key is then passed to CreatePost.
func (s *feedService) RequestMediaUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (*UploadURLResponse, error) {
	contentType, ok := storage.NormalizeContentType(contentType)
	if !ok {
		return nil, &ValidationError{Field: "contentType", Reason: "must be one of image/jpeg, image/png, image/webp, image/gif"}
	}
	objectKey, err := storage.ObjectKey(postMediaPrefix, userID.Hex(), contentType)
	if err != nil {
		return nil, &ValidationError{Field: "contentType", Reason: err.Error()}
	}
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadURLError, err)
	}
	return &UploadURLResponse{UploadURL: uploadURL, ObjectKey: objectKey}, nil
}

func (s *feedService) Subscribe(ctx context.Context) (<-chan domain.FeedEvent, error) {
	return s.publisher.Subscribe(ctx)
}

// --- helpers ---

// publish never fails the mutation; live subscribers can refetch.
func (s *feedService) publish(ctx context.Context, event domain.FeedEvent) {
	event.At = s.now().UTC()
	s.recorder.FeedEvent(event.Type)
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithField("event", event.Type).Warnf("publish feed event: %s", err)
	}
}

func (s *feedService) details(ctx context.Context, post *domain.Post) *PostDetails {
	d := &PostDetails{Post: *post}
	if post.MediaKey == "" {
		return d
	}
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, post.MediaKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		log.WithField("post", post.ID.Hex()).Warnf("%s: %s", ErrDownloadURLError, err)
		return d
	}
	d.MediaURL = &url
	return d
}

func (s *feedService) getPost(ctx context.Context, id primitive.ObjectID) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *feedService) getUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// authorize allows the owner of a resource and moderators.
func (s *feedService) authorize(ctx context.Context, actorID, ownerID primitive.ObjectID) error {
	if actorID == ownerID {
		return nil
	}
	actor, err := s.getUser(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.IsModerator() {
		return ErrNotAuthor
	}
	return nil
}

func validateText(field, text string, max int) error {
	if text == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(text) > max {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be at most %d characters", max)}
	}
	return nil
}
