package service

import (
	"context"
	"errors"
	"fmt"

	"fitnesshub/fitness-app/internal/domain"
	"fitnesshub/fitness-app/internal/repository"
	"fitnesshub/fitness-app/internal/storage"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const avatarPrefix = "avatars"

// UploadURLResponse structure for returning URL and object key
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"` // reported back by the client once uploaded
}

// ProfileDetails is the user's profile with a temporary avatar URL.
type ProfileDetails struct {
	domain.User
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*ProfileDetails, error)
	UpdateGoals(ctx context.Context, userID primitive.ObjectID, goals []domain.WorkoutType) (*ProfileDetails, error)
	UpdateNotifications(ctx context.Context, userID primitive.ObjectID, prefs domain.NotificationPrefs) (*ProfileDetails, error)
	UpdateBodyMetrics(ctx context.Context, userID primitive.ObjectID, heightCm, weightKg float64) (*ProfileDetails, error)
	RequestAvatarUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (*UploadURLResponse, error)
}

type profileService struct {
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(userRepo repository.UserRepository, fileStorage storage.FileStorage) ProfileService {
	return &profileService{
		userRepo:    userRepo,
		fileStorage: fileStorage,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*ProfileDetails, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""

	details := &ProfileDetails{User: *user}
	if user.AvatarKey != "" {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, user.AvatarKey, storage.DefaultPresignedURLExpiry)
		if err != nil {
			log.Warnf("avatar url for user %s: %s", userID.Hex(), err)
		} else {
			details.AvatarURL = &url
		}
	}
	return details, nil
}

// UpdateGoals stores the program keys the user is working towards. Duplicates are dropped.
func (s *profileService) UpdateGoals(ctx context.Context, userID primitive.ObjectID, goals []domain.WorkoutType) (*ProfileDetails, error) {
	seen := make(map[domain.WorkoutType]bool, len(goals))
	unique := make([]domain.WorkoutType, 0, len(goals))
	for _, g := range goals {
		if !g.IsValid() {
			return nil, &ValidationError{Field: "goals", Reason: "unknown program " + string(g)}
		}
		if !seen[g] {
			seen[g] = true
			unique = append(unique, g)
		}
	}
	if err := s.mapNotFound(s.userRepo.UpdateGoals(ctx, userID, unique)); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

func (s *profileService) UpdateNotifications(ctx context.Context, userID primitive.ObjectID, prefs domain.NotificationPrefs) (*ProfileDetails, error) {
	if err := s.mapNotFound(s.userRepo.UpdateNotifications(ctx, userID, prefs)); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

func (s *profileService) UpdateBodyMetrics(ctx context.Context, userID primitive.ObjectID, heightCm, weightKg float64) (*ProfileDetails, error) {
	if heightCm <= 0 || heightCm > 300 {
		return nil, &ValidationError{Field: "heightCm", Reason: "must be between 0 and 300"}
	}
	if weightKg <= 0 || weightKg > 500 {
		return nil, &ValidationError{Field: "weightKg", Reason: "must be between 0 and 500"}
	}
	if err := s.mapNotFound(s.userRepo.UpdateBodyMetrics(ctx, userID, heightCm, weightKg)); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

// RequestAvatarUploadURL issues a presigned PUT URL and records the key as
// the user's avatar.
func (s *profileService) RequestAvatarUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (*UploadURLResponse, error) {
	contentType, ok := storage.NormalizeContentType(contentType)
	if !ok {
		return nil, &ValidationError{Field: "contentType", Reason: "must be one of image/jpeg, image/png, image/webp, image/gif"}
	}

	objectKey, err := storage.ObjectKey(avatarPrefix, userID.Hex(), contentType)
	if err != nil {
		return nil, &ValidationError{Field: "contentType", Reason: err.Error()}
	}
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadURLError, err)
	}
	if err := s.mapNotFound(s.userRepo.SetAvatarKey(ctx, userID, objectKey)); err != nil {
		return nil, err
	}
	return &UploadURLResponse{UploadURL: uploadURL, ObjectKey: objectKey}, nil
}

func (s *profileService) mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
