package service

import (
	"context"
	"strings"
	"testing"

	"fitnesshub/fitness-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProfile_GoalsAndPreferences(t *testing.T) {
	ctx := context.Background()
	users := newMemUserRepo()
	member := users.add("riley", domain.RoleMember)
	svc := NewProfileService(users, &fakeStorage{})

	profile, err := svc.UpdateGoals(ctx, member.ID, []domain.WorkoutType{
		domain.WorkoutLoseWeight, domain.WorkoutFlexibility, domain.WorkoutLoseWeight,
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.WorkoutType{domain.WorkoutLoseWeight, domain.WorkoutFlexibility}, profile.Goals)

	_, err = svc.UpdateGoals(ctx, member.ID, []domain.WorkoutType{"couch-potato"})
	require.ErrorIs(t, err, ErrValidation)

	prefs := domain.NotificationPrefs{WorkoutReminders: true}
	profile, err = svc.UpdateNotifications(ctx, member.ID, prefs)
	require.NoError(t, err)
	assert.Equal(t, prefs, profile.Notifications)

	profile, err = svc.UpdateBodyMetrics(ctx, member.ID, 172.5, 68)
	require.NoError(t, err)
	assert.Equal(t, 172.5, profile.HeightCm)
	assert.Equal(t, 68.0, profile.WeightKg)

	_, err = svc.UpdateBodyMetrics(ctx, member.ID, 0, 68)
	require.ErrorIs(t, err, ErrValidation)
	_, err = svc.UpdateBodyMetrics(ctx, member.ID, 170, 900)
	require.ErrorIs(t, err, ErrValidation)
}

func TestProfile_Avatar(t *testing.T) {
	ctx := context.Background()
	users := newMemUserRepo()
	member := users.add("riley", domain.RoleMember)
	svc := NewProfileService(users, &fakeStorage{})

	_, err := svc.RequestAvatarUploadURL(ctx, member.ID, "application/pdf")
	require.ErrorIs(t, err, ErrValidation)

	resp, err := svc.RequestAvatarUploadURL(ctx, member.ID, "image/PNG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.ObjectKey, "avatars/"+member.ID.Hex()+"/"))
	assert.True(t, strings.HasSuffix(resp.ObjectKey, ".png"))
	assert.Contains(t, resp.UploadURL, resp.ObjectKey)

	profile, err := svc.GetProfile(ctx, member.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.AvatarURL)
	assert.Contains(t, *profile.AvatarURL, resp.ObjectKey)
}

func TestProfile_AvatarKeyStaysInOwnerPrefix(t *testing.T) {
	ctx := context.Background()
	users := newMemUserRepo()
	member := users.add("mallory", domain.RoleMember)
	svc := NewProfileService(users, &fakeStorage{})

	_, err := svc.RequestAvatarUploadURL(ctx, member.ID, "image/../../../../posts/someone-else/photo.jpg")
	require.ErrorIs(t, err, ErrValidation)

	profile, err := svc.GetProfile(ctx, member.ID)
	require.NoError(t, err)
	assert.Nil(t, profile.AvatarURL)
}

func TestProfile_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newMemUserRepo(), &fakeStorage{})

	_, err := svc.GetProfile(ctx, primitive.NewObjectID())
	require.ErrorIs(t, err, ErrUserNotFound)
	_, err = svc.UpdateNotifications(ctx, primitive.NewObjectID(), domain.NotificationPrefs{})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfile_AvatarURLFailureIsNotFatal(t *testing.T) {
	users := newMemUserRepo()
	member := users.add("riley", domain.RoleMember)
	member.AvatarKey = "avatars/" + member.ID.Hex() + "/a.png"
	svc := NewProfileService(users, &fakeStorage{failURL: true})

	profile, err := svc.GetProfile(context.Background(), member.ID)
	require.NoError(t, err)
	assert.Nil(t, profile.AvatarURL)
}
