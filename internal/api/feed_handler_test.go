package api

import (
	"net/http"
	"testing"
	"time"

	"fitnesshub/fitness-app/internal/domain"
	"fitnesshub/fitness-app/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDeletePost(t *testing.T) {
	author := primitive.NewObjectID()
	other := primitive.NewObjectID()
	postID := primitive.NewObjectID()

	feed := &stubFeed{
		deletePost: func(actorID, gotPost primitive.ObjectID) error {
			assert.Equal(t, postID, gotPost)
			if actorID != author {
				return service.ErrNotAuthor
			}
			return nil
		},
	}
	router := NewRouter(RouterParams{JWTSecret: testJWTSecret, FeedService: feed})
	path := "/api/v1/feed/posts/" + postID.Hex()

	rec := doRequest(router, http.MethodDelete, path, signToken(t, other.Hex(), domain.RoleMember), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(router, http.MethodDelete, path, signToken(t, author.Hex(), domain.RoleMember), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(router, http.MethodDelete, "/api/v1/feed/posts/not-an-id", signToken(t, author.Hex(), domain.RoleMember), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestModerationRouteRequiresModerator(t *testing.T) {
	var calls int
	feed := &stubFeed{
		deletePost: func(_, _ primitive.ObjectID) error {
			calls++
			return nil
		},
	}
	router := NewRouter(RouterParams{JWTSecret: testJWTSecret, FeedService: feed})
	path := "/api/v1/moderation/posts/" + primitive.NewObjectID().Hex()

	rec := doRequest(router, http.MethodDelete, path, signToken(t, primitive.NewObjectID().Hex(), domain.RoleMember), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, calls)

	rec = doRequest(router, http.MethodDelete, path, signToken(t, primitive.NewObjectID().Hex(), domain.RoleModerator), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, calls)
}

func TestListPosts(t *testing.T) {
	var gotLimit int
	var gotBefore time.Time
	feed := &stubFeed{
		listPosts: func(limit int, before time.Time) ([]service.PostDetails, error) {
			gotLimit, gotBefore = limit, before
			return []service.PostDetails{{Post: domain.Post{Content: "first run this year"}}}, nil
		},
	}
	router := NewRouter(RouterParams{JWTSecret: testJWTSecret, FeedService: feed})
	token := signToken(t, primitive.NewObjectID().Hex(), domain.RoleMember)

	rec := doRequest(router, http.MethodGet, "/api/v1/feed/posts", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.DefaultFeedLimit, gotLimit)
	assert.True(t, gotBefore.IsZero())

	rec = doRequest(router, http.MethodGet, "/api/v1/feed/posts?limit=5&before=2024-06-12T08:00:00Z", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, gotLimit)
	assert.Equal(t, time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC), gotBefore)

	rec = doRequest(router, http.MethodGet, "/api/v1/feed/posts?limit=0", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
