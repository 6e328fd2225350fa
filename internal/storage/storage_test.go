package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	key, err := ObjectKey("posts", "abc123", "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "posts/abc123/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.True(t, OwnedBy(key, "posts", "abc123"))
	assert.False(t, OwnedBy(key, "posts", "abc12"))
	assert.False(t, OwnedBy(key, "avatars", "abc123"))

	key, err = ObjectKey("avatars", "u", " Image/JPEG ")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	first, _ := ObjectKey("posts", "u", "image/jpeg")
	second, _ := ObjectKey("posts", "u", "image/jpeg")
	assert.NotEqual(t, first, second)
}

func TestObjectKey_RejectsUnknownTypes(t *testing.T) {
	for _, contentType := range []string{
		"",
		"weird",
		"video/mp4",
		"image/svg+xml",
		"image/../../../../avatars/victim/victim.png",
		"image/png/../../x",
	} {
		t.Run(contentType, func(t *testing.T) {
			key, err := ObjectKey("posts", "mallory", contentType)
			require.ErrorIs(t, err, ErrUnsupportedContentType)
			assert.Empty(t, key)
		})
	}
}

func TestOwnedBy_DotSegments(t *testing.T) {
	assert.False(t, OwnedBy("posts/mallory/../victim/a.png", "posts", "mallory"))
	assert.False(t, OwnedBy("posts/mallory/./a.png", "posts", "mallory"))
	assert.False(t, OwnedBy("posts/mallory/sub/a.png", "posts", "mallory"))
	assert.False(t, OwnedBy("posts/mallory/..", "posts", "mallory"))
	assert.True(t, OwnedBy("posts/mallory/a.png", "posts", "mallory"))
}
