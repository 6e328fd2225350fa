package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"fitnesshub/fitness-app/internal/metrics"
	"fitnesshub/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// streamHeartbeat keeps idle feed streams alive through proxies.
const streamHeartbeat = 25 * time.Second

type FeedHandler struct {
	feedService    service.FeedService
	metricsManager *metrics.Manager
	location       *time.Location
}

func NewFeedHandler(feedService service.FeedService, metricsManager *metrics.Manager, location *time.Location) *FeedHandler {
	return &FeedHandler{
		feedService:    feedService,
		metricsManager: metricsManager,
		location:       location,
	}
}

type CreatePostRequest struct {
	Content  string `json:"content" binding:"required"`
	MediaKey string `json:"mediaKey"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// --- Posts ---

func (h *FeedHandler) CreatePost(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	post, err := h.feedService.CreatePost(c.Request.Context(), userID, req.Content, req.MediaKey)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// ListPosts returns the newest posts. Page with ?before=<createdAt of the
// last post seen>.
func (h *FeedHandler) ListPosts(c *gin.Context) {
	before, ok := parseTimeParam(c, "before", h.location)
	if !ok {
		return
	}
	limit := service.DefaultFeedLimit
	if raw := c.Query("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			abortWithError(c, http.StatusBadRequest, "Invalid limit: must be a positive integer")
			return
		}
	}

	posts, err := h.feedService.ListPosts(c.Request.Context(), limit, before)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *FeedHandler) GetPost(c *gin.Context) {
	postID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	post, err := h.feedService.GetPost(c.Request.Context(), postID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost serves both the author route and the moderation route; the
// service checks authorship or the moderator role.
func (h *FeedHandler) DeletePost(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	postID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.feedService.DeletePost(c.Request.Context(), userID, postID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Likes ---

func (h *FeedHandler) LikePost(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	postID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.feedService.LikePost(c.Request.Context(), userID, postID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FeedHandler) UnlikePost(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	postID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.feedService.UnlikePost(c.Request.Context(), userID, postID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Comments ---

func (h *FeedHandler) AddComment(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	postID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	comment, err := h.feedService.AddComment(c.Request.Context(), userID, postID, req.Content)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *FeedHandler) ListComments(c *gin.Context) {
	postID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	comments, err := h.feedService.ListComments(c.Request.Context(), postID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *FeedHandler) DeleteComment(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	commentID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.feedService.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Media & stream ---

func (h *FeedHandler) RequestMediaUploadURL(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	resp, err := h.feedService.RequestMediaUploadURL(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Stream relays feed events as server-sent events until the client leaves.
func (h *FeedHandler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	events, err := h.feedService.Subscribe(ctx)
	if err != nil {
		log.Errorf("feed stream subscribe: %s", err)
		abortWithError(c, http.StatusServiceUnavailable, "feed stream unavailable")
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.GaugeStreamClients.Inc()
		defer h.metricsManager.GaugeStreamClients.Dec()
	}

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(string(event.Type), event)
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			return true
		case <-ctx.Done():
			return false
		}
	})
}

func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s format", name))
		return primitive.NilObjectID, false
	}
	return id, true
}
