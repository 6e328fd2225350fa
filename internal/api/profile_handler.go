package api

import (
	"fmt"
	"net/http"

	"fitnesshub/fitness-app/internal/domain"
	"fitnesshub/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type UpdateGoalsRequest struct {
	Goals []domain.WorkoutType `json:"goals" binding:"required"`
}

type UpdateMetricsRequest struct {
	HeightCm float64 `json:"heightCm" binding:"required"`
	WeightKg float64 `json:"weightKg" binding:"required"`
}

type UploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapProfile(profile))
}

func (h *ProfileHandler) UpdateGoals(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	var req UpdateGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	profile, err := h.profileService.UpdateGoals(c.Request.Context(), userID, req.Goals)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapProfile(profile))
}

func (h *ProfileHandler) UpdateNotifications(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	var req domain.NotificationPrefs
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	profile, err := h.profileService.UpdateNotifications(c.Request.Context(), userID, req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapProfile(profile))
}

func (h *ProfileHandler) UpdateMetrics(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	var req UpdateMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	profile, err := h.profileService.UpdateBodyMetrics(c.Request.Context(), userID, req.HeightCm, req.WeightKg)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapProfile(profile))
}

// RequestAvatarUploadURL returns a presigned PUT URL; the client uploads the
// image straight to object storage.
func (h *ProfileHandler) RequestAvatarUploadURL(c *gin.Context) {
	userID, ok := getUserObjectID(c)
	if !ok {
		return
	}
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	resp, err := h.profileService.RequestAvatarUploadURL(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func mapProfile(p *service.ProfileDetails) UserResponse {
	return MapUserToResponse(&p.User, p.AvatarURL)
}
