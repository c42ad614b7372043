package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model "fishmarket/internal/models"
	"fishmarket/services/marketplace/helpers"
	"fishmarket/utils"
)

type ProfileServiceInterface interface {
	GetProfile(profileID string) (model.Profile, error)
	GetSafeProfile(profileID string) (model.SafeProfile, error)
	UpdateProfile(profileID string, patch model.ProfilePatch) (model.Profile, error)
	SubmitReview(reviewerID, orderID string, rating int, comment string) (model.Review, error)
	ReviewsFor(profileID string) ([]model.Review, error)
	Notifications(profileID string) ([]model.Notification, error)
	MarkNotificationRead(profileID, notificationID string) error
}

type ProfileHandler struct {
	service ProfileServiceInterface
}

func NewProfileHandler(service ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetOwnProfileHandler handles GET /profiles/me
func (h *ProfileHandler) GetOwnProfileHandler(c *gin.Context) {
	profileID := c.GetString("profile_id")

	p, err := h.service.GetProfile(profileID)
	if err != nil {
		helpers.HandleServiceError(c, "GetOwnProfileHandler", err, map[string]any{"profile_id": profileID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, p, "profile retrieved successfully")
}

// UpdateProfileHandler handles PATCH /profiles/me
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	profileID := c.GetString("profile_id")

	var patch model.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		helpers.HandleBindError(c, "UpdateProfileHandler", err)
		return
	}

	p, err := h.service.UpdateProfile(profileID, patch)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateProfileHandler", err, map[string]any{"profile_id": profileID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, p, "profile updated successfully")
	helpers.LogSuccess("UpdateProfileHandler", "profile updated successfully", map[string]any{"profile_id": profileID})
}

// GetSafeProfileHandler handles GET /profiles/:profile_id
// Only the restricted public column set ever leaves this endpoint.
func (h *ProfileHandler) GetSafeProfileHandler(c *gin.Context) {
	profileID := c.Param("profile_id")

	p, err := h.service.GetSafeProfile(profileID)
	if err != nil {
		helpers.HandleServiceError(c, "GetSafeProfileHandler", err, map[string]any{"profile_id": profileID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, p, "profile retrieved successfully")
}

// SubmitReviewHandler handles POST /reviews
func (h *ProfileHandler) SubmitReviewHandler(c *gin.Context) {
	reviewerID := c.GetString("profile_id")

	var req helpers.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitReviewHandler", err)
		return
	}

	review, err := h.service.SubmitReview(reviewerID, req.OrderID, req.Rating, req.Comment)
	if err != nil {
		helpers.HandleServiceError(c, "SubmitReviewHandler", err, map[string]any{"order_id": req.OrderID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, review, "review submitted successfully")
	helpers.LogSuccess("SubmitReviewHandler", "review submitted successfully", map[string]any{
		"review_id": review.ID,
		"order_id":  req.OrderID,
		"rating":    req.Rating,
	})
}

// GetReviewsHandler handles GET /profiles/:profile_id/reviews
func (h *ProfileHandler) GetReviewsHandler(c *gin.Context) {
	profileID := c.Param("profile_id")

	reviews, err := h.service.ReviewsFor(profileID)
	if err != nil {
		helpers.HandleServiceError(c, "GetReviewsHandler", err, map[string]any{"profile_id": profileID})
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}

	utils.JSONResponse(c, http.StatusOK, reviews, "reviews retrieved successfully")
}

// GetNotificationsHandler handles GET /notifications
func (h *ProfileHandler) GetNotificationsHandler(c *gin.Context) {
	profileID := c.GetString("profile_id")

	notes, err := h.service.Notifications(profileID)
	if err != nil {
		helpers.HandleServiceError(c, "GetNotificationsHandler", err, map[string]any{"profile_id": profileID})
		return
	}
	if notes == nil {
		notes = []model.Notification{}
	}

	utils.JSONResponse(c, http.StatusOK, notes, "notifications retrieved successfully")
}

// MarkNotificationReadHandler handles POST /notifications/:notification_id/read
func (h *ProfileHandler) MarkNotificationReadHandler(c *gin.Context) {
	profileID := c.GetString("profile_id")
	notificationID := c.Param("notification_id")

	if err := h.service.MarkNotificationRead(profileID, notificationID); err != nil {
		helpers.HandleServiceError(c, "MarkNotificationReadHandler", err, map[string]any{"notification_id": notificationID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "notification marked read")
}
