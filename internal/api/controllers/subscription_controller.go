package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"inkwell/internal/models/request_models"
	"inkwell/internal/services"
	"inkwell/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// CreateSubscription godoc
// @Summary Subscribe to a plan
// @Description Create a pending subscription for the current user
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.CreateSubscriptionRequest true "Create Subscription Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions [post]
func (s *SubscriptionController) CreateSubscription(c *gin.Context) {
	var req request_models.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sub, err := s.subscriptionService.CreateSubscription(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscription created successfully")
}

// GetStatus godoc
// @Summary Get the current user's subscription status
// @Description Composite view of subscription, pin and entitlement state
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/status [get]
func (s *SubscriptionController) GetStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	status, err := s.subscriptionService.Status(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Fetched subscription status")
}

func (s *SubscriptionController) GetHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	history, err := s.subscriptionService.History(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "Fetched subscription history")
}

func (s *SubscriptionController) Cancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := s.subscriptionService.Cancel(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscription cancelled")
}

// Activate is the external activation trigger, e.g. called by an admin or a
// payment confirmation hook once checkout settles outside this service.
func (s *SubscriptionController) Activate(c *gin.Context) {
	sub, err := s.subscriptionService.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscription activated")
}

func (s *SubscriptionController) Renew(c *gin.Context) {
	sub, err := s.subscriptionService.Renew(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscription renewed")
}

// PinPost godoc
// @Summary Pin one of your published posts
// @Description Requires an active subscription; one pin slot per user
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.PinPostRequest true "Pin Post Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/pin [post]
func (s *SubscriptionController) PinPost(c *gin.Context) {
	var req request_models.PinPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pin, err := s.subscriptionService.PinPost(c.Request.Context(), userID, req.PostID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pin, "Post pinned successfully")
}

func (s *SubscriptionController) UnpinPost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := s.subscriptionService.UnpinPost(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post unpinned successfully")
}
