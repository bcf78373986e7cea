package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"inkwell/internal/models/request_models"
	"inkwell/internal/services"
	"inkwell/pkg/utils"
)

type CommentController struct {
	commentService services.CommentServiceInterface
}

func NewCommentController(commentService services.CommentServiceInterface) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	var req request_models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	comment, err := cc.commentService.CreateComment(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comment, "Comment created successfully")
}

func (cc *CommentController) UpdateComment(c *gin.Context) {
	var req request_models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	comment, err := cc.commentService.UpdateComment(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comment, "Comment updated successfully")
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := cc.commentService.DeleteComment(c.Request.Context(), userID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Comment deleted successfully")
}

// GetPostComments godoc
// @Summary List top-level comments of a post with reply counts
// @Tags Comments
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Router /posts/{id}/comments [get]
func (cc *CommentController) GetPostComments(c *gin.Context) {
	result, err := cc.commentService.GetPostComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Fetched comments successfully")
}

func (cc *CommentController) GetReplies(c *gin.Context) {
	result, err := cc.commentService.GetReplies(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Fetched replies successfully")
}
