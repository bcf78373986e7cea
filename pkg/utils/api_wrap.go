package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID,
	})
}

// HandleServiceError maps service sentinels to HTTP failure categories:
// validation 400, not found 404, authorization/entitlement 403, conflict 409.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrInvalidPageSize),
		errors.Is(err, ErrPlanInactive),
		errors.Is(err, ErrPlanReferenced),
		errors.Is(err, ErrPlanCodeExists),
		errors.Is(err, ErrSubscriptionExists),
		errors.Is(err, ErrSubscriptionTerminal),
		errors.Is(err, ErrSubscriptionNotActive),
		errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrInvalidResetToken),
		errors.Is(err, ErrCategoryExists),
		errors.Is(err, ErrPostNotPublished),
		errors.Is(err, ErrParentMismatch):
		RespondError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrSubscriptionNotFound),
		errors.Is(err, ErrPostNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrCommentNotFound),
		errors.Is(err, ErrPinNotFound):
		RespondError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, ErrNotPostAuthor),
		errors.Is(err, ErrNotCommentAuthor),
		errors.Is(err, ErrNoEntitlement):
		RespondError(c, http.StatusForbidden, err.Error())

	case errors.Is(err, ErrAlreadyPinned):
		RespondError(c, http.StatusConflict, err.Error())

	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")

	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
