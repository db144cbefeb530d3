package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-backend/internal/domain"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP status codes. Unknown errors are
// reported as 500 without leaking internals.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid input"})
	case errors.Is(err, domain.ErrSameRolePair):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrSameRolePair.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: domain.ErrInvalidCredentials.Error()})
	case errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "profile does not belong to caller"})
	case errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
	case errors.Is(err, domain.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "account not found"})
	case errors.Is(err, domain.ErrConnectionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "connection not found"})
	case errors.Is(err, domain.ErrPrivacyNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "privacy settings not found"})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: domain.ErrEmailTaken.Error()})
	case errors.Is(err, domain.ErrAlreadyConnected):
		c.JSON(http.StatusConflict, ErrorResponse{Error: domain.ErrAlreadyConnected.Error()})
	case errors.Is(err, domain.ErrPendingApproval):
		c.JSON(http.StatusConflict, ErrorResponse{Error: domain.ErrPendingApproval.Error()})
	case errors.Is(err, domain.ErrRecipientRejected):
		c.JSON(http.StatusConflict, ErrorResponse{Error: domain.ErrRecipientRejected.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "please retry"})
	case errors.Is(err, domain.ErrCorruptState):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// callerID reads the authenticated account set by the auth middleware.
func callerID(c *gin.Context) (int, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return 0, false
	}
	return userID.(int), true
}
