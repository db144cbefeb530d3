package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-backend/internal/usecase/connection"
)

type ConnectionHandler struct {
	connectionUseCase *connection.UseCase
}

func NewConnectionHandler(connectionUseCase *connection.UseCase) *ConnectionHandler {
	return &ConnectionHandler{
		connectionUseCase: connectionUseCase,
	}
}

// Connect handles POST /connections/connect
// @Summary Request a connection
// @Description Send or confirm a connection request between two profiles
// @Tags connections
// @Security BearerAuth
// @Produce json
// @Param fromID query int true "Requesting profile ID (must be owned by caller)"
// @Param toID query int true "Target profile ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /connections/connect [post]
func (h *ConnectionHandler) Connect(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	fromID, err1 := strconv.Atoi(c.Query("fromID"))
	toID, err2 := strconv.Atoi(c.Query("toID"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "fromID and toID are required"})
		return
	}

	result, err := h.connectionUseCase.RequestConnection(c.Request.Context(), userID, fromID, toID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: result.Message})
}
