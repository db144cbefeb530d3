package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-backend/internal/usecase/dashboard"
)

type DashboardHandler struct {
	dashboardUseCase *dashboard.UseCase
}

func NewDashboardHandler(dashboardUseCase *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

// GetSummary handles GET /dashboard
// @Summary Profile dashboard
// @Description Activity and connection aggregates for one of the caller's profiles
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param profileID query int true "Profile ID (must be owned by caller)"
// @Success 200 {object} dashboard.Summary
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	profileID, err := strconv.Atoi(c.Query("profileID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "profileID is required"})
		return
	}

	summary, err := h.dashboardUseCase.GetSummary(c.Request.Context(), userID, profileID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
