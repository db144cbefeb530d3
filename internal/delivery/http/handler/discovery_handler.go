package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-backend/internal/usecase/discovery"
)

type DiscoveryHandler struct {
	discoveryUseCase *discovery.UseCase
}

func NewDiscoveryHandler(discoveryUseCase *discovery.UseCase) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUseCase: discoveryUseCase,
	}
}

// Discover handles GET /discover
// @Summary Discover profiles
// @Description Page over profiles still discoverable for the given profile
// @Tags discovery
// @Security BearerAuth
// @Produce json
// @Param profileID query int true "Requesting profile ID (must be owned by caller)"
// @Param page query int false "Page number"
// @Param perPage query int false "Page size"
// @Success 200 {object} discovery.Page
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /discover [get]
func (h *DiscoveryHandler) Discover(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	profileID, err := strconv.Atoi(c.Query("profileID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "profileID is required"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("perPage", "0"))

	result, err := h.discoveryUseCase.Discover(c.Request.Context(), userID, profileID, page, perPage)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetConnections handles GET /connections
// @Summary List matched profiles
// @Description Page over profiles matched with one of the caller's profiles
// @Tags connections
// @Security BearerAuth
// @Produce json
// @Param profileID query int true "Profile ID (must be owned by caller)"
// @Param page query int false "Page number"
// @Param perPage query int false "Page size"
// @Success 200 {object} discovery.Page
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /connections [get]
func (h *DiscoveryHandler) GetConnections(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	profileID, err := strconv.Atoi(c.Query("profileID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "profileID is required"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("perPage", "0"))

	result, err := h.discoveryUseCase.GetConnections(c.Request.Context(), userID, profileID, page, perPage)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
