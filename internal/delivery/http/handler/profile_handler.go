package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-backend/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.UseCase
}

func NewProfileHandler(profileUseCase *profile.UseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// CreateProfile handles POST /profile
// @Summary Create a profile
// @Description Create a candidate or startup profile owned by the caller
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.CreateProfileInput true "Profile data"
// @Success 201 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Router /profile [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var input profile.CreateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	created, err := h.profileUseCase.CreateProfile(c.Request.Context(), userID, &input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListMyProfiles handles GET /profile/me
// @Summary List my profiles
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Profile
// @Router /profile/me [get]
func (h *ProfileHandler) ListMyProfiles(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	profiles, err := h.profileUseCase.ListMyProfiles(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// GetMyProfile handles GET /profile/me/:profile_id
// @Summary Get one of my profiles
// @Description Full profile with related collections, owner only
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param profile_id path int true "Profile ID"
// @Success 200 {object} domain.Profile
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/me/{profile_id} [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	profileID, err := strconv.Atoi(c.Param("profile_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid profile id"})
		return
	}

	p, err := h.profileUseCase.GetMyProfile(c.Request.Context(), userID, profileID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateProfile handles PUT /profile/me/:profile_id
// @Summary Update my profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param profile_id path int true "Profile ID"
// @Param request body profile.UpdateProfileInput true "Fields to update"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/me/{profile_id} [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	profileID, err := strconv.Atoi(c.Param("profile_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid profile id"})
		return
	}

	var input profile.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	updated, err := h.profileUseCase.UpdateProfile(c.Request.Context(), userID, profileID, &input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GetProfileByID handles GET /profile/:profile_id
// @Summary View a profile
// @Description Full profile for owners, privacy-filtered projection otherwise
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param profile_id path int true "Profile ID"
// @Success 200 {object} map[string]any
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/{profile_id} [get]
func (h *ProfileHandler) GetProfileByID(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	profileID, err := strconv.Atoi(c.Param("profile_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid profile id"})
		return
	}

	projection, err := h.profileUseCase.GetProfileByID(c.Request.Context(), userID, profileID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, projection)
}

// GetPrivacySettings handles GET /profile/me/:profile_id/privacy
// @Summary Get privacy settings
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param profile_id path int true "Profile ID"
// @Success 200 {object} domain.PrivacySettings
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/me/{profile_id}/privacy [get]
func (h *ProfileHandler) GetPrivacySettings(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	profileID, err := strconv.Atoi(c.Param("profile_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid profile id"})
		return
	}

	settings, err := h.profileUseCase.GetPrivacySettings(c.Request.Context(), userID, profileID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdatePrivacySettings handles PUT /profile/me/:profile_id/privacy
// @Summary Update privacy settings
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param profile_id path int true "Profile ID"
// @Param request body profile.PrivacyInput true "Privacy tiers"
// @Success 200 {object} domain.PrivacySettings
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/me/{profile_id}/privacy [put]
func (h *ProfileHandler) UpdatePrivacySettings(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	profileID, err := strconv.Atoi(c.Param("profile_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid profile id"})
		return
	}

	var input profile.PrivacyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	settings, err := h.profileUseCase.UpdatePrivacySettings(c.Request.Context(), userID, profileID, &input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
