package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-backend/internal/usecase/activity"
)

type ActivityHandler struct {
	activityUseCase *activity.UseCase
}

func NewActivityHandler(activityUseCase *activity.UseCase) *ActivityHandler {
	return &ActivityHandler{
		activityUseCase: activityUseCase,
	}
}

// CountView handles POST /activity/countView
// @Summary Record a profile view
// @Tags activity
// @Security BearerAuth
// @Produce json
// @Param fromID query int true "Viewing profile ID (must be owned by caller)"
// @Param toID query int true "Viewed profile ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /activity/countView [post]
func (h *ActivityHandler) CountView(c *gin.Context) {
	h.record(c, h.activityUseCase.RecordView, "View recorded successfully.")
}

// CountSave handles POST /activity/countSave
// @Summary Record a profile save
// @Tags activity
// @Security BearerAuth
// @Produce json
// @Param fromID query int true "Saving profile ID (must be owned by caller)"
// @Param toID query int true "Saved profile ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /activity/countSave [post]
func (h *ActivityHandler) CountSave(c *gin.Context) {
	h.record(c, h.activityUseCase.RecordSave, "Save recorded successfully.")
}

// CountSkip handles POST /activity/countSkip
// @Summary Record a profile skip
// @Tags activity
// @Security BearerAuth
// @Produce json
// @Param fromID query int true "Skipping profile ID (must be owned by caller)"
// @Param toID query int true "Skipped profile ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /activity/countSkip [post]
func (h *ActivityHandler) CountSkip(c *gin.Context) {
	h.record(c, h.activityUseCase.RecordSkip, "Skip recorded successfully.")
}

func (h *ActivityHandler) record(c *gin.Context, fn func(ctx context.Context, callerUserID, fromProfileID, toProfileID int) error, message string) {
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

	if err := fn(c.Request.Context(), userID, fromID, toID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// GetViewed handles GET /activity/getViewed
// @Summary List profiles that viewed me
// @Tags activity
// @Security BearerAuth
// @Produce json
// @Param profileID query int true "Profile ID (must be owned by caller)"
// @Param page query int false "Page number"
// @Success 200 {object} activity.Page
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /activity/getViewed [get]
func (h *ActivityHandler) GetViewed(c *gin.Context) {
	h.list(c, h.activityUseCase.ListViewed)
}

// GetSaved handles GET /activity/getSaved
// @Summary List profiles I saved
// @Tags activity
// @Security BearerAuth
// @Produce json
// @Param profileID query int true "Profile ID (must be owned by caller)"
// @Param page query int false "Page number"
// @Success 200 {object} activity.Page
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /activity/getSaved [get]
func (h *ActivityHandler) GetSaved(c *gin.Context) {
	h.list(c, h.activityUseCase.ListSaved)
}

// GetSkipped handles GET /activity/getSkipped
// @Summary List profiles I skipped
// @Tags activity
// @Security BearerAuth
// @Produce json
// @Param profileID query int true "Profile ID (must be owned by caller)"
// @Param page query int false "Page number"
// @Success 200 {object} activity.Page
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /activity/getSkipped [get]
func (h *ActivityHandler) GetSkipped(c *gin.Context) {
	h.list(c, h.activityUseCase.ListSkipped)
}

func (h *ActivityHandler) list(c *gin.Context, fn func(ctx context.Context, callerUserID, profileID, page int) (*activity.Page, error)) {
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

	result, err := fn(c.Request.Context(), userID, profileID, page)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
