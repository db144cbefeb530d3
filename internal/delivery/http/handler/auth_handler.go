package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-backend/internal/usecase/auth"
)

type AuthHandler struct {
	authUseCase *auth.UseCase
}

func NewAuthHandler(authUseCase *auth.UseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// Register handles POST /auth/register
// @Summary Register an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.RegisterInput true "Account data"
// @Success 201 {object} auth.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input auth.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.authUseCase.Register(c.Request.Context(), &input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Login handles POST /auth/login
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.LoginInput true "Credentials"
// @Success 200 {object} auth.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input auth.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), &input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Me handles GET /auth/me
// @Summary Current account
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID})
}
