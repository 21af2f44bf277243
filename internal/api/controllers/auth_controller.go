package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodiesbnb/internal/models/request_models"
	"foodiesbnb/internal/services"
	"foodiesbnb/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register a new account
// @Description Create the identity, its profile and its role row
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := a.authService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, session, "¡Registro exitoso!")
}

// Login godoc
// @Summary Sign in with email and password
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "¡Bienvenido de vuelta!")
}

// Session godoc
// @Summary Current session probe
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/session [get]
func (a *AuthController) Session(c *gin.Context) {
	session, err := a.authService.Session(
		c.Request.Context(),
		c.GetString("user_id"),
		c.GetString("email"),
		c.GetString("token"),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "")
}

// RefreshProfile godoc
// @Summary Re-run profile resolution for the current identity
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/refresh-profile [post]
func (a *AuthController) RefreshProfile(c *gin.Context) {
	profile, err := a.authService.RefreshProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "")
}

// Logout godoc
// @Summary Sign out
// @Description Invalidates the cached session, then the client drops the token
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	a.authService.SignOut(c.GetString("token"))
	utils.RespondSuccess(c, nil, "Sesión cerrada")
}
