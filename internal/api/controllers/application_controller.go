package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodiesbnb/internal/models/db_models"
	"foodiesbnb/internal/models/request_models"
	"foodiesbnb/internal/services"
	"foodiesbnb/pkg/utils"
)

type ApplicationController struct {
	applicationService services.ApplicationServiceInterface
}

func NewApplicationController(applicationService services.ApplicationServiceInterface) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// Apply godoc
// @Summary Apply to a pending collaboration
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path string true "Collaboration ID"
// @Param request body request_models.ApplyRequest true "Application payload"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /collaborations/{id}/applications [post]
func (ac *ApplicationController) Apply(c *gin.Context) {
	var req request_models.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	application, err := ac.applicationService.Apply(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, application, "¡Aplicación enviada!")
}

// ListForCollaboration godoc
// @Summary List applications for an owned collaboration
// @Tags Applications
// @Produce json
// @Param id path string true "Collaboration ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /collaborations/{id}/applications [get]
func (ac *ApplicationController) ListForCollaboration(c *gin.Context) {
	applications, err := ac.applicationService.ListForCollaboration(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, applications, "")
}

// MyApplication godoc
// @Summary Fetch the caller's own application to a collaboration
// @Tags Applications
// @Produce json
// @Param id path string true "Collaboration ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /collaborations/{id}/applications/mine [get]
func (ac *ApplicationController) MyApplication(c *gin.Context) {
	application, err := ac.applicationService.MyApplication(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, application, "")
}

// Decide godoc
// @Summary Accept or reject a pending application
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body request_models.DecideApplicationRequest true "Decision payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /applications/{id} [patch]
func (ac *ApplicationController) Decide(c *gin.Context) {
	var req request_models.DecideApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := ac.applicationService.Decide(c.Request.Context(), c.GetString("user_id"), c.Param("id"), db_models.CollaborationStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Aplicación rechazada"
	if req.Status == string(db_models.StatusAccepted) {
		message = "Aplicación aceptada"
	}
	utils.RespondSuccess(c, nil, message)
}
