package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodiesbnb/internal/models/request_models"
	"foodiesbnb/internal/services"
	"foodiesbnb/pkg/utils"
)

type CollaborationController struct {
	collaborationService services.CollaborationServiceInterface
}

func NewCollaborationController(collaborationService services.CollaborationServiceInterface) *CollaborationController {
	return &CollaborationController{collaborationService: collaborationService}
}

// Create godoc
// @Summary Publish a collaboration offer
// @Tags Collaborations
// @Accept json
// @Produce json
// @Param request body request_models.CreateCollaborationRequest true "Offer payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /collaborations [post]
func (cc *CollaborationController) Create(c *gin.Context) {
	var req request_models.CreateCollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	collaboration, err := cc.collaborationService.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, collaboration, "Colaboración publicada")
}

// GetByID godoc
// @Summary Fetch one collaboration with its restaurant
// @Tags Collaborations
// @Produce json
// @Param id path string true "Collaboration ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /collaborations/{id} [get]
func (cc *CollaborationController) GetByID(c *gin.Context) {
	collaboration, err := cc.collaborationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, collaboration, "")
}

// ListMine godoc
// @Summary List the signed-in restaurant's own offers
// @Tags Collaborations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/collaborations [get]
func (cc *CollaborationController) ListMine(c *gin.Context) {
	collaborations, err := cc.collaborationService.ListMine(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, collaborations, "")
}

// Complete godoc
// @Summary Close an active collaboration and rate the creator
// @Tags Collaborations
// @Accept json
// @Produce json
// @Param id path string true "Collaboration ID"
// @Param request body request_models.CompleteCollaborationRequest true "Rating payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /collaborations/{id}/complete [post]
func (cc *CollaborationController) Complete(c *gin.Context) {
	var req request_models.CompleteCollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := cc.collaborationService.Complete(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Colaboración completada")
}
