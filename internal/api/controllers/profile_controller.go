package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodiesbnb/internal/models/db_models"
	"foodiesbnb/internal/models/request_models"
	"foodiesbnb/internal/services"
	"foodiesbnb/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetPublic godoc
// @Summary Public profile card for a restaurant or creator
// @Tags Profiles
// @Produce json
// @Param type path string true "Profile type" Enums(restaurant, creator)
// @Param id path string true "Profile ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /profile/{type}/{id} [get]
func (p *ProfileController) GetPublic(c *gin.Context) {
	id := c.Param("id")

	switch c.Param("type") {
	case string(db_models.UserTypeRestaurant):
		card, err := p.profileService.GetRestaurantCard(c.Request.Context(), id)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, card, "")
	case string(db_models.UserTypeCreator):
		card, err := p.profileService.GetCreatorCard(c.Request.Context(), id)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, card, "")
	default:
		utils.RespondError(c, http.StatusBadRequest, "Unknown profile type")
	}
}

// GetMine godoc
// @Summary Profile of the signed-in user
// @Tags Profiles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profiles/me [get]
func (p *ProfileController) GetMine(c *gin.Context) {
	profile, err := p.profileService.Resolve(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, services.ProfileToResponse(profile), "")
}

// UpdateMine godoc
// @Summary Update the signed-in user's profile
// @Description The role is immutable, only descriptive fields change
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profiles/me [put]
func (p *ProfileController) UpdateMine(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := p.profileService.UpdateProfile(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, services.ProfileToResponse(profile), "Perfil actualizado")
}
