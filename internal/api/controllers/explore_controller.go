package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodiesbnb/internal/models/request_models"
	"foodiesbnb/internal/services"
	"foodiesbnb/pkg/utils"
)

type ExploreController struct {
	exploreService services.ExploreServiceInterface
}

func NewExploreController(exploreService services.ExploreServiceInterface) *ExploreController {
	return &ExploreController{exploreService: exploreService}
}

// Collaborations godoc
// @Summary List open collaborations
// @Description Pending offers, filterable by title substring and province
// @Tags Explore
// @Produce json
// @Param search query string false "Title substring"
// @Param province query string false "Province of the owning restaurant"
// @Success 200 {object} utils.APIResponse
// @Router /explore/collaborations [get]
func (e *ExploreController) Collaborations(c *gin.Context) {
	var q request_models.ExploreQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	collaborations, err := e.exploreService.Collaborations(c.Request.Context(), q.Search, q.Province)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, collaborations, "")
}

// Restaurants godoc
// @Summary List restaurants
// @Tags Explore
// @Produce json
// @Param search query string false "Business name substring"
// @Param province query string false "Province"
// @Success 200 {object} utils.APIResponse
// @Router /explore/restaurants [get]
func (e *ExploreController) Restaurants(c *gin.Context) {
	var q request_models.ExploreQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	restaurants, err := e.exploreService.Restaurants(c.Request.Context(), q.Search, q.Province)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, restaurants, "")
}

// Creators godoc
// @Summary List creators
// @Tags Explore
// @Produce json
// @Param search query string false "Creator name substring"
// @Param province query string false "Province"
// @Success 200 {object} utils.APIResponse
// @Router /explore/creators [get]
func (e *ExploreController) Creators(c *gin.Context) {
	var q request_models.ExploreQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	creators, err := e.exploreService.Creators(c.Request.Context(), q.Search, q.Province)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, creators, "")
}
