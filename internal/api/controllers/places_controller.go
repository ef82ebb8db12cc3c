package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type PlacesController struct {
	placesService services.PlacesServiceInterface
}

func NewPlacesController(placesService services.PlacesServiceInterface) *PlacesController {
	return &PlacesController{
		placesService: placesService,
	}
}

// SearchPlacesHandler proxies place autocomplete. type=destination narrows
// results to cities, countries and states.
func (p *PlacesController) SearchPlacesHandler(c *gin.Context) {
	query := c.Query("query")
	if len(query) < 2 {
		utils.HandleServiceError(c, utils.ErrQueryTooShort)
		return
	}

	predictions, err := p.placesService.AutocompletePlaces(
		c.Request.Context(),
		query,
		c.Query("location"),
		c.Query("type"),
	)
	if err != nil {
		utils.HandleServiceError(c, fmt.Errorf("%w: %v", utils.ErrPlacesServiceUnavailable, err))
		return
	}

	utils.RespondSuccess(c, gin.H{"predictions": predictions}, "Places fetched successfully")
}
