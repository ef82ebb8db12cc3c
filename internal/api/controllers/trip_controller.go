package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// PlanTripHandler generates an itinerary for the posted trip preferences and
// enriches it with place metadata.
func (t *TripController) PlanTripHandler(c *gin.Context) {
	var req request_models.TripPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	doc, err := t.tripService.PlanTrip(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, doc, "Trip plan created successfully")
}

// GetPredefinedTripHandler serves a template itinerary shifted to the
// requested start date (defaults to today).
func (t *TripController) GetPredefinedTripHandler(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	doc, err := t.tripService.GetPredefinedTrip(c.Request.Context(), tripID, c.Query("startDate"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, doc, "Trip fetched successfully")
}
