package controller

import (
	"net/http"

	"SensorGrid.mongoDB/internal/models"
	"SensorGrid.mongoDB/internal/service"
	"SensorGrid.mongoDB/internal/utils"
)

// ZoneController handles HTTP requests for the zones collection.
type ZoneController struct {
	service *service.ZoneService
}

func NewZoneController(service *service.ZoneService) *ZoneController {
	return &ZoneController{service: service}
}

func (c *ZoneController) List(w http.ResponseWriter, r *http.Request) {
	zones, err := c.service.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, zones)
}

func (c *ZoneController) GetByID(w http.ResponseWriter, r *http.Request) {
	zone, err := c.service.GetByID(r.Context(), pathID(r))
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, zone)
}

func (c *ZoneController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateZoneInput
	if apiErr := decodeBody(r, &in); apiErr != nil {
		utils.RespondWithError(w, apiErr)
		return
	}
	zone, err := c.service.Create(r.Context(), in)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, zone)
}

func (c *ZoneController) Update(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateZoneInput
	if apiErr := decodeBody(r, &in); apiErr != nil {
		utils.RespondWithError(w, apiErr)
		return
	}
	zone, err := c.service.Update(r.Context(), pathID(r), in)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, zone)
}

func (c *ZoneController) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.Delete(r.Context(), pathID(r))
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
