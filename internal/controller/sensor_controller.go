package controller

import (
	"net/http"

	"SensorGrid.mongoDB/internal/models"
	"SensorGrid.mongoDB/internal/service"
	"SensorGrid.mongoDB/internal/utils"
)

// SensorController handles HTTP requests for the sensors collection.
type SensorController struct {
	service *service.SensorService
}

func NewSensorController(service *service.SensorService) *SensorController {
	return &SensorController{service: service}
}

func (c *SensorController) List(w http.ResponseWriter, r *http.Request) {
	sensors, err := c.service.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sensors)
}

func (c *SensorController) GetByID(w http.ResponseWriter, r *http.Request) {
	sensor, err := c.service.GetByID(r.Context(), pathID(r))
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sensor)
}

func (c *SensorController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateSensorInput
	if apiErr := decodeBody(r, &in); apiErr != nil {
		utils.RespondWithError(w, apiErr)
		return
	}
	sensor, err := c.service.Create(r.Context(), in)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, sensor)
}

func (c *SensorController) Update(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateSensorInput
	if apiErr := decodeBody(r, &in); apiErr != nil {
		utils.RespondWithError(w, apiErr)
		return
	}
	sensor, err := c.service.Update(r.Context(), pathID(r), in)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sensor)
}

func (c *SensorController) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.Delete(r.Context(), pathID(r))
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
