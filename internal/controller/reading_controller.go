package controller

import (
	"net/http"

	"SensorGrid.mongoDB/internal/models"
	"SensorGrid.mongoDB/internal/service"
	"SensorGrid.mongoDB/internal/utils"
)

// ReadingController handles HTTP requests for the readings collection.
type ReadingController struct {
	service *service.ReadingService
}

func NewReadingController(service *service.ReadingService) *ReadingController {
	return &ReadingController{service: service}
}

func (c *ReadingController) List(w http.ResponseWriter, r *http.Request) {
	readings, err := c.service.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, readings)
}

func (c *ReadingController) GetByID(w http.ResponseWriter, r *http.Request) {
	reading, err := c.service.GetByID(r.Context(), pathID(r))
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reading)
}

func (c *ReadingController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateReadingInput
	if apiErr := decodeBody(r, &in); apiErr != nil {
		utils.RespondWithError(w, apiErr)
		return
	}
	reading, err := c.service.Create(r.Context(), in)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, reading)
}

func (c *ReadingController) Update(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateReadingInput
	if apiErr := decodeBody(r, &in); apiErr != nil {
		utils.RespondWithError(w, apiErr)
		return
	}
	reading, err := c.service.Update(r.Context(), pathID(r), in)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reading)
}

func (c *ReadingController) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.Delete(r.Context(), pathID(r))
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
