package controller

import (
	"net/http"

	"SensorGrid.mongoDB/internal/models"
	"SensorGrid.mongoDB/internal/service"
	"SensorGrid.mongoDB/internal/utils"
)

// DeviceController handles HTTP requests for the devices collection.
type DeviceController struct {
	service *service.DeviceService
}

func NewDeviceController(service *service.DeviceService) *DeviceController {
	return &DeviceController{service: service}
}

func (c *DeviceController) List(w http.ResponseWriter, r *http.Request) {
	devices, err := c.service.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, devices)
}

func (c *DeviceController) GetByID(w http.ResponseWriter, r *http.Request) {
	device, err := c.service.GetByID(r.Context(), pathID(r))
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, device)
}

func (c *DeviceController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateDeviceInput
	if apiErr := decodeBody(r, &in); apiErr != nil {
		utils.RespondWithError(w, apiErr)
		return
	}
	device, err := c.service.Create(r.Context(), in)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, device)
}

func (c *DeviceController) Update(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateDeviceInput
	if apiErr := decodeBody(r, &in); apiErr != nil {
		utils.RespondWithError(w, apiErr)
		return
	}
	device, err := c.service.Update(r.Context(), pathID(r), in)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, device)
}

func (c *DeviceController) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.Delete(r.Context(), pathID(r))
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
