package controller

import (
	"net/http"

	"SensorGrid.mongoDB/internal/models"
	"SensorGrid.mongoDB/internal/service"
	"SensorGrid.mongoDB/internal/utils"
)

// UserController handles HTTP requests for the users collection. User
// deletes answer 204 with no body; every other entity returns a
// confirmation payload.
type UserController struct {
	service *service.UserService
}

func NewUserController(service *service.UserService) *UserController {
	return &UserController{service: service}
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.service.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}

func (c *UserController) GetByID(w http.ResponseWriter, r *http.Request) {
	user, err := c.service.GetByID(r.Context(), pathID(r))
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateUserInput
	if apiErr := decodeBody(r, &in); apiErr != nil {
		utils.RespondWithError(w, apiErr)
		return
	}
	user, err := c.service.Create(r.Context(), in)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, user)
}

func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateUserInput
	if apiErr := decodeBody(r, &in); apiErr != nil {
		utils.RespondWithError(w, apiErr)
		return
	}
	user, err := c.service.Update(r.Context(), pathID(r), in)
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(r.Context(), pathID(r)); err != nil {
		utils.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}
