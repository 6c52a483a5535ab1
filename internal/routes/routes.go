package routes

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"SensorGrid.mongoDB/internal/controller"
	"SensorGrid.mongoDB/internal/middleware"
)

// Controllers groups the per-entity controllers the router exposes.
type Controllers struct {
	Users    *controller.UserController
	Zones    *controller.ZoneController
	Devices  *controller.DeviceController
	Sensors  *controller.SensorController
	Readings *controller.ReadingController
}

// entityRoutes is the handler set every entity controller provides.
type entityRoutes interface {
	List(http.ResponseWriter, *http.Request)
	GetByID(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

// SetupRouter defines all API routes.
func SetupRouter(c Controllers) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestID, middleware.AccessLog, middleware.Recover)

	registerEntityRoutes(router, "/devices", c.Devices)
	registerEntityRoutes(router, "/readings", c.Readings)
	registerEntityRoutes(router, "/sensors", c.Sensors)
	registerEntityRoutes(router, "/users", c.Users)
	registerEntityRoutes(router, "/zones", c.Zones)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}).Methods(http.MethodGet)

	return router
}

func registerEntityRoutes(router *mux.Router, prefix string, c entityRoutes) {
	router.HandleFunc(prefix, c.List).Methods(http.MethodGet)
	router.HandleFunc(prefix, c.Create).Methods(http.MethodPost)
	router.HandleFunc(prefix+"/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc(prefix+"/{id}", c.Update).Methods(http.MethodPatch)
	router.HandleFunc(prefix+"/{id}", c.Delete).Methods(http.MethodDelete)
}
