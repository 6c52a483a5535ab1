package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SensorGrid.mongoDB/internal/controller"
	"SensorGrid.mongoDB/internal/repository"
	"SensorGrid.mongoDB/internal/service"
)

// newTestRouter wires the full HTTP stack over in-memory repositories.
func newTestRouter() http.Handler {
	users := repository.NewMemoryUserRepository()
	zones := repository.NewMemoryZoneRepository()
	devices := repository.NewMemoryDeviceRepository()
	sensors := repository.NewMemorySensorRepository()
	readings := repository.NewMemoryReadingRepository()

	return SetupRouter(Controllers{
		Users:    controller.NewUserController(service.NewUserService(users)),
		Zones:    controller.NewZoneController(service.NewZoneService(zones)),
		Devices:  controller.NewDeviceController(service.NewDeviceService(devices, users, zones)),
		Sensors:  controller.NewSensorController(service.NewSensorService(sensors, readings)),
		Readings: controller.NewReadingController(service.NewReadingService(readings, sensors, nil)),
	})
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()
	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestZoneLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/zones", map[string]interface{}{"name": "zone-a"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeMap(t, rec)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, true, created["isActive"])

	// Duplicate name conflicts.
	rec = doJSON(t, router, http.MethodPost, "/zones", map[string]interface{}{"name": "zone-a"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.NotEmpty(t, decodeMap(t, rec)["message"])

	// Malformed and missing ids.
	rec = doJSON(t, router, http.MethodGet, "/zones/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = doJSON(t, router, http.MethodGet, "/zones/ffffffffffffffffffffffff", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// A non-boolean isActive fails at decode time.
	rec = doJSON(t, router, http.MethodPatch, "/zones/"+id, map[string]interface{}{"isActive": "yes"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/zones/"+id, map[string]interface{}{"description": "updated"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "updated", decodeMap(t, rec)["description"])

	rec = doJSON(t, router, http.MethodDelete, "/zones/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeMap(t, rec)
	assert.Equal(t, id, result["id"])
	assert.NotEmpty(t, result["message"])

	rec = doJSON(t, router, http.MethodDelete, "/zones/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserDeleteAnswersNoContent(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/users", map[string]interface{}{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id, _ := decodeMap(t, rec)["id"].(string)
	require.NotEmpty(t, id)

	rec = doJSON(t, router, http.MethodDelete, "/users/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUserResponsesNeverCarryPassword(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/users", map[string]interface{}{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = doJSON(t, router, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestDeviceCreateStatusMapping(t *testing.T) {
	router := newTestRouter()

	// Missing references map to 400.
	rec := doJSON(t, router, http.MethodPost, "/devices", map[string]interface{}{
		"serialNumber": "SG-1",
		"ownerId":      "ffffffffffffffffffffffff",
		"zoneId":       "ffffffffffffffffffffffff",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/users", map[string]interface{}{
		"name":     "Owner",
		"email":    "owner@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	ownerID, _ := decodeMap(t, rec)["id"].(string)

	rec = doJSON(t, router, http.MethodPost, "/zones", map[string]interface{}{"name": "zone-a"})
	require.Equal(t, http.StatusCreated, rec.Code)
	zoneID, _ := decodeMap(t, rec)["id"].(string)

	device := map[string]interface{}{
		"serialNumber": "SG-1",
		"ownerId":      ownerID,
		"zoneId":       zoneID,
	}
	rec = doJSON(t, router, http.MethodPost, "/devices", device)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Same serial again: 409.
	rec = doJSON(t, router, http.MethodPost, "/devices", device)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSensorReadingGuardOverHTTP(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/sensors", map[string]interface{}{
		"type":     "temperature",
		"unit":     "°C",
		"model":    "DHT22",
		"location": "20.9163,-101.3734",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	sensorID, _ := decodeMap(t, rec)["id"].(string)

	// Bad location is rejected.
	rec = doJSON(t, router, http.MethodPost, "/sensors", map[string]interface{}{
		"type":     "temperature",
		"unit":     "°C",
		"model":    "DHT22",
		"location": "invalid",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/readings", map[string]interface{}{
		"sensorId": sensorID,
		"value":    21.4,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	readingID, _ := decodeMap(t, rec)["id"].(string)

	// Sensor delete is blocked while a reading references it.
	rec = doJSON(t, router, http.MethodDelete, "/sensors/"+sensorID, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/readings/"+readingID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/sensors/"+sensorID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/sensors/%s", sensorID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestErrorBodyShape(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/zones/not-an-id", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeMap(t, rec)
	assert.Len(t, body, 1)
	assert.NotEmpty(t, body["message"])
}
