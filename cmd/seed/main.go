// Command seed populates a running API instance with a small demo
// monitoring graph: one admin user, two zones, a device per zone, a pair
// of sensors per device and a burst of readings over the past hour.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"SensorGrid.mongoDB/internal/logging"
)

func main() {
	if err := logging.Init(logging.Config{Level: "info", Format: "console"}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	client := resty.New().SetBaseURL(baseURL)

	userID, err := post(client, "/users", map[string]interface{}{
		"name":     "Ana Torres",
		"email":    "ana.torres@sensorgrid.test",
		"password": "changeme123",
		"role":     "admin",
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("seeding user failed")
	}
	logging.Info().Str("id", userID).Msg("created user")

	zones := []map[string]interface{}{
		{"name": "greenhouse-north", "description": "North greenhouse, rows 1-12"},
		{"name": "boiler-room", "description": "Basement boiler room", "isActive": true},
	}
	sensorSpecs := []map[string]interface{}{
		{"type": "temperature", "unit": "°C", "model": "DHT22"},
		{"type": "humidity", "unit": "%", "model": "DHT22"},
		{"type": "co2", "unit": "ppm", "model": "MH-Z19B"},
		{"type": "noise", "unit": "ppm", "model": "SEN-12642"},
	}

	for i, zone := range zones {
		zoneID, err := post(client, "/zones", zone)
		if err != nil {
			logging.Fatal().Err(err).Msg("seeding zone failed")
		}
		logging.Info().Str("id", zoneID).Msg("created zone")

		deviceID, err := post(client, "/devices", map[string]interface{}{
			"serialNumber": fmt.Sprintf("SG-%04d-%04d", i+1, rand.Intn(10000)),
			"model":        "ESP32-WROOM",
			"ownerId":      userID,
			"zoneId":       zoneID,
		})
		if err != nil {
			logging.Fatal().Err(err).Msg("seeding device failed")
		}
		logging.Info().Str("id", deviceID).Msg("created device")

		for j := 0; j < 2; j++ {
			spec := sensorSpecs[(2*i+j)%len(sensorSpecs)]
			sensorID, err := post(client, "/sensors", map[string]interface{}{
				"type":     spec["type"],
				"unit":     spec["unit"],
				"model":    spec["model"],
				"location": fmt.Sprintf("%.4f,%.4f", 20.5+rand.Float64(), -101.2-rand.Float64()),
				"deviceId": deviceID,
			})
			if err != nil {
				logging.Fatal().Err(err).Msg("seeding sensor failed")
			}
			logging.Info().Str("id", sensorID).Msg("created sensor")

			for k := 0; k < 12; k++ {
				_, err := post(client, "/readings", map[string]interface{}{
					"sensorId": sensorID,
					"time":     time.Now().Add(-time.Duration(k*5) * time.Minute).Format(time.RFC3339),
					"value":    18 + rand.Float64()*10,
				})
				if err != nil {
					logging.Fatal().Err(err).Msg("seeding reading failed")
				}
			}
			logging.Info().Str("sensor_id", sensorID).Msg("created readings")
		}
	}

	logging.Info().Msg("seed complete")
}

// post creates one entity and returns the generated id.
func post(client *resty.Client, path string, body interface{}) (string, error) {
	var out map[string]interface{}
	resp, err := client.R().SetBody(body).SetResult(&out).Post(path)
	if err != nil {
		return "", fmt.Errorf("POST %s: %w", path, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("POST %s: %s: %s", path, resp.Status(), resp.Body())
	}
	id, _ := out["id"].(string)
	if id == "" {
		return "", fmt.Errorf("POST %s: response carries no id", path)
	}
	return id, nil
}
