// Package recorder mirrors created readings into InfluxDB so dashboards
// can chart them. Mirroring is best-effort telemetry: failures are logged
// and never surfaced to the API caller.
package recorder

import (
	"context"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"

	"SensorGrid.mongoDB/internal/logging"
	"SensorGrid.mongoDB/internal/models"
)

// InfluxRecorder writes one point per reading: measurement "readings",
// tagged with the sensor id, field "value".
type InfluxRecorder struct {
	client influxdb2.Client
	org    string
	bucket string
}

// NewInfluxRecorder creates a recorder against the given InfluxDB
// instance. The bucket must already exist.
func NewInfluxRecorder(url, token, org, bucket string) *InfluxRecorder {
	return &InfluxRecorder{
		client: influxdb2.NewClient(url, token),
		org:    org,
		bucket: bucket,
	}
}

func (r *InfluxRecorder) Record(ctx context.Context, reading models.Reading) {
	writeAPI := r.client.WriteAPIBlocking(r.org, r.bucket)

	point := influxdb2.NewPoint(
		"readings",
		map[string]string{"sensor_id": reading.SensorID.Hex()},
		map[string]interface{}{"value": reading.Value},
		reading.Time,
	)

	if err := writeAPI.WritePoint(ctx, point); err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("reading_id", reading.ID.Hex()).
			Msg("failed to mirror reading to influxdb")
	}
}

// Close releases the underlying client.
func (r *InfluxRecorder) Close() {
	r.client.Close()
}
