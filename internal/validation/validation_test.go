package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SensorGrid.mongoDB/internal/models"
)

func TestValidateStructOK(t *testing.T) {
	apiErr := ValidateStruct(models.CreateSensorInput{
		Type:     "temperature",
		Unit:     "°C",
		Model:    "DHT22",
		Location: "20.9163,-101.3734",
	})
	assert.Nil(t, apiErr)
}

func TestLatLngRule(t *testing.T) {
	tests := []struct {
		location string
		ok       bool
	}{
		{"20.9163,-101.3734", true},
		{"20.9163, -101.3734", true},
		{"-0.1,0.2", true},
		{"invalid", false},
		{"20,30", false},
		{"20.1", false},
		{"20.1,", false},
		{"1000.5,20.1", false},
		{"20.1,-30.2,40.3", false},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			in := models.CreateSensorInput{
				Type:     "temperature",
				Unit:     "°C",
				Model:    "DHT22",
				Location: tt.location,
			}
			apiErr := ValidateStruct(in)
			if tt.ok {
				assert.Nil(t, apiErr)
			} else {
				require.NotNil(t, apiErr)
				assert.Equal(t, models.ErrorCodeBadRequest, apiErr.Code)
				assert.Contains(t, apiErr.Message, "location")
			}
		})
	}
}

func TestRequiredFieldMessageUsesWireName(t *testing.T) {
	apiErr := ValidateStruct(models.CreateDeviceInput{SerialNumber: "SG-1"})
	require.NotNil(t, apiErr)
	assert.Contains(t, apiErr.Message, "ownerId")
}

func TestOneOfMessageListsAllowedValues(t *testing.T) {
	in := models.CreateDeviceInput{
		SerialNumber: "SG-1",
		OwnerID:      "ffffffffffffffffffffffff",
		ZoneID:       "ffffffffffffffffffffffff",
		Status:       "exploded",
	}
	apiErr := ValidateStruct(in)
	require.NotNil(t, apiErr)
	assert.Contains(t, apiErr.Message, "status")
	assert.Contains(t, apiErr.Message, "maintenance")
}

func TestPointersSkippedWhenNil(t *testing.T) {
	// A nil field in a partial update is not validated.
	assert.Nil(t, ValidateStruct(models.UpdateSensorInput{}))

	bad := "nowhere"
	apiErr := ValidateStruct(models.UpdateSensorInput{Location: &bad})
	require.NotNil(t, apiErr)
}
