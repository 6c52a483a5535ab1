package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"SensorGrid.mongoDB/internal/models"
)

// requireAPIErrorCode asserts that err is an APIError with the given code.
func requireAPIErrorCode(t *testing.T, err error, code models.ErrorCode) {
	t.Helper()
	var apiErr *models.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, code, apiErr.Code)
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }
