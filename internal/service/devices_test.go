package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SensorGrid.mongoDB/internal/models"
	"SensorGrid.mongoDB/internal/repository"
)

// deviceFixture wires a device service with one existing user and zone.
type deviceFixture struct {
	devices *DeviceService
	ownerID string
	zoneID  string
}

func newDeviceFixture(t *testing.T) deviceFixture {
	t.Helper()
	ctx := context.Background()

	users := repository.NewMemoryUserRepository()
	zones := repository.NewMemoryZoneRepository()
	devices := repository.NewMemoryDeviceRepository()

	owner, err := NewUserService(users).Create(ctx, models.CreateUserInput{
		Name:     "Owner",
		Email:    "owner@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	zone, err := NewZoneService(zones).Create(ctx, models.CreateZoneInput{Name: "zone-a"})
	require.NoError(t, err)

	return deviceFixture{
		devices: NewDeviceService(devices, users, zones),
		ownerID: owner.ID.Hex(),
		zoneID:  zone.ID.Hex(),
	}
}

func (f deviceFixture) validInput() models.CreateDeviceInput {
	return models.CreateDeviceInput{
		SerialNumber: "SG-0001",
		Model:        "ESP32-WROOM",
		OwnerID:      f.ownerID,
		ZoneID:       f.zoneID,
	}
}

func TestDeviceCreateDefaults(t *testing.T) {
	f := newDeviceFixture(t)

	device, err := f.devices.Create(context.Background(), f.validInput())
	require.NoError(t, err)
	assert.Equal(t, models.DeviceStatusActive, device.Status)
	assert.False(t, device.InstalledAt.IsZero())
	assert.NotNil(t, device.Sensors)
	assert.Empty(t, device.Sensors)
}

func TestDeviceCreateMissingReferences(t *testing.T) {
	f := newDeviceFixture(t)
	ctx := context.Background()

	in := f.validInput()
	in.OwnerID = "ffffffffffffffffffffffff"
	_, err := f.devices.Create(ctx, in)
	requireAPIErrorCode(t, err, models.ErrorCodeBadRequest)

	in = f.validInput()
	in.ZoneID = "ffffffffffffffffffffffff"
	_, err = f.devices.Create(ctx, in)
	requireAPIErrorCode(t, err, models.ErrorCodeBadRequest)

	// A rejected create must not write anything.
	devices, err := f.devices.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestDeviceCreateInvalidStatus(t *testing.T) {
	f := newDeviceFixture(t)

	in := f.validInput()
	in.Status = "broken"
	_, err := f.devices.Create(context.Background(), in)
	requireAPIErrorCode(t, err, models.ErrorCodeBadRequest)
}

func TestDeviceCreateDuplicateSerialNumber(t *testing.T) {
	f := newDeviceFixture(t)
	ctx := context.Background()

	_, err := f.devices.Create(ctx, f.validInput())
	require.NoError(t, err)

	_, err = f.devices.Create(ctx, f.validInput())
	requireAPIErrorCode(t, err, models.ErrorCodeConflict)
}

func TestDeviceUpdateReferences(t *testing.T) {
	f := newDeviceFixture(t)
	ctx := context.Background()

	device, err := f.devices.Create(ctx, f.validInput())
	require.NoError(t, err)

	// Changing a reference to a missing target is rejected.
	_, err = f.devices.Update(ctx, device.ID.Hex(), models.UpdateDeviceInput{OwnerID: strPtr("ffffffffffffffffffffffff")})
	requireAPIErrorCode(t, err, models.ErrorCodeBadRequest)

	_, err = f.devices.Update(ctx, device.ID.Hex(), models.UpdateDeviceInput{ZoneID: strPtr("not-hex")})
	requireAPIErrorCode(t, err, models.ErrorCodeBadRequest)

	// Changing to a resolving reference and a valid status succeeds.
	updated, err := f.devices.Update(ctx, device.ID.Hex(), models.UpdateDeviceInput{
		ZoneID: strPtr(f.zoneID),
		Status: strPtr(models.DeviceStatusMaintenance),
	})
	require.NoError(t, err)
	assert.Equal(t, models.DeviceStatusMaintenance, updated.Status)
	assert.Equal(t, "SG-0001", updated.SerialNumber)
}

func TestDeviceUpdateDuplicateSerialNumber(t *testing.T) {
	f := newDeviceFixture(t)
	ctx := context.Background()

	_, err := f.devices.Create(ctx, f.validInput())
	require.NoError(t, err)

	in := f.validInput()
	in.SerialNumber = "SG-0002"
	second, err := f.devices.Create(ctx, in)
	require.NoError(t, err)

	// Serial updates have no pre-check; the duplicate-key guard in the
	// store must still come back as a Conflict.
	_, err = f.devices.Update(ctx, second.ID.Hex(), models.UpdateDeviceInput{SerialNumber: strPtr("SG-0001")})
	requireAPIErrorCode(t, err, models.ErrorCodeConflict)
}

func TestDeviceUpdateMissing(t *testing.T) {
	f := newDeviceFixture(t)

	_, err := f.devices.Update(context.Background(), "ffffffffffffffffffffffff", models.UpdateDeviceInput{Model: strPtr("x")})
	requireAPIErrorCode(t, err, models.ErrorCodeNotFound)
}

func TestDeviceDelete(t *testing.T) {
	f := newDeviceFixture(t)
	ctx := context.Background()

	device, err := f.devices.Create(ctx, f.validInput())
	require.NoError(t, err)

	result, err := f.devices.Delete(ctx, device.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, device.ID.Hex(), result.ID)

	_, err = f.devices.Delete(ctx, device.ID.Hex())
	requireAPIErrorCode(t, err, models.ErrorCodeNotFound)
}
