package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"SensorGrid.mongoDB/internal/models"
)

// In-memory implementations of the entity repositories, used by tests and
// the local development wiring. They honor the same contract as the Mongo
// implementations: Find methods return (nil, nil) on a miss, user reads
// never expose the password hash, and the unique keys guarded by Mongo
// indexes (users.email, zones.name, devices.serialNumber) return
// ErrDuplicateKey here.

// MemoryUserRepository implements UserRepository over a map.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[primitive.ObjectID]models.User)}
}

func (r *MemoryUserRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := []models.User{}
	for _, u := range r.users {
		u.Password = ""
		users = append(users, u)
	}
	return users, nil
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	u.Password = ""
	return &u, nil
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			u.Password = ""
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) Insert(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("users.email %q: %w", user.Email, ErrDuplicateKey)
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	for k, v := range set {
		switch k {
		case "name":
			u.Name = v.(string)
		case "email":
			email := v.(string)
			for otherID, other := range r.users {
				if otherID != id && other.Email == email {
					return nil, fmt.Errorf("users.email %q: %w", email, ErrDuplicateKey)
				}
			}
			u.Email = email
		case "password":
			u.Password = v.(string)
		case "role":
			u.Role = v.(string)
		}
	}
	r.users[id] = u
	u.Password = ""
	return &u, nil
}

func (r *MemoryUserRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

// MemoryZoneRepository implements ZoneRepository over a map.
type MemoryZoneRepository struct {
	mu    sync.RWMutex
	zones map[primitive.ObjectID]models.Zone
}

func NewMemoryZoneRepository() *MemoryZoneRepository {
	return &MemoryZoneRepository{zones: make(map[primitive.ObjectID]models.Zone)}
}

func (r *MemoryZoneRepository) List(ctx context.Context) ([]models.Zone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	zones := []models.Zone{}
	for _, z := range r.zones {
		zones = append(zones, z)
	}
	return zones, nil
}

func (r *MemoryZoneRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Zone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	z, ok := r.zones[id]
	if !ok {
		return nil, nil
	}
	return &z, nil
}

func (r *MemoryZoneRepository) FindByName(ctx context.Context, name string) (*models.Zone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, z := range r.zones {
		if z.Name == name {
			return &z, nil
		}
	}
	return nil, nil
}

func (r *MemoryZoneRepository) Insert(ctx context.Context, zone *models.Zone) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, z := range r.zones {
		if z.Name == zone.Name {
			return fmt.Errorf("zones.name %q: %w", zone.Name, ErrDuplicateKey)
		}
	}
	if zone.ID.IsZero() {
		zone.ID = primitive.NewObjectID()
	}
	r.zones[zone.ID] = *zone
	return nil
}

func (r *MemoryZoneRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Zone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	z, ok := r.zones[id]
	if !ok {
		return nil, nil
	}
	for k, v := range set {
		switch k {
		case "name":
			name := v.(string)
			for otherID, other := range r.zones {
				if otherID != id && other.Name == name {
					return nil, fmt.Errorf("zones.name %q: %w", name, ErrDuplicateKey)
				}
			}
			z.Name = name
		case "description":
			z.Description = v.(string)
		case "isActive":
			z.IsActive = v.(bool)
		}
	}
	z.UpdatedAt = time.Now().UTC()
	r.zones[id] = z
	return &z, nil
}

func (r *MemoryZoneRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.zones[id]; !ok {
		return false, nil
	}
	delete(r.zones, id)
	return true, nil
}

// MemoryDeviceRepository implements DeviceRepository over a map.
type MemoryDeviceRepository struct {
	mu      sync.RWMutex
	devices map[primitive.ObjectID]models.Device
}

func NewMemoryDeviceRepository() *MemoryDeviceRepository {
	return &MemoryDeviceRepository{devices: make(map[primitive.ObjectID]models.Device)}
}

func (r *MemoryDeviceRepository) List(ctx context.Context) ([]models.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	devices := []models.Device{}
	for _, d := range r.devices {
		devices = append(devices, d)
	}
	return devices, nil
}

func (r *MemoryDeviceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.devices[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *MemoryDeviceRepository) FindBySerialNumber(ctx context.Context, serialNumber string) (*models.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.devices {
		if d.SerialNumber == serialNumber {
			return &d, nil
		}
	}
	return nil, nil
}

func (r *MemoryDeviceRepository) Insert(ctx context.Context, device *models.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.devices {
		if d.SerialNumber == device.SerialNumber {
			return fmt.Errorf("devices.serialNumber %q: %w", device.SerialNumber, ErrDuplicateKey)
		}
	}
	if device.ID.IsZero() {
		device.ID = primitive.NewObjectID()
	}
	r.devices[device.ID] = *device
	return nil
}

func (r *MemoryDeviceRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.devices[id]
	if !ok {
		return nil, nil
	}
	for k, v := range set {
		switch k {
		case "serialNumber":
			serial := v.(string)
			for otherID, other := range r.devices {
				if otherID != id && other.SerialNumber == serial {
					return nil, fmt.Errorf("devices.serialNumber %q: %w", serial, ErrDuplicateKey)
				}
			}
			d.SerialNumber = serial
		case "model":
			d.Model = v.(string)
		case "ownerId":
			d.OwnerID = v.(primitive.ObjectID)
		case "zoneId":
			d.ZoneID = v.(primitive.ObjectID)
		case "status":
			d.Status = v.(string)
		case "sensors":
			d.Sensors = v.([]primitive.ObjectID)
		}
	}
	r.devices[id] = d
	return &d, nil
}

func (r *MemoryDeviceRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.devices[id]; !ok {
		return false, nil
	}
	delete(r.devices, id)
	return true, nil
}

// MemorySensorRepository implements SensorRepository over a map.
type MemorySensorRepository struct {
	mu      sync.RWMutex
	sensors map[primitive.ObjectID]models.Sensor
}

func NewMemorySensorRepository() *MemorySensorRepository {
	return &MemorySensorRepository{sensors: make(map[primitive.ObjectID]models.Sensor)}
}

func (r *MemorySensorRepository) List(ctx context.Context) ([]models.Sensor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sensors := []models.Sensor{}
	for _, s := range r.sensors {
		sensors = append(sensors, s)
	}
	return sensors, nil
}

func (r *MemorySensorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Sensor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sensors[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *MemorySensorRepository) Insert(ctx context.Context, sensor *models.Sensor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sensor.ID.IsZero() {
		sensor.ID = primitive.NewObjectID()
	}
	r.sensors[sensor.ID] = *sensor
	return nil
}

func (r *MemorySensorRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Sensor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sensors[id]
	if !ok {
		return nil, nil
	}
	for k, v := range set {
		switch k {
		case "type":
			s.Type = v.(string)
		case "unit":
			s.Unit = v.(string)
		case "model":
			s.Model = v.(string)
		case "location":
			s.Location = v.(string)
		case "isActive":
			s.IsActive = v.(bool)
		case "deviceId":
			deviceID := v.(primitive.ObjectID)
			s.DeviceID = &deviceID
		}
	}
	s.UpdatedAt = time.Now().UTC()
	r.sensors[id] = s
	return &s, nil
}

func (r *MemorySensorRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sensors[id]; !ok {
		return false, nil
	}
	delete(r.sensors, id)
	return true, nil
}

// MemoryReadingRepository implements ReadingRepository over a map.
type MemoryReadingRepository struct {
	mu       sync.RWMutex
	readings map[primitive.ObjectID]models.Reading
}

func NewMemoryReadingRepository() *MemoryReadingRepository {
	return &MemoryReadingRepository{readings: make(map[primitive.ObjectID]models.Reading)}
}

func (r *MemoryReadingRepository) List(ctx context.Context) ([]models.Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	readings := []models.Reading{}
	for _, rd := range r.readings {
		readings = append(readings, rd)
	}
	return readings, nil
}

func (r *MemoryReadingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rd, ok := r.readings[id]
	if !ok {
		return nil, nil
	}
	return &rd, nil
}

func (r *MemoryReadingRepository) CountBySensor(ctx context.Context, sensorID primitive.ObjectID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, rd := range r.readings {
		if rd.SensorID == sensorID {
			count++
		}
	}
	return count, nil
}

func (r *MemoryReadingRepository) Insert(ctx context.Context, reading *models.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if reading.ID.IsZero() {
		reading.ID = primitive.NewObjectID()
	}
	r.readings[reading.ID] = *reading
	return nil
}

func (r *MemoryReadingRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Reading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rd, ok := r.readings[id]
	if !ok {
		return nil, nil
	}
	for k, v := range set {
		switch k {
		case "sensorId":
			rd.SensorID = v.(primitive.ObjectID)
		case "time":
			rd.Time = v.(time.Time)
		case "value":
			rd.Value = v.(float64)
		}
	}
	r.readings[id] = rd
	return &rd, nil
}

func (r *MemoryReadingRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.readings[id]; !ok {
		return false, nil
	}
	delete(r.readings, id)
	return true, nil
}
