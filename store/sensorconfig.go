package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Lumberjack100/app-remote-config-site-backend/models"
)

var (
	// ErrDuplicateSensorID means another record already uses the (port, sensor_id) pair.
	ErrDuplicateSensorID = errors.New("sensor id already exists on port")
	// ErrNotFound means the targeted record does not exist.
	ErrNotFound = errors.New("sensor config not found")
)

// SensorConfigStore persists sensor configurations.
type SensorConfigStore struct {
	db *gorm.DB
}

func NewSensorConfigStore(db *gorm.DB) *SensorConfigStore {
	return &SensorConfigStore{db: db}
}

// List returns configurations in storage order. An empty port matches all
// ports; a non-empty sensorName matches as a case-insensitive substring.
func (s *SensorConfigStore) List(port, sensorName string) ([]models.SensorConfig, error) {
	query := s.db.Model(&models.SensorConfig{})
	if port != "" {
		query = query.Where("port = ?", port)
	}
	if sensorName != "" {
		query = query.Where("LOWER(sensor_name) LIKE LOWER(?)", "%"+sensorName+"%")
	}
	var configs []models.SensorConfig
	if err := query.Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

// ByID returns the configuration with the given id, or nil when absent.
func (s *SensorConfigStore) ByID(id uint) (*models.SensorConfig, error) {
	var cfg models.SensorConfig
	if err := s.db.First(&cfg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// exists reports whether a record other than excludeID uses the pair.
// excludeID 0 excludes nothing.
func (s *SensorConfigStore) exists(port string, sensorID int, excludeID uint) (bool, error) {
	query := s.db.Model(&models.SensorConfig{}).Where("port = ? AND sensor_id = ?", port, sensorID)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a configuration, stamping the creator as updater too.
// The pre-check gives the friendly duplicate error; the unique index catches
// whatever races past it.
func (s *SensorConfigStore) Create(cfg *models.SensorConfig, creatorID uint) error {
	dup, err := s.exists(cfg.Port, cfg.SensorID, 0)
	if err != nil {
		return err
	}
	if dup {
		return ErrDuplicateSensorID
	}
	cfg.CreatorID = creatorID
	cfg.UpdaterID = creatorID
	if err := s.db.Create(cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSensorID
		}
		return err
	}
	return nil
}

// Update replaces every mutable field of the record with the given id.
// The uniqueness check excludes the record itself, so keeping the same
// (port, sensor_id) pair while changing other fields is allowed.
func (s *SensorConfigStore) Update(id uint, cfg *models.SensorConfig, updaterID uint) error {
	existing, err := s.ByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	dup, err := s.exists(cfg.Port, cfg.SensorID, id)
	if err != nil {
		return err
	}
	if dup {
		return ErrDuplicateSensorID
	}
	existing.Port = cfg.Port
	existing.SensorID = cfg.SensorID
	existing.SensorName = cfg.SensorName
	existing.ModelToken = cfg.ModelToken
	existing.ModelName = cfg.ModelName
	existing.ModelFields = cfg.ModelFields
	existing.UpdaterID = updaterID
	if err := s.db.Save(existing).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSensorID
		}
		return err
	}
	return nil
}

// BatchDelete removes every record whose id appears in ids. Ids with no
// matching record are ignored, so the operation is idempotent.
func (s *SensorConfigStore) BatchDelete(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.Delete(&models.SensorConfig{}, ids).Error
}
