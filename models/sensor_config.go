package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ModelField is one attribute definition belonging to a sensor configuration.
type ModelField struct {
	FieldName                  string `json:"fieldName"`
	EngUnit                    string `json:"engUnit"`
	HydrologicalIdentification string `json:"hydrologicalIdentification"`
	CollectionInstructions     string `json:"collectionInstructions"`
	Ratio                      string `json:"ratio"`
	DataFormat                 string `json:"dataFormat"`
	TriggerValue               string `json:"triggerValue"`
	UpperLimit                 string `json:"upperLimit"`
	LowerLimit                 string `json:"lowerLimit"`
	CorrectValue               string `json:"correctValue"`
	Ngateval                   string `json:"ngateval"`
}

// ModelFieldList is stored as a single JSON column on SensorConfig.
type ModelFieldList []ModelField

func (l ModelFieldList) Value() (driver.Value, error) {
	if l == nil {
		l = ModelFieldList{}
	}
	return json.Marshal(l)
}

func (l *ModelFieldList) Scan(value interface{}) error {
	if value == nil {
		*l = ModelFieldList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for ModelFieldList")
	}
}

// SensorConfig describes one sensor on a serial bus. The pair (port, sensor_id)
// is unique among stored records; the composite index is the authority that
// closes the check-then-write race between concurrent requests.
type SensorConfig struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Port        string         `json:"port" gorm:"not null;uniqueIndex:idx_port_sensor_id"` // serial bus: 485-1 / 485-2
	SensorID    int            `json:"sensor_id" gorm:"not null;uniqueIndex:idx_port_sensor_id"`
	SensorName  string         `json:"sensor_name" gorm:"not null"`
	ModelToken  string         `json:"model_token" gorm:"not null"`
	ModelName   string         `json:"model_name" gorm:"not null"`
	ModelFields ModelFieldList `json:"model_fields" gorm:"type:json;not null"`
	CreatorID   uint           `json:"creator_id" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdaterID   uint           `json:"updater_id" gorm:"not null"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
