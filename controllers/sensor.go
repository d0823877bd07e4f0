package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lumberjack100/app-remote-config-site-backend/models"
	"github.com/Lumberjack100/app-remote-config-site-backend/store"
)

// SensorConfigController handles the MR702 sensor configuration endpoints.
type SensorConfigController struct {
	Configs *store.SensorConfigStore
}

func NewSensorConfigController(configs *store.SensorConfigStore) *SensorConfigController {
	return &SensorConfigController{Configs: configs}
}

type sensorConfigQuery struct {
	Port       string `json:"port"`
	SensorName string `json:"sensorName"`
}

type sensorConfigItem struct {
	Port           string                `json:"port" binding:"required"`
	SensorID       int                   `json:"sensorID"`
	SensorName     string                `json:"sensorName" binding:"required"`
	ModelToken     string                `json:"modelToken" binding:"required"`
	ModelName      string                `json:"modelName" binding:"required"`
	ModelFieldList models.ModelFieldList `json:"modelFieldList"`
}

type sensorConfigUpdate struct {
	ID uint `json:"id" binding:"required"`
	sensorConfigItem
}

type sensorConfigView struct {
	ID uint `json:"id"`
	sensorConfigItem
	CreateUserID uint      `json:"createUserID"`
	CreateTime   time.Time `json:"createTime"`
	UpdateUserID uint      `json:"updateUserID"`
	UpdateTime   time.Time `json:"updateTime"`
}

type deleteRequest struct {
	IDs []uint `json:"ids"`
}

func toView(cfg models.SensorConfig) sensorConfigView {
	return sensorConfigView{
		ID: cfg.ID,
		sensorConfigItem: sensorConfigItem{
			Port:           cfg.Port,
			SensorID:       cfg.SensorID,
			SensorName:     cfg.SensorName,
			ModelToken:     cfg.ModelToken,
			ModelName:      cfg.ModelName,
			ModelFieldList: cfg.ModelFields,
		},
		CreateUserID: cfg.CreatorID,
		CreateTime:   cfg.CreatedAt,
		UpdateUserID: cfg.UpdaterID,
		UpdateTime:   cfg.UpdatedAt,
	}
}

// Query returns the configuration list, optionally filtered by exact port
// and/or sensor-name substring.
func (ctl *SensorConfigController) Query(c *gin.Context) {
	var req sensorConfigQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "无效的请求参数")
		return
	}

	configs, err := ctl.Configs.List(req.Port, req.SensorName)
	if err != nil {
		Fail(c, http.StatusInternalServerError, MsgInternalError)
		return
	}

	list := make([]sensorConfigView, 0, len(configs))
	for _, cfg := range configs {
		list = append(list, toView(cfg))
	}
	OK(c, gin.H{"sensorList": list})
}

// Add creates a configuration item.
func (ctl *SensorConfigController) Add(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		Fail(c, http.StatusUnauthorized, MsgUnauthorized)
		return
	}

	var req sensorConfigItem
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "无效的请求参数")
		return
	}

	cfg := models.SensorConfig{
		Port:        req.Port,
		SensorID:    req.SensorID,
		SensorName:  req.SensorName,
		ModelToken:  req.ModelToken,
		ModelName:   req.ModelName,
		ModelFields: req.ModelFieldList,
	}
	if err := ctl.Configs.Create(&cfg, user.ID); err != nil {
		if errors.Is(err, store.ErrDuplicateSensorID) {
			Fail(c, http.StatusBadRequest, fmt.Sprintf("传感器ID %d 在串口 %s 下已存在", req.SensorID, req.Port))
			return
		}
		Fail(c, http.StatusInternalServerError, MsgInternalError)
		return
	}
	OK(c, gin.H{"id": cfg.ID})
}

// Edit replaces every field of an existing configuration item.
func (ctl *SensorConfigController) Edit(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		Fail(c, http.StatusUnauthorized, MsgUnauthorized)
		return
	}

	var req sensorConfigUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "无效的请求参数")
		return
	}

	cfg := models.SensorConfig{
		Port:        req.Port,
		SensorID:    req.SensorID,
		SensorName:  req.SensorName,
		ModelToken:  req.ModelToken,
		ModelName:   req.ModelName,
		ModelFields: req.ModelFieldList,
	}
	if err := ctl.Configs.Update(req.ID, &cfg, user.ID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			Fail(c, http.StatusNotFound, fmt.Sprintf("传感器配置 ID %d 不存在", req.ID))
		case errors.Is(err, store.ErrDuplicateSensorID):
			Fail(c, http.StatusBadRequest, fmt.Sprintf("传感器ID %d 在串口 %s 下已存在", req.SensorID, req.Port))
		default:
			Fail(c, http.StatusInternalServerError, MsgInternalError)
		}
		return
	}
	OK(c, nil)
}

// BatchDelete removes the listed ids; ids without a record are ignored.
func (ctl *SensorConfigController) BatchDelete(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "无效的请求参数")
		return
	}

	if err := ctl.Configs.BatchDelete(req.IDs); err != nil {
		Fail(c, http.StatusInternalServerError, MsgInternalError)
		return
	}
	OK(c, nil)
}
