package health_storage

import (
	"github.com/trsv-dev/camera-recording-monitor/internal/models"
	"github.com/trsv-dev/camera-recording-monitor/internal/report"
)

//go:generate mockgen -destination=mocks/device_status_storage_mock.go -package=mocks . DeviceStatusStorage

// DeviceStatusStorage In-memory хранилище последних статусов устройств и последнего отчёта.
type DeviceStatusStorage interface {
	Set(device models.Device)
	Get(key string) (models.Device, bool)
	SetReport(rep *report.Report)
	Report() (*report.Report, bool)
}
