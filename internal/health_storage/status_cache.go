package health_storage

import (
	"sync"

	"github.com/trsv-dev/camera-recording-monitor/internal/models"
	"github.com/trsv-dev/camera-recording-monitor/internal/report"
)

// DeviceStatusCache Последние известные статусы устройств (ключ site/device) и последний отчёт.
// Хранит только копии без учётных данных.
type DeviceStatusCache struct {
	mu      sync.RWMutex
	devices map[string]models.Device
	report  *report.Report
}

// NewDeviceStatusCache Конструктор DeviceStatusCache.
func NewDeviceStatusCache() *DeviceStatusCache {
	return &DeviceStatusCache{
		devices: make(map[string]models.Device),
	}
}

// Set Сохраняет статус устройства, полученный во время прогона.
func (sc *DeviceStatusCache) Set(device models.Device) {
	device.Username = ""
	device.Password = ""

	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.devices[device.Key()] = device
}

// Get Возвращает последний известный статус устройства.
func (sc *DeviceStatusCache) Get(key string) (models.Device, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	v, ok := sc.devices[key]

	return v, ok
}

// SetReport Сохраняет отчёт завершённого прогона. Устройства, которых нет в отчёте,
// удаляются из кэша.
func (sc *DeviceStatusCache) SetReport(rep *report.Report) {
	if rep == nil {
		return
	}

	devices := make(map[string]models.Device, len(rep.Devices))
	for _, d := range rep.Devices {
		devices[d.Key()] = d
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.report = rep
	sc.devices = devices
}

// Report Возвращает последний отчёт. false, если ни один прогон ещё не завершён.
func (sc *DeviceStatusCache) Report() (*report.Report, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	return sc.report, sc.report != nil
}
