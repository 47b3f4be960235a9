package di_containers

import (
	"github.com/trsv-dev/camera-recording-monitor/internal/api/fleet_handler"
	"github.com/trsv-dev/camera-recording-monitor/internal/api/health_handler"
	"github.com/trsv-dev/camera-recording-monitor/internal/broadcast"
	"github.com/trsv-dev/camera-recording-monitor/internal/health_storage"
	"github.com/trsv-dev/camera-recording-monitor/internal/storage"
)

// HandlersContainer Контейнер со всеми хендлерами приложения (и их зависимостями).
type HandlersContainer struct {
	HealthHandler *health_handler.HealthHandler
	FleetHandler  *fleet_handler.FleetHandler
	Broadcaster   broadcast.Broadcaster
}

// NewHandlersContainer Конструктор контейнера с зависимостями для хендлеров.
// pinger может быть nil, если список устройств читается из CSV файла.
func NewHandlersContainer(pinger storage.Pinger, statusCache health_storage.DeviceStatusStorage, broadcaster broadcast.Broadcaster) *HandlersContainer {
	healthHandler := health_handler.NewHealthHandler(pinger)
	fleetHandler := fleet_handler.NewFleetHandler(statusCache)

	return &HandlersContainer{
		HealthHandler: healthHandler,
		FleetHandler:  fleetHandler,
		Broadcaster:   broadcaster,
	}
}
