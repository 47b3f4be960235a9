package health_storage

import (
	"context"

	"github.com/trsv-dev/camera-recording-monitor/internal/storage"
)

// WarmUpStatusCache "Прогрев" in-memory хранилища: устройства из списка попадают в кэш
// с неизвестным статусом до завершения первого прогона.
func WarmUpStatusCache(ctx context.Context, inventory storage.InventoryStorage, statusCache DeviceStatusStorage) (int, error) {
	devices, err := inventory.LoadDevices(ctx)
	if err != nil {
		return 0, err
	}

	for _, device := range devices {
		statusCache.Set(device.Snapshot())
	}

	return len(devices), nil
}
