package device_status

import (
	"context"

	"github.com/trsv-dev/camera-recording-monitor/internal/models"
)

//go:generate mockgen -destination=mocks/mock_status_checker.go -package=mocks . StatusChecker

// StatusChecker Интерфейс опроса одного устройства.
// Poke определяет доступность, CheckStatuses опрашивает доступное устройство.
type StatusChecker interface {
	Poke(ctx context.Context, device *models.Device) bool
	CheckStatuses(ctx context.Context, device *models.Device)
}
