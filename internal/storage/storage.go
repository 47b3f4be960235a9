package storage

import (
	"context"

	"github.com/trsv-dev/camera-recording-monitor/internal/models"
	"github.com/trsv-dev/camera-recording-monitor/internal/report"
)

//go:generate mockgen -destination=mocks/storage_mock.go -package=mocks . InventoryStorage,ReportStorage,Pinger

// InventoryStorage Источник списка устройств. Каждый вызов возвращает новые записи,
// состояние устройств между прогонами не сохраняется.
type InventoryStorage interface {
	LoadDevices(ctx context.Context) ([]*models.Device, error)
}

// ReportStorage Приёмник отчётов. Возвращает расположение сохранённого отчёта.
type ReportStorage interface {
	SaveReport(ctx context.Context, rep *report.Report) (string, error)
}

// Pinger Проверка доступности хранилища для /health.
type Pinger interface {
	Ping(ctx context.Context) error
}
