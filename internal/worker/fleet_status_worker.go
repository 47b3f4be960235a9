package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/trsv-dev/camera-recording-monitor/internal/broadcast"
	"github.com/trsv-dev/camera-recording-monitor/internal/health_storage"
	"github.com/trsv-dev/camera-recording-monitor/internal/logger"
	"github.com/trsv-dev/camera-recording-monitor/internal/models"
	"github.com/trsv-dev/camera-recording-monitor/internal/report"
	"github.com/trsv-dev/camera-recording-monitor/internal/storage"
)

// inventoryTimeout Время на загрузку списка устройств.
const inventoryTimeout = 30 * time.Second

// FleetStatusWorker Периодически опрашивает парк устройств и публикует результаты через Publisher.
func FleetStatusWorker(ctx context.Context, inventory storage.InventoryStorage, pipeline *Pipeline, statusCache health_storage.DeviceStatusStorage,
	publisher broadcast.Broadcaster, reports storage.ReportStorage, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := RunFleetCheck(ctx, inventory, pipeline, statusCache, publisher, reports); err != nil {
			logger.Log.Error("ошибка воркера FleetStatusWorker", logger.String("err", err.Error()))
		}

		select {
		case <-ctx.Done():
			logger.Log.Info("Завершение работы воркера FleetStatusWorker по контексту", logger.String("info", ctx.Err().Error()))
			return
		case <-ticker.C: // следующий цикл по таймеру
		}
	}
}

// RunFleetCheck Один прогон: загрузка списка устройств, опрос, сохранение отчёта в кэш
// и (если задано) в хранилище отчётов, публикация сводки в поток fleet.
func RunFleetCheck(ctx context.Context, inventory storage.InventoryStorage, pipeline *Pipeline, statusCache health_storage.DeviceStatusStorage,
	publisher broadcast.Broadcaster, reports storage.ReportStorage) (*report.Report, error) {
	loadCtx, cancel := context.WithTimeout(ctx, inventoryTimeout)
	devices, err := inventory.LoadDevices(loadCtx)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки списка устройств: %w", err)
	}

	summary := pipeline.Run(ctx, devices)

	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("прогон %s прерван: %w", summary.RunID, err)
	}

	rep := report.Build(summary.RunID.String(), summary.FinishedAt, devices)
	statusCache.SetReport(rep)

	logger.Log.Info(rep.Summary.OnlineLine())
	logger.Log.Info(rep.Summary.RecordingLine())

	if reports != nil {
		path, saveErr := reports.SaveReport(ctx, rep)
		if saveErr != nil {
			logger.Log.Error("Ошибка сохранения отчёта", logger.String("err", saveErr.Error()))
		} else {
			logger.Log.Info("Отчёт записан", logger.String("path", path))
		}
	}

	b, err := json.Marshal(summary)
	if err != nil {
		return rep, err
	}

	if err = publisher.Publish(broadcast.StreamFleet, b); err != nil {
		return rep, err
	}

	return rep, nil
}

// DeviceUpdatesPublisher Обработчик завершения опроса устройства: обновляет кэш и
// публикует устройство в поток devices.
func DeviceUpdatesPublisher(statusCache health_storage.DeviceStatusStorage, publisher broadcast.Broadcaster) ProgressFunc {
	return func(device models.Device) {
		statusCache.Set(device)

		b, err := json.Marshal(device)
		if err != nil {
			logger.Log.Error("Ошибка сериализации статуса устройства", logger.String("err", err.Error()))
			return
		}

		if err = publisher.Publish(broadcast.StreamDevices, b); err != nil {
			logger.Log.Warn("Ошибка публикации статуса устройства",
				logger.String("device", device.About(false)),
				logger.String("err", err.Error()))
		}
	}
}
