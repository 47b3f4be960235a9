package device_status

import (
	"context"
	"net/http"

	"github.com/trsv-dev/camera-recording-monitor/internal/config"
	"github.com/trsv-dev/camera-recording-monitor/internal/errs"
	"github.com/trsv-dev/camera-recording-monitor/internal/interpreters"
	"github.com/trsv-dev/camera-recording-monitor/internal/logger"
	"github.com/trsv-dev/camera-recording-monitor/internal/models"
	"github.com/trsv-dev/camera-recording-monitor/internal/netutils"
	"github.com/trsv-dev/camera-recording-monitor/internal/vapix"
)

// DeviceChecker Опрос камеры: проверка доступности и статусные запросы VAPIX.
// Запись об устройстве изменяет только вызывающий воркер, владеющий этим устройством.
type DeviceChecker struct {
	client  vapix.Client
	checker netutils.Checker
	cfg     *config.VAPIXConfig
	rules   interpreters.VMSRules
}

// NewDeviceChecker Конструктор. Пустая таблица правил заменяется встроенной.
func NewDeviceChecker(client vapix.Client, checker netutils.Checker, cfg *config.VAPIXConfig, rules interpreters.VMSRules) *DeviceChecker {
	if cfg == nil {
		cfg = config.DefaultVAPIXConfig()
	}

	if len(rules) == 0 {
		rules = interpreters.DefaultVMSRules()
	}

	return &DeviceChecker{
		client:  client,
		checker: checker,
		cfg:     cfg,
		rules:   rules,
	}
}

// Poke Проверяет доступность веб-интерфейса устройства запросом HEAD.
// Любой HTTP-ответ означает Online. Возвращает true, если статус ответа 2xx.
func (c *DeviceChecker) Poke(ctx context.Context, device *models.Device) bool {
	device.Checks |= models.CheckReachability

	code, err := c.checker.CheckHTTP(ctx, device.BaseURL(), c.cfg.PokeTimeout)
	if err != nil {
		device.Status = models.StatusOffline

		logger.Log.Warn("Устройство недоступно",
			logger.String("device", device.About(false)),
			logger.String("kind", errs.Kind(err)),
			logger.String("err", err.Error()),
		)

		if c.cfg.ICMPDiagnostics {
			c.diagnoseICMP(ctx, device)
		}

		return false
	}

	device.Status = models.StatusOnline

	logger.Log.Debug("Устройство доступно",
		logger.String("device", device.About(false)),
		logger.Int("status_code", code),
	)

	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

// diagnoseICMP Пингует недоступное устройство. Результат только логируется.
func (c *DeviceChecker) diagnoseICMP(ctx context.Context, device *models.Device) {
	if c.checker.CheckICMP(ctx, device.Host, c.cfg.PokeTimeout) {
		logger.Log.Info("Устройство отвечает на ICMP, но веб-интерфейс недоступен",
			logger.String("device", device.About(false)))
		return
	}

	logger.Log.Info("Устройство не отвечает на ICMP",
		logger.String("device", device.About(false)))
}

// CheckStatuses Опрашивает доступное устройство. Этапы независимы: ошибка одного не отменяет
// остальные, неудачный этап оставляет значения по умолчанию.
func (c *DeviceChecker) CheckStatuses(ctx context.Context, device *models.Device) {
	if device.Status != models.StatusOnline {
		return
	}

	if readiness, err := c.CheckSystemReady(ctx, device); err != nil {
		logStageError("systemready", device, err)
	} else {
		device.SystemReady = readiness.Ready
		device.UptimeSeconds = readiness.UptimeSeconds
		device.Uptime = readiness.Uptime
		device.Checks |= models.CheckReadiness
	}

	if recording, err := c.CheckRecordingStatus(ctx, device); err != nil {
		logStageError("recordings", device, err)
	} else {
		device.RecordingStatus = recording
		device.Checks |= models.CheckRecording
	}

	if vms, err := c.CheckVMS(ctx, device); err != nil {
		logStageError("vms", device, err)
	} else {
		device.VMS = vms
		device.Checks |= models.CheckVMS
	}

	if !c.cfg.DeviceInfo {
		return
	}

	if info, err := c.CheckDeviceInfo(ctx, device); err != nil {
		logStageError("deviceinfo", device, err)
	} else {
		device.Model = info.Model
		device.Firmware = info.Firmware
		device.Checks |= models.CheckDeviceInfo
	}
}

// CheckSystemReady Готовность системы и время работы.
func (c *DeviceChecker) CheckSystemReady(ctx context.Context, device *models.Device) (interpreters.Readiness, error) {
	body, err := c.query(ctx, device, vapix.SystemReadyRequest)
	if err != nil {
		return interpreters.Readiness{}, err
	}

	return interpreters.ParseSystemReady(body)
}

// CheckRecordingStatus Идёт ли запись хотя бы по одному профилю.
func (c *DeviceChecker) CheckRecordingStatus(ctx context.Context, device *models.Device) (bool, error) {
	body, err := c.query(ctx, device, vapix.RecordingListRequest)
	if err != nil {
		return false, err
	}

	return interpreters.ParseRecordingList(body)
}

// CheckVMS К какой VMS подключена камера.
func (c *DeviceChecker) CheckVMS(ctx context.Context, device *models.Device) (models.VMSType, error) {
	body, err := c.query(ctx, device, vapix.ServerListRequest)
	if err != nil {
		return models.VMSUnknown, err
	}

	return c.rules.Classify(body), nil
}

// CheckDeviceInfo Модель и версия прошивки.
func (c *DeviceChecker) CheckDeviceInfo(ctx context.Context, device *models.Device) (interpreters.DeviceInfo, error) {
	body, err := c.query(ctx, device, vapix.BasicDeviceInfoRequest)
	if err != nil {
		return interpreters.DeviceInfo{}, err
	}

	return interpreters.ParseBasicDeviceInfo(body)
}

func (c *DeviceChecker) query(ctx context.Context, device *models.Device, req vapix.Request) (string, error) {
	return c.client.Query(ctx, vapix.NewTarget(device, c.cfg.QueryTimeout), req)
}

// logStageError Логирует ошибку этапа без учётных данных устройства.
func logStageError(stage string, device *models.Device, err error) {
	logger.Log.Warn("Ошибка опроса устройства",
		logger.String("stage", stage),
		logger.String("device", device.About(false)),
		logger.String("kind", errs.Kind(err)),
		logger.String("err", err.Error()),
	)
}
