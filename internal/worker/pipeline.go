package worker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trsv-dev/camera-recording-monitor/internal/device_status"
	"github.com/trsv-dev/camera-recording-monitor/internal/logger"
	"github.com/trsv-dev/camera-recording-monitor/internal/models"
	"github.com/trsv-dev/camera-recording-monitor/internal/report"
)

// ProgressFunc Получает копию устройства без учётных данных, когда опрос устройства завершён.
// Вызывается из воркеров конкурентно.
type ProgressFunc func(device models.Device)

// PipelineOption Опция конвейера.
type PipelineOption func(p *Pipeline)

// WithProgress Добавляет обработчик завершения опроса устройства.
func WithProgress(fn ProgressFunc) PipelineOption {
	return func(p *Pipeline) {
		if fn != nil {
			p.progress = append(p.progress, fn)
		}
	}
}

// RunSummary Итоги одного прогона.
type RunSummary struct {
	RunID      uuid.UUID `json:"runId"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	report.Summary
}

// Pipeline Конвейер опроса парка устройств в две фазы: проверка доступности всех устройств,
// затем статусные запросы к доступным. Между фазами - полный барьер.
type Pipeline struct {
	checker      device_status.StatusChecker
	pokeWorkers  int
	queryWorkers int
	progress     []ProgressFunc
}

// NewPipeline Конструктор конвейера.
func NewPipeline(checker device_status.StatusChecker, pokeWorkers, queryWorkers int, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		checker:      checker,
		pokeWorkers:  pokeWorkers,
		queryWorkers: queryWorkers,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run Опрашивает устройства и заполняет их записи. Ошибка опроса одного устройства
// не влияет на остальные.
func (p *Pipeline) Run(ctx context.Context, devices []*models.Device) RunSummary {
	summary := RunSummary{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
	}

	for _, device := range devices {
		device.ResetObservations()
	}

	logger.Log.Info("Начат опрос устройств",
		logger.String("run_id", summary.RunID.String()),
		logger.Int("devices", len(devices)),
	)

	p.runPhase(ctx, p.pokeWorkers, devices, func(ctx context.Context, device *models.Device) {
		p.checker.Poke(ctx, device)

		if device.Status != models.StatusOnline {
			p.notify(device)
		}
	})

	online := make([]*models.Device, 0, len(devices))
	for _, device := range devices {
		if device.Status == models.StatusOnline {
			online = append(online, device)
		}
	}

	p.runPhase(ctx, p.queryWorkers, online, func(ctx context.Context, device *models.Device) {
		p.checker.CheckStatuses(ctx, device)
		p.notify(device)
	})

	summary.Summary = report.Summarize(devices)
	summary.FinishedAt = time.Now()

	logger.Log.Info("Опрос устройств завершён",
		logger.String("run_id", summary.RunID.String()),
		logger.Int("total", summary.Total),
		logger.Int("online", summary.Online),
		logger.Int("recording", summary.Recording),
		logger.Duration("elapsed", summary.FinishedAt.Sub(summary.StartedAt)),
	)

	return summary
}

// runPhase Обрабатывает устройства пулом воркеров и возвращается, когда обработаны все.
func (p *Pipeline) runPhase(ctx context.Context, workers int, devices []*models.Device, fn func(ctx context.Context, device *models.Device)) {
	if len(devices) == 0 {
		return
	}

	if workers > len(devices) {
		workers = len(devices)
	}

	var pool WorkerPool = NewDeviceWorkerPool(workers, len(devices), fn)
	pool.Start(ctx)

	for _, device := range devices {
		if !pool.Submit(device) {
			logger.Log.Error("Очередь опроса переполнена, устройство пропущено",
				logger.String("device", device.About(false)))
		}
	}

	pool.Stop()
}

func (p *Pipeline) notify(device *models.Device) {
	if len(p.progress) == 0 {
		return
	}

	snapshot := device.Snapshot()
	for _, fn := range p.progress {
		fn(snapshot)
	}
}
