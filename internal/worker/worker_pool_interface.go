package worker

import (
	"context"
	"sync"

	"github.com/trsv-dev/camera-recording-monitor/internal/logger"
	"github.com/trsv-dev/camera-recording-monitor/internal/models"
)

// WorkerPool Пул, через который проходит каждая фаза прогона.
type WorkerPool interface {
	Start(ctx context.Context)
	Stop()
	Submit(device *models.Device) bool
}

// DeviceWorkerPool Пул воркеров с ограниченным числом горутин. Каждое устройство
// обрабатывается ровно одним воркером.
type DeviceWorkerPool struct {
	tasks      chan *models.Device
	workerFunc func(ctx context.Context, device *models.Device)
	poolSize   int
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// NewDeviceWorkerPool Конструктор. queueSize - ёмкость очереди, при переполнении Submit возвращает false.
func NewDeviceWorkerPool(poolSize, queueSize int, workerFunc func(ctx context.Context, device *models.Device)) *DeviceWorkerPool {
	if poolSize < 1 {
		poolSize = 1
	}

	if queueSize < 0 {
		queueSize = 0
	}

	return &DeviceWorkerPool{
		tasks:      make(chan *models.Device, queueSize),
		poolSize:   poolSize,
		workerFunc: workerFunc,
	}
}

func (wp *DeviceWorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.poolSize; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, i)
	}
}

// Stop Закрывает очередь и ждёт, пока воркеры обработают оставшиеся задачи.
func (wp *DeviceWorkerPool) Stop() {
	wp.stopOnce.Do(func() {
		close(wp.tasks)
	})
	wp.wg.Wait()
}

func (wp *DeviceWorkerPool) Submit(device *models.Device) bool {
	select {
	case wp.tasks <- device:
		return true
	default:
		// очередь переполнена, пропускаем задачу
		return false
	}
}

func (wp *DeviceWorkerPool) worker(ctx context.Context, id int) {
	defer wp.wg.Done()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("Завершение работы воркера по контексту", logger.Int("device_worker id", id))
			return
		case device, ok := <-wp.tasks:
			if !ok {
				logger.Log.Debug("Канал tasks для DeviceWorkerPool пуст. Завершение работы воркера", logger.Int("device_worker id", id))
				return
			}

			wp.workerFunc(ctx, device)
		}
	}
}
