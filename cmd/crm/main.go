package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/trsv-dev/camera-recording-monitor/internal/broadcast"
	"github.com/trsv-dev/camera-recording-monitor/internal/config"
	"github.com/trsv-dev/camera-recording-monitor/internal/device_status"
	"github.com/trsv-dev/camera-recording-monitor/internal/di_containers"
	"github.com/trsv-dev/camera-recording-monitor/internal/health_storage"
	"github.com/trsv-dev/camera-recording-monitor/internal/interpreters"
	"github.com/trsv-dev/camera-recording-monitor/internal/logger"
	"github.com/trsv-dev/camera-recording-monitor/internal/netutils"
	"github.com/trsv-dev/camera-recording-monitor/internal/server"
	"github.com/trsv-dev/camera-recording-monitor/internal/storage"
	"github.com/trsv-dev/camera-recording-monitor/internal/storage/csvfile"
	"github.com/trsv-dev/camera-recording-monitor/internal/storage/postgres"
	"github.com/trsv-dev/camera-recording-monitor/internal/vapix"
	"github.com/trsv-dev/camera-recording-monitor/internal/worker"
)

// "Сборка" и запуск проекта.
func main() {
	// recover для логирования паник в main
	defer func() {
		if r := recover(); r != nil {
			log.Println("Паника в main:", fmt.Sprintf("%v", r))
		}
	}()

	// загружаем переменные окружения из .env, если файл есть
	if errEnv := godotenv.Load(); errEnv != nil && !os.IsNotExist(errEnv) {
		log.Println("Не удалось загрузить .env:", errEnv)
	}

	cfg := config.InitConfig()

	// инициализация логгера с уровнем логирования из конфигурации
	logger.InitLogger(cfg.LogLevel, cfg.LogOutput)

	exitCode := run(cfg)

	// закрытие ресурса до os.Exit (актуально если используется файл для логирования)
	_ = logger.Log.(*logger.SlogAdapter).Close()
	os.Exit(exitCode)
}

// run Выбирает режим работы и возвращает код завершения процесса.
func run(cfg *config.Config) int {
	stdin := bufio.NewReader(os.Stdin)

	var err error

	if cfg.DatabaseURI == "" || cfg.ImportInventory {
		// в режиме сервиса консоли может не быть, путь должен прийти из флага или окружения
		if cfg.ServiceMode() && cfg.InventoryPath == "" {
			logger.Log.Error("Не указан список устройств (INVENTORY_PATH)")
			return 1
		}

		cfg.InventoryPath, err = promptPath(stdin, os.Stdout, "Path of camera list:", cfg.InventoryPath)
		if err != nil {
			logger.Log.Error("Не указан список устройств", logger.String("err", err.Error()))
			return 1
		}
	}

	var pgStorage *postgres.PgStorage
	if cfg.DatabaseURI != "" {
		if cfg.SecretKey == "" {
			logger.Log.Error("Для хранения списка устройств в БД требуется SECRET_KEY")
			return 1
		}

		// инициализация хранилища (PostgreSQL) с ключом шифрования паролей устройств
		pgStorage, err = postgres.InitStorage(cfg.DatabaseURI, cfg.SecretKey)
		if err != nil {
			logger.Log.Error("Не удалось инициировать хранилище (БД)", logger.String("err", err.Error()))
			return 1
		}
		defer func() {
			// закрытие соединения с БД
			if err := pgStorage.Close(); err != nil {
				logger.Log.Error("Ошибка закрытия соединения с БД", logger.String("err", err.Error()))
			}
		}()
	}

	if cfg.ImportInventory {
		return importInventory(cfg, pgStorage)
	}

	var inventory storage.InventoryStorage = csvfile.NewInventory(cfg.InventoryPath)
	var pinger storage.Pinger
	if pgStorage != nil {
		inventory = pgStorage
		pinger = pgStorage
	}

	rules := interpreters.DefaultVMSRules()
	if cfg.VMSRulesPath != "" {
		rules, err = interpreters.LoadVMSRules(cfg.VMSRulesPath)
		if err != nil {
			logger.Log.Error("Не удалось загрузить правила определения VMS", logger.String("err", err.Error()))
			return 1
		}
	}

	checker := device_status.NewDeviceChecker(vapix.NewDigestClient(), netutils.NewNetworkChecker(), config.NewVAPIXConfig(cfg), rules)

	if cfg.ServiceMode() {
		return serve(cfg, inventory, pinger, checker)
	}

	cfg.ReportDir, err = promptPath(stdin, os.Stdout, "\nOutput path for CSV report:", cfg.ReportDir)
	if err != nil {
		logger.Log.Error("Не указан каталог отчёта", logger.String("err", err.Error()))
		return 1
	}

	return checkOnce(cfg, inventory, checker)
}

// importInventory Переносит список устройств из CSV файла в БД.
func importInventory(cfg *config.Config, pgStorage *postgres.PgStorage) int {
	if pgStorage == nil {
		logger.Log.Error("Для импорта списка устройств требуется DATABASE_URI")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	devices, err := csvfile.NewInventory(cfg.InventoryPath).LoadDevices(ctx)
	if err != nil {
		logger.Log.Error("Ошибка загрузки CSV", logger.String("err", err.Error()))
		return 1
	}

	n, err := pgStorage.AddDevices(ctx, devices)
	if err != nil {
		logger.Log.Error("Ошибка импорта списка устройств", logger.String("err", err.Error()))
		return 1
	}

	logger.Log.Info("Список устройств импортирован", logger.Int("devices", n))
	return 0
}

// checkOnce Один прогон с записью отчёта в каталог. Прерывается по SIGINT/SIGTERM.
func checkOnce(cfg *config.Config, inventory storage.InventoryStorage, checker device_status.StatusChecker) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline := worker.NewPipeline(checker, cfg.PokeWorkers, cfg.QueryWorkers, worker.WithProgress(consoleProgress(os.Stdout)))
	reports := csvfile.NewReportWriter(cfg.ReportDir)

	rep, err := worker.RunFleetCheck(ctx, inventory, pipeline, health_storage.NewDeviceStatusCache(), broadcast.NewNoopAdapter(), reports)
	if err != nil {
		logger.Log.Error("Ошибка прогона", logger.String("err", err.Error()))
		return 1
	}

	fmt.Printf("-----------\n%s.\n%s.\n", rep.Summary.OnlineLine(), rep.Summary.RecordingLine())
	return 0
}

// serve Режим сервиса мониторинга: периодические прогоны, HTTP API и SSE.
func serve(cfg *config.Config, inventory storage.InventoryStorage, pinger storage.Pinger, checker device_status.StatusChecker) int {
	// используем r3labs/sse через адаптер, реализующий интерфейс Broadcaster
	var broadcaster broadcast.Broadcaster = broadcast.NewR3labsSSEAdapter()

	// создаем in-memory хранилище последних статусов устройств
	statusCache := health_storage.NewDeviceStatusCache()

	// "прогрев" in-memory хранилища: устройства видны в API до завершения первого прогона
	warmUpCtx, warmUpCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := health_storage.WarmUpStatusCache(warmUpCtx, inventory, statusCache); err != nil {
		logger.Log.Warn("Не удалось прогреть кэш статусов", logger.String("err", err.Error()))
	}
	warmUpCancel()

	var reports storage.ReportStorage
	if cfg.ReportDir != "" {
		reports = csvfile.NewReportWriter(cfg.ReportDir)
	}

	pipeline := worker.NewPipeline(checker, cfg.PokeWorkers, cfg.QueryWorkers,
		worker.WithProgress(worker.DeviceUpdatesPublisher(statusCache, broadcaster)))

	handlersContainer := di_containers.NewHandlersContainer(pinger, statusCache, broadcaster)

	// создаем сервер и запускаем его
	srv, serverErrorCh := server.RunServer(cfg.RunAddress, handlersContainer)

	workersCtx, workersCtxCancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.FleetStatusWorker(workersCtx, inventory, pipeline, statusCache, broadcaster, reports, cfg.RunInterval)
	}()

	// канал системных сигналов
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop) // гарантированно перестанем слушать сигнал при выходе

	exitCode := 0

	// блокируемся тут в ожидании одного из вариантов завершения работы сервера
	select {
	case err, ok := <-serverErrorCh:
		if ok {
			logger.Log.Error("Ошибка сервера", logger.String("err", err.Error()))
			exitCode = 1
		} else {
			logger.Log.Info("Канал ошибок сервера закрыт")
		}
	case sig := <-stop:
		logger.Log.Info("Получен сигнал остановки приложения", logger.String("sig", sig.String()))
	}

	logger.Log.Info("Начало процедуры остановки приложения...")

	// останавливаем воркеры
	workersCtxCancel()

	// ждём завершения воркера с таймаутом
	workersDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(workersDone)
	}()

	select {
	case <-workersDone:
		logger.Log.Info("Воркеры остановлены")
	case <-time.After(5 * time.Second):
		logger.Log.Warn("Таймаут ожидания воркеров")
	}

	// закрываем broadcaster до остановки сервера, иначе подписки /events не дадут ему завершиться
	if err := broadcaster.Close(); err != nil {
		logger.Log.Warn("Ошибка закрытия SSE адаптера", logger.String("err", err.Error()))
	}

	// контекст для завершения работы сервера
	serverShutdownCtx, serverShutdownCancel := context.WithTimeout(context.Background(), 7*time.Second)
	defer serverShutdownCancel()

	if err := srv.Shutdown(serverShutdownCtx); err != nil {
		logger.Log.Error("Ошибка остановки сервера", logger.String("err", err.Error()))
	} else {
		logger.Log.Info("Сервер остановлен")
	}

	logger.Log.Info("Приложение завершено")
	return exitCode
}
