package health_handler

import (
	"context"
	"net/http"
	"time"

	"github.com/trsv-dev/camera-recording-monitor/internal/logger"
	"github.com/trsv-dev/camera-recording-monitor/internal/storage"
)

// HealthHandler обрабатывает HTTP-запросы для проверки состояния сервиса.
type HealthHandler struct {
	pinger storage.Pinger
}

// NewHealthHandler Конструктор HealthHandler. pinger может быть nil, если список устройств
// читается из CSV файла.
func NewHealthHandler(pinger storage.Pinger) *HealthHandler {
	return &HealthHandler{
		pinger: pinger,
	}
}

// GetHealth обрабатывает health-check запрос и возвращает статус готовности сервиса.
// Возвращает HTTP 200, если хранилище устройств доступно, иначе HTTP 503.
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		pingCtx, pingCancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer pingCancel()

		if err := h.pinger.Ping(pingCtx); err != nil {
			logger.Log.Error("База данных PostgreSQL не отвечает", logger.String("error", err.Error()))

			http.Error(w, "База данных недоступна", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
