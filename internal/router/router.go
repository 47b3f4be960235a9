package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/trsv-dev/camera-recording-monitor/internal/di_containers"
	"github.com/trsv-dev/camera-recording-monitor/internal/middleware"
)

// Router Роутер.
func Router(h *di_containers.HandlersContainer) chi.Router {
	router := chi.NewRouter()

	// middleware логгера всех запросов
	router.Use(middleware.LogMiddleware)
	// страницы мониторинга в локальной сети
	router.Use(middleware.CorsMiddleware)

	router.Get("/health", h.HealthHandler.GetHealth)

	// результаты прогонов, только чтение
	router.Route("/api/fleet", func(r chi.Router) {
		r.Get("/", h.FleetHandler.GetFleet)
		r.Get("/devices", h.FleetHandler.GetDevices)
		r.Get("/devices/{site}/{device}", h.FleetHandler.GetDevice)
		r.Get("/report.csv", h.FleetHandler.GetReportCSV)
	})

	// SSE: /events?stream=devices|fleet
	router.Handle("/events", h.Broadcaster.HTTPHandler())

	return router
}
