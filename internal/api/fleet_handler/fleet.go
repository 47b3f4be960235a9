package fleet_handler

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/trsv-dev/camera-recording-monitor/internal/api/response"
	"github.com/trsv-dev/camera-recording-monitor/internal/health_storage"
	"github.com/trsv-dev/camera-recording-monitor/internal/logger"
	"github.com/trsv-dev/camera-recording-monitor/internal/report"
	"github.com/trsv-dev/camera-recording-monitor/internal/storage/csvfile"
)

const noReportMessage = "Отчёт ещё не сформирован, дождитесь завершения первого прогона"

// FleetHandler Отдаёт результаты последнего прогона из in-memory хранилища.
type FleetHandler struct {
	statusCache health_storage.DeviceStatusStorage
}

// FleetSummary Сводка последнего прогона.
type FleetSummary struct {
	RunID       string    `json:"runId"`
	GeneratedAt time.Time `json:"generatedAt"`
	report.Summary
	OnlineLine    string `json:"onlineLine"`
	RecordingLine string `json:"recordingLine"`
}

// NewFleetHandler Конструктор FleetHandler.
func NewFleetHandler(statusCache health_storage.DeviceStatusStorage) *FleetHandler {
	return &FleetHandler{
		statusCache: statusCache,
	}
}

// GetFleet Возвращает сводку последнего прогона.
func (h *FleetHandler) GetFleet(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.statusCache.Report()
	if !ok {
		response.ErrorJSON(w, http.StatusServiceUnavailable, noReportMessage)
		return
	}

	response.JSON(w, http.StatusOK, FleetSummary{
		RunID:         rep.RunID,
		GeneratedAt:   rep.GeneratedAt,
		Summary:       rep.Summary,
		OnlineLine:    rep.Summary.OnlineLine(),
		RecordingLine: rep.Summary.RecordingLine(),
	})
}

// GetDevices Возвращает устройства последнего прогона в порядке списка устройств.
func (h *FleetHandler) GetDevices(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.statusCache.Report()
	if !ok {
		response.ErrorJSON(w, http.StatusServiceUnavailable, noReportMessage)
		return
	}

	response.JSON(w, http.StatusOK, rep.Devices)
}

// GetDevice Возвращает последний известный статус устройства. Во время прогона статус
// обновляется по мере опроса.
func (h *FleetHandler) GetDevice(w http.ResponseWriter, r *http.Request) {
	site, name := chi.URLParam(r, "site"), chi.URLParam(r, "device")

	// chi маршрутизирует по RawPath, если он задан (например, %2F в имени), и тогда
	// параметры приходят закодированными
	if r.URL.RawPath != "" {
		var siteErr, nameErr error
		site, siteErr = url.PathUnescape(site)
		name, nameErr = url.PathUnescape(name)
		if siteErr != nil || nameErr != nil {
			response.ErrorJSON(w, http.StatusBadRequest, "Некорректное имя площадки или устройства")
			return
		}
	}

	device, ok := h.statusCache.Get(site + "/" + name)
	if !ok {
		logger.Log.Debug("Устройство не найдено",
			logger.String("site", site),
			logger.String("device", name))
		response.ErrorJSON(w, http.StatusNotFound, "Устройство не найдено")
		return
	}

	response.JSON(w, http.StatusOK, device)
}

// GetReportCSV Отдаёт последний отчёт в формате CSV.
func (h *FleetHandler) GetReportCSV(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.statusCache.Report()
	if !ok {
		response.ErrorJSON(w, http.StatusServiceUnavailable, noReportMessage)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", csvfile.ReportName(rep.GeneratedAt)))
	w.WriteHeader(http.StatusOK)

	if err := rep.WriteCSV(w); err != nil {
		logger.Log.Warn("Ошибка отправки CSV отчёта", logger.String("err", err.Error()))
	}
}
