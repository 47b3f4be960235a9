package report

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/trsv-dev/camera-recording-monitor/internal/models"
)

// Header Заголовок CSV отчёта. Пробелы после запятых сохранены для совместимости
// с существующими потребителями отчёта.
const Header = "Site Name,Device Name, Device Status, Recording Status, Recording VMS"

// Summary Сводка по парку устройств.
type Summary struct {
	Total     int `json:"total"`
	Online    int `json:"online"`
	Recording int `json:"recording"`
}

// Summarize Подсчитывает сводку. Пишущими считаются только доступные устройства.
func Summarize(devices []*models.Device) Summary {
	s := Summary{Total: len(devices)}

	for _, device := range devices {
		if device.Status != models.StatusOnline {
			continue
		}

		s.Online++
		if device.RecordingStatus {
			s.Recording++
		}
	}

	return s
}

// OnlineLine Строка сводки доступности.
func (s Summary) OnlineLine() string {
	return fmt.Sprintf("%d/%d devices are online", s.Online, s.Total)
}

// RecordingLine Строка сводки записи.
func (s Summary) RecordingLine() string {
	return fmt.Sprintf("%d/%d online devices are recording", s.Recording, s.Online)
}

// Report Результат прогона: копии устройств без учётных данных в порядке списка устройств.
type Report struct {
	RunID       string          `json:"runId"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Summary     Summary         `json:"summary"`
	Devices     []models.Device `json:"devices"`
}

// Build Формирует отчёт по опрошенным устройствам.
func Build(runID string, generatedAt time.Time, devices []*models.Device) *Report {
	snapshots := make([]models.Device, 0, len(devices))
	for _, device := range devices {
		snapshots = append(snapshots, device.Snapshot())
	}

	return &Report{
		RunID:       runID,
		GeneratedAt: generatedAt,
		Summary:     Summarize(devices),
		Devices:     snapshots,
	}
}

// Lines Строки CSV отчёта, начиная с заголовка.
func (r *Report) Lines() []string {
	lines := make([]string, 0, len(r.Devices)+1)
	lines = append(lines, Header)

	for i := range r.Devices {
		lines = append(lines, r.Devices[i].AboutCSV(false))
	}

	return lines
}

// WriteCSV Записывает отчёт построчно.
func (r *Report) WriteCSV(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for _, line := range r.Lines() {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("ошибка записи отчёта: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ошибка записи отчёта: %w", err)
	}

	return nil
}

// Device Возвращает устройство по ключу site/device.
func (r *Report) Device(key string) (models.Device, bool) {
	for i := range r.Devices {
		if r.Devices[i].Key() == key {
			return r.Devices[i], true
		}
	}

	return models.Device{}, false
}
