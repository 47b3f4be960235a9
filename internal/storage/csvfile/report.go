package csvfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/trsv-dev/camera-recording-monitor/internal/logger"
	"github.com/trsv-dev/camera-recording-monitor/internal/report"
)

const reportNameLayout = "Device_Recording_Status_20060102_150405.csv"

// ReportWriter Сохраняет отчёты в каталог.
type ReportWriter struct {
	dir string
	now func() time.Time
}

// NewReportWriter Конструктор.
func NewReportWriter(dir string) *ReportWriter {
	return &ReportWriter{dir: dir, now: time.Now}
}

// ReportName Имя файла отчёта на момент t.
func ReportName(t time.Time) string {
	return t.Format(reportNameLayout)
}

// SaveReport Записывает отчёт в новый файл и возвращает путь к нему.
func (rw *ReportWriter) SaveReport(ctx context.Context, rep *report.Report) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(rw.dir, 0o755); err != nil {
		return "", fmt.Errorf("ошибка создания каталога отчётов %s: %w", rw.dir, err)
	}

	path := filepath.Join(rw.dir, ReportName(rw.now()))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("ошибка создания отчёта %s: %w", path, err)
	}

	if err = rep.WriteCSV(f); err != nil {
		_ = f.Close()
		return "", err
	}

	if err = f.Close(); err != nil {
		return "", fmt.Errorf("ошибка закрытия отчёта %s: %w", path, err)
	}

	logger.Log.Info("Отчёт сохранён", logger.String("path", path))

	return path, nil
}
