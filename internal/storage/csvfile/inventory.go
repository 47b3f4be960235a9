package csvfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/trsv-dev/camera-recording-monitor/internal/errs"
	"github.com/trsv-dev/camera-recording-monitor/internal/logger"
	"github.com/trsv-dev/camera-recording-monitor/internal/models"
)

const (
	// inventoryFields Сайт, устройство, адрес, порт, логин, пароль.
	inventoryFields = 6
	// maxLineSize Предел длины строки списка устройств.
	maxLineSize = 16 << 20
)

// Inventory Список устройств в CSV файле.
type Inventory struct {
	path string
}

// NewInventory Конструктор.
func NewInventory(path string) *Inventory {
	return &Inventory{path: path}
}

// LoadDevices Читает список устройств. Пропущенные строки логируются с номером строки.
func (inv *Inventory) LoadDevices(ctx context.Context) ([]*models.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(inv.path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия списка устройств %s: %w", inv.path, err)
	}
	defer f.Close()

	devices, skipped, err := ParseInventory(f)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения списка устройств %s: %w", inv.path, err)
	}

	for _, s := range skipped {
		logger.Log.Warn("Строка списка устройств пропущена",
			logger.String("path", inv.path),
			logger.Int("line", s.Line),
			logger.Int("fields", s.Fields),
		)
	}

	logger.Log.Info("Загружен список устройств",
		logger.String("path", inv.path),
		logger.Int("devices", len(devices)),
		logger.Int("skipped", len(skipped)),
	)

	return devices, nil
}

// ParseInventory Разбирает список устройств. Первая строка - заголовок, пустые строки
// пропускаются, строки с числом полей меньше шести возвращаются в списке пропущенных.
// Поля разделяются запятой без поддержки кавычек.
func ParseInventory(r io.Reader) ([]*models.Device, []*errs.ErrInventoryLine, error) {
	var (
		devices []*models.Device
		skipped []*errs.ErrInventoryLine
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLineSize)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		if lineNo == 1 {
			continue
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < inventoryFields {
			skipped = append(skipped, errs.NewErrInventoryLine(lineNo, len(fields)))
			continue
		}

		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		devices = append(devices, models.NewDevice(fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]))
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	return devices, skipped, nil
}
