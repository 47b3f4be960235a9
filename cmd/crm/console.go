package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/trsv-dev/camera-recording-monitor/internal/models"
	"github.com/trsv-dev/camera-recording-monitor/internal/worker"
)

// promptPath Запрашивает путь в консоли, если он не передан флагом или переменной окружения.
// Кавычки, которые добавляет проводник при копировании пути, отбрасываются.
func promptPath(in *bufio.Reader, out io.Writer, label, current string) (string, error) {
	if current != "" {
		return current, nil
	}

	fmt.Fprintln(out, label)

	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("не удалось прочитать ввод: %w", err)
	}

	path := strings.Trim(strings.TrimSpace(line), `"'`)
	if path == "" {
		return "", fmt.Errorf("путь не указан")
	}

	return path, nil
}

// consoleProgress Выводит в консоль строку по каждому опрошенному устройству.
func consoleProgress(out io.Writer) worker.ProgressFunc {
	var mu sync.Mutex

	return func(device models.Device) {
		mu.Lock()
		defer mu.Unlock()

		fmt.Fprintf(out, "%s - %s\n", device.About(false), device.Status)
	}
}
