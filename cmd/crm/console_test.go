package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trsv-dev/camera-recording-monitor/internal/models"
)

// TestPromptPath Проверяет запрос пути в консоли.
func TestPromptPath(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		current   string
		want      string
		wantErr   bool
		wantAsked bool
	}{
		{name: "путь уже задан", current: "cams.csv", want: "cams.csv"},
		{name: "обычный ввод", input: "cams.csv\n", want: "cams.csv", wantAsked: true},
		{name: "путь в кавычках", input: "\"C:\\Cams\\list.csv\"\r\n", want: `C:\Cams\list.csv`, wantAsked: true},
		{name: "без перевода строки", input: "reports", want: "reports", wantAsked: true},
		{name: "пустой ввод", input: "\n", wantErr: true, wantAsked: true},
		{name: "конец ввода", input: "", wantErr: true, wantAsked: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			got, err := promptPath(bufio.NewReader(strings.NewReader(tt.input)), &out, "Path of camera list:", tt.current)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, tt.wantAsked, strings.Contains(out.String(), "Path of camera list:"))
		})
	}
}

// TestConsoleProgress Проверяет строку прогресса без учётных данных.
func TestConsoleProgress(t *testing.T) {
	var out bytes.Buffer

	d := models.NewDevice("HQ", "Lobby Cam", "10.0.0.1", "80", "root", "s3cret")
	d.Status = models.StatusOffline

	consoleProgress(&out)(d.Snapshot())

	assert.Equal(t, "HQ: Lobby Cam (10.0.0.1:80) - Offline\n", out.String())
}
