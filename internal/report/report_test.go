package report

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/camera-recording-monitor/internal/models"
)

func testFleet() []*models.Device {
	online := models.NewDevice("HQ", "Lobby", "10.0.0.1", "80", "root", "s3cret")
	online.Status = models.StatusOnline
	online.RecordingStatus = true
	online.VMS = models.VMSACSEdge

	idle := models.NewDevice("HQ", "Yard", "10.0.0.2", "80", "root", "s3cret")
	idle.Status = models.StatusOnline
	idle.VMS = models.VMSYourSix

	offline := models.NewDevice("Depot", "Gate", "10.0.1.1", "80", "root", "s3cret")
	offline.Status = models.StatusOffline
	// для недоступного устройства флаг записи в сводке не учитывается
	offline.RecordingStatus = true

	return []*models.Device{online, idle, offline}
}

// TestSummarize Проверяет подсчёт сводки и её строки.
func TestSummarize(t *testing.T) {
	s := Summarize(testFleet())

	assert.Equal(t, Summary{Total: 3, Online: 2, Recording: 1}, s)
	assert.Equal(t, "2/3 devices are online", s.OnlineLine())
	assert.Equal(t, "1/2 online devices are recording", s.RecordingLine())

	empty := Summarize(nil)
	assert.Equal(t, "0/0 devices are online", empty.OnlineLine())
}

// TestReportLines Проверяет строки отчёта и отсутствие учётных данных.
func TestReportLines(t *testing.T) {
	r := Build("run-1", time.Unix(0, 0), testFleet())

	want := []string{
		Header,
		"HQ,Lobby,Online,true,ACSEdge",
		"HQ,Yard,Online,false,YourSix",
		"Depot,Gate,Offline,true,Unknown",
	}

	assert.Equal(t, want, r.Lines())

	var buf bytes.Buffer
	require.NoError(t, r.WriteCSV(&buf))
	assert.NotContains(t, buf.String(), "s3cret")
	assert.Equal(t, 4, bytes.Count(buf.Bytes(), []byte("\n")))
}

// TestReportIdempotent Проверяет, что одинаковые данные дают одинаковый отчёт.
func TestReportIdempotent(t *testing.T) {
	first := Build("a", time.Now(), testFleet())
	second := Build("b", time.Now(), testFleet())

	assert.Equal(t, first.Lines(), second.Lines())
}

// TestReportDevice Проверяет поиск устройства по ключу.
func TestReportDevice(t *testing.T) {
	r := Build("run-1", time.Now(), testFleet())

	d, ok := r.Device("Depot/Gate")
	require.True(t, ok)
	assert.Equal(t, models.StatusOffline, d.Status)
	assert.Empty(t, d.Password)

	_, ok = r.Device("Depot/Nope")
	assert.False(t, ok)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestWriteCSVError Проверяет ошибку записи.
func TestWriteCSVError(t *testing.T) {
	r := Build("run-1", time.Now(), testFleet())

	assert.Error(t, r.WriteCSV(failingWriter{}))
}
