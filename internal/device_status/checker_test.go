package device_status

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/trsv-dev/camera-recording-monitor/internal/config"
	"github.com/trsv-dev/camera-recording-monitor/internal/errs"
	"github.com/trsv-dev/camera-recording-monitor/internal/interpreters"
	"github.com/trsv-dev/camera-recording-monitor/internal/logger"
	"github.com/trsv-dev/camera-recording-monitor/internal/models"
	netmocks "github.com/trsv-dev/camera-recording-monitor/internal/netutils/mocks"
	"github.com/trsv-dev/camera-recording-monitor/internal/vapix"
	vapixmocks "github.com/trsv-dev/camera-recording-monitor/internal/vapix/mocks"
)

func init() {
	logger.InitLogger("error", "stdout")
}

const (
	readyBody      = `{"data":{"systemready":"yes","uptime":"7200"}}`
	recordingBody  = `<root><recordings><recording recordingstatus="recording"/></recordings></root>`
	serverListBody = "root.RemoteService.ServerList.S0.Host=cloud.yoursix.com\n"
	deviceInfoBody = `{"data":{"propertyList":{"ProdNbr":"M3106-L","Version":"9.80.3"}}}`
)

func newTestDevice() *models.Device {
	return models.NewDevice("HQ", "Gate", "10.0.0.5", "80", "root", "pass")
}

func newTestConfig() *config.VAPIXConfig {
	return &config.VAPIXConfig{PokeTimeout: time.Second, QueryTimeout: 2 * time.Second}
}

// TestPoke Проверяет определение доступности по HEAD-запросу.
func TestPoke(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		err        error
		icmp       bool
		wantStatus models.Status
		wantOK     bool
	}{
		{name: "200 OK", code: http.StatusOK, wantStatus: models.StatusOnline, wantOK: true},
		{name: "401 тоже онлайн", code: http.StatusUnauthorized, wantStatus: models.StatusOnline, wantOK: false},
		{
			name:       "таймаут",
			err:        errs.NewErrRequestTimeout("http://10.0.0.5:80/", context.DeadlineExceeded),
			wantStatus: models.StatusOffline,
		},
		{
			name:       "отказ соединения с диагностикой ICMP",
			err:        errs.NewErrTransport("http://10.0.0.5:80/", errors.New("connection refused")),
			icmp:       true,
			wantStatus: models.StatusOffline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			net := netmocks.NewMockChecker(ctrl)
			client := vapixmocks.NewMockClient(ctrl)

			cfg := newTestConfig()
			cfg.ICMPDiagnostics = tt.icmp

			net.EXPECT().
				CheckHTTP(gomock.Any(), "http://10.0.0.5:80/", time.Second).
				Return(tt.code, tt.err).
				Times(1)

			if tt.icmp {
				net.EXPECT().CheckICMP(gomock.Any(), "10.0.0.5", time.Second).Return(true).Times(1)
			}

			device := newTestDevice()
			checker := NewDeviceChecker(client, net, cfg, nil)

			ok := checker.Poke(context.Background(), device)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStatus, device.Status)
			assert.True(t, device.Checks.Has(models.CheckReachability))
		})
	}
}

// TestCheckStatusesAllStages Проверяет заполнение записи при успешных этапах.
func TestCheckStatusesAllStages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	net := netmocks.NewMockChecker(ctrl)
	client := vapixmocks.NewMockClient(ctrl)

	device := newTestDevice()
	device.Status = models.StatusOnline

	target := vapix.Target{BaseURL: "http://10.0.0.5:80/", Username: "root", Password: "pass", Timeout: 2 * time.Second}

	client.EXPECT().Query(gomock.Any(), target, vapix.SystemReadyRequest).Return(readyBody, nil)
	client.EXPECT().Query(gomock.Any(), target, vapix.RecordingListRequest).Return(recordingBody, nil)
	client.EXPECT().Query(gomock.Any(), target, vapix.ServerListRequest).Return(serverListBody, nil)

	NewDeviceChecker(client, net, newTestConfig(), nil).CheckStatuses(context.Background(), device)

	assert.True(t, device.SystemReady)
	assert.Equal(t, int64(7200), device.UptimeSeconds)
	assert.Equal(t, "2.00 hours", device.Uptime)
	assert.True(t, device.RecordingStatus)
	assert.Equal(t, models.VMSYourSix, device.VMS)
	assert.True(t, device.Checks.Has(models.CheckReadiness|models.CheckRecording|models.CheckVMS))
	assert.False(t, device.Checks.Has(models.CheckDeviceInfo))
	assert.Empty(t, device.Model)
}

// TestCheckStatusesIndependentStages Проверяет, что ошибка одного этапа не мешает остальным.
func TestCheckStatusesIndependentStages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	net := netmocks.NewMockChecker(ctrl)
	client := vapixmocks.NewMockClient(ctrl)

	device := newTestDevice()
	device.Status = models.StatusOnline

	client.EXPECT().Query(gomock.Any(), gomock.Any(), vapix.SystemReadyRequest).
		Return("", errs.NewErrRequestTimeout("http://10.0.0.5:80/axis-cgi/systemready.cgi", context.DeadlineExceeded))
	client.EXPECT().Query(gomock.Any(), gomock.Any(), vapix.RecordingListRequest).
		Return("<html><body>Unauthorized", nil)
	client.EXPECT().Query(gomock.Any(), gomock.Any(), vapix.ServerListRequest).
		Return("root.RemoteService.ServerList.S0.Host=eu.axis.com", nil)

	NewDeviceChecker(client, net, newTestConfig(), nil).CheckStatuses(context.Background(), device)

	assert.False(t, device.SystemReady)
	assert.Empty(t, device.Uptime)
	assert.False(t, device.RecordingStatus)
	assert.Equal(t, models.VMSACSEdge, device.VMS)
	assert.Equal(t, models.CheckVMS, device.Checks)
}

// TestCheckStatusesOfflineDevice Проверяет, что недоступное устройство не опрашивается.
func TestCheckStatusesOfflineDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	net := netmocks.NewMockChecker(ctrl)
	client := vapixmocks.NewMockClient(ctrl)
	client.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, status := range []models.Status{models.StatusOffline, models.StatusUnknown} {
		device := newTestDevice()
		device.Status = status

		NewDeviceChecker(client, net, newTestConfig(), nil).CheckStatuses(context.Background(), device)

		assert.Zero(t, device.Checks)
		assert.Equal(t, models.VMSUnknown, device.VMS)
	}
}

// TestCheckStatusesDeviceInfo Проверяет необязательный этап сведений об устройстве.
func TestCheckStatusesDeviceInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	net := netmocks.NewMockChecker(ctrl)
	client := vapixmocks.NewMockClient(ctrl)

	cfg := newTestConfig()
	cfg.DeviceInfo = true

	device := newTestDevice()
	device.Status = models.StatusOnline

	client.EXPECT().Query(gomock.Any(), gomock.Any(), vapix.SystemReadyRequest).Return(readyBody, nil)
	client.EXPECT().Query(gomock.Any(), gomock.Any(), vapix.RecordingListRequest).Return(recordingBody, nil)
	client.EXPECT().Query(gomock.Any(), gomock.Any(), vapix.ServerListRequest).Return("", errs.ErrEmptyResponse)
	client.EXPECT().Query(gomock.Any(), gomock.Any(), vapix.BasicDeviceInfoRequest).Return(deviceInfoBody, nil)

	NewDeviceChecker(client, net, cfg, nil).CheckStatuses(context.Background(), device)

	assert.Equal(t, "M3106-L", device.Model)
	assert.Equal(t, "9.80.3", device.Firmware)
	assert.Equal(t, models.VMSUnknown, device.VMS)
	assert.True(t, device.Checks.Has(models.CheckDeviceInfo))
	assert.False(t, device.Checks.Has(models.CheckVMS))
}

// TestCheckVMSCustomRules Проверяет подключение внешней таблицы правил.
func TestCheckVMSCustomRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := vapixmocks.NewMockClient(ctrl)
	client.EXPECT().Query(gomock.Any(), gomock.Any(), vapix.ServerListRequest).Return("S0=relay.example.net", nil)

	rules := interpreters.VMSRules{{Token: "example.net", VMS: models.VMSYourSix}}

	vms, err := NewDeviceChecker(client, netmocks.NewMockChecker(ctrl), nil, rules).
		CheckVMS(context.Background(), newTestDevice())

	assert.NoError(t, err)
	assert.Equal(t, models.VMSYourSix, vms)
}
