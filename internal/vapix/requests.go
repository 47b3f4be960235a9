package vapix

import (
	"net/http"
	"time"

	"github.com/trsv-dev/camera-recording-monitor/internal/models"
)

// Target Параметры подключения к устройству для одного запроса.
type Target struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration
}

// NewTarget Конструктор, возвращающий параметры подключения к устройству.
func NewTarget(d *models.Device, timeout time.Duration) Target {
	return Target{
		BaseURL:  d.BaseURL(),
		Username: d.Username,
		Password: d.Password,
		Timeout:  timeout,
	}
}

// Request Описание запроса к CGI устройства.
type Request struct {
	Name        string
	Method      string
	Path        string
	Body        string
	ContentType string
}

const contentTypeJSON = "application/json"

var (
	// SystemReadyRequest Готовность системы и время работы.
	SystemReadyRequest = Request{
		Name:        "systemready",
		Method:      http.MethodPost,
		Path:        "axis-cgi/systemready.cgi",
		Body:        `{"apiVersion":"1.0","method":"systemready","params":{"timeout":1}}`,
		ContentType: contentTypeJSON,
	}

	// RecordingListRequest Список записей (XML).
	RecordingListRequest = Request{
		Name:   "recordings",
		Method: http.MethodGet,
		Path:   "axis-cgi/record/list.cgi?recordingid=all",
	}

	// ServerListRequest Список удалённых серверов, по которому определяется VMS.
	ServerListRequest = Request{
		Name:   "serverlist",
		Method: http.MethodGet,
		Path:   "axis-cgi/admin/param.cgi?action=list&group=root.RemoteService.ServerList",
	}

	// BasicDeviceInfoRequest Модель, прошивка и серийный номер.
	BasicDeviceInfoRequest = Request{
		Name:        "basicdeviceinfo",
		Method:      http.MethodPost,
		Path:        "axis-cgi/basicdeviceinfo.cgi",
		Body:        `{"apiVersion":"1.0","method":"getAllProperties"}`,
		ContentType: contentTypeJSON,
	}
)
