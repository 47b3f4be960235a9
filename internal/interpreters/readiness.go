package interpreters

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/trsv-dev/camera-recording-monitor/internal/errs"
)

const systemReadyEndpoint = "systemready"

// Readiness Результат разбора ответа systemready.cgi.
type Readiness struct {
	Ready         bool
	UptimeSeconds int64
	Uptime        string
}

type systemReadyResponse struct {
	Data *struct {
		SystemReady *string `json:"systemready"`
		Uptime      *string `json:"uptime"`
	} `json:"data"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ParseSystemReady Разбирает ответ systemready.cgi.
// Нечисловое время работы считается нулём, отсутствие обязательных полей - ошибкой.
func ParseSystemReady(body string) (Readiness, error) {
	var resp systemReadyResponse

	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return Readiness{}, errs.NewErrMalformedResponse(systemReadyEndpoint, err)
	}

	if resp.Error != nil {
		return Readiness{}, errs.NewErrMalformedResponse(systemReadyEndpoint,
			fmt.Errorf("устройство вернуло ошибку %d: %s", resp.Error.Code, resp.Error.Message))
	}

	if resp.Data == nil || resp.Data.SystemReady == nil || resp.Data.Uptime == nil {
		return Readiness{}, errs.NewErrMalformedResponse(systemReadyEndpoint,
			errors.New("в ответе нет полей data.systemready и data.uptime"))
	}

	uptime, err := strconv.ParseInt(strings.TrimSpace(*resp.Data.Uptime), 10, 64)
	if err != nil || uptime < 0 {
		uptime = 0
	}

	return Readiness{
		Ready:         strings.EqualFold(strings.TrimSpace(*resp.Data.SystemReady), "yes"),
		UptimeSeconds: uptime,
		Uptime:        HumanizeUptime(uptime),
	}, nil
}
