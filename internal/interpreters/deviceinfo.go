package interpreters

import (
	"encoding/json"
	"errors"

	"github.com/trsv-dev/camera-recording-monitor/internal/errs"
)

const basicDeviceInfoEndpoint = "basicdeviceinfo"

// DeviceInfo Модель, прошивка и серийный номер устройства.
type DeviceInfo struct {
	Model    string
	Firmware string
	Serial   string
}

type basicDeviceInfoResponse struct {
	Data *struct {
		PropertyList map[string]any `json:"propertyList"`
	} `json:"data"`
}

// ParseBasicDeviceInfo Разбирает ответ basicdeviceinfo.cgi (метод getAllProperties).
func ParseBasicDeviceInfo(body string) (DeviceInfo, error) {
	var resp basicDeviceInfoResponse

	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return DeviceInfo{}, errs.NewErrMalformedResponse(basicDeviceInfoEndpoint, err)
	}

	if resp.Data == nil || resp.Data.PropertyList == nil {
		return DeviceInfo{}, errs.NewErrMalformedResponse(basicDeviceInfoEndpoint,
			errors.New("в ответе нет поля data.propertyList"))
	}

	props := resp.Data.PropertyList

	return DeviceInfo{
		Model:    property(props, "ProdNbr"),
		Firmware: property(props, "Version"),
		Serial:   property(props, "SerialNumber"),
	}, nil
}

// property Возвращает строковое свойство или пустую строку.
func property(props map[string]any, name string) string {
	value, _ := props[name].(string)
	return value
}
