package models

import (
	"fmt"
	"net"
	"strconv"
)

// Device Модель камеры из списка устройств и наблюдаемое в текущем прогоне состояние.
// Учётные данные используются только для авторизации на устройстве и не сериализуются.
type Device struct {
	SiteName   string `json:"siteName"`
	DeviceName string `json:"deviceName"`
	Host       string `json:"host"`
	Port       string `json:"port"`
	Username   string `json:"-"`
	Password   string `json:"-"`

	Status          Status  `json:"status"`
	UptimeSeconds   int64   `json:"uptimeSeconds"`
	Uptime          string  `json:"uptime"`
	SystemReady     bool    `json:"systemReady"`
	RecordingStatus bool    `json:"recordingStatus"`
	VMS             VMSType `json:"vms"`
	Model           string  `json:"model,omitempty"`
	Firmware        string  `json:"firmware,omitempty"`

	// Checks Этапы, успешно завершённые в текущем прогоне.
	Checks Check `json:"checks"`
}

// NewDevice Конструктор. Валидация не выполняется: некорректный адрес проявится при опросе.
func NewDevice(siteName, deviceName, host, port, username, password string) *Device {
	return &Device{
		SiteName:   siteName,
		DeviceName: deviceName,
		Host:       host,
		Port:       port,
		Username:   username,
		Password:   password,
	}
}

// About Человекочитаемое описание устройства.
func (d *Device) About(includeCreds bool) string {
	about := fmt.Sprintf("%s: %s (%s:%s)", d.SiteName, d.DeviceName, d.Host, d.Port)
	if includeCreds {
		about += fmt.Sprintf(" login: %s, %s", d.Username, d.Password)
	}

	return about
}

// AboutCSV Строка отчёта. С учётными данными - строка в формате списка устройств со статусом.
func (d *Device) AboutCSV(includeCreds bool) string {
	if includeCreds {
		return fmt.Sprintf("%s,%s,%s,%s,%s,%s,%s",
			d.SiteName, d.DeviceName, d.Host, d.Port, d.Username, d.Password, d.Status)
	}

	return fmt.Sprintf("%s,%s,%s,%s,%s",
		d.SiteName, d.DeviceName, d.Status, strconv.FormatBool(d.RecordingStatus), d.VMS)
}

// BaseURL Адрес веб-интерфейса устройства вида http://host:port/.
func (d *Device) BaseURL() string {
	return "http://" + net.JoinHostPort(d.Host, d.Port) + "/"
}

// Key Идентификатор устройства в пределах отчёта.
func (d *Device) Key() string {
	return d.SiteName + "/" + d.DeviceName
}

// ResetObservations Сбрасывает наблюдаемое состояние перед новым прогоном.
func (d *Device) ResetObservations() {
	d.Status = StatusUnknown
	d.UptimeSeconds = 0
	d.Uptime = ""
	d.SystemReady = false
	d.RecordingStatus = false
	d.VMS = VMSUnknown
	d.Model = ""
	d.Firmware = ""
	d.Checks = 0
}

// Snapshot Копия устройства без учётных данных для отчётов и публикации.
func (d *Device) Snapshot() Device {
	c := *d
	c.Username = ""
	c.Password = ""

	return c
}
