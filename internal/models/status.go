package models

import (
	"fmt"
	"strings"
)

// Status Доступность устройства по сети.
type Status string

const (
	StatusUnknown Status = ""
	StatusOnline  Status = "Online"
	StatusOffline Status = "Offline"
)

// String Стрингер для Status. Неустановленный статус выводится как Unknown.
func (s Status) String() string {
	if s == StatusUnknown {
		return "Unknown"
	}

	return string(s)
}

// VMSType Система управления видео, к которой подключена камера.
type VMSType int

const (
	VMSUnknown VMSType = iota
	VMSACSEdge
	VMSYourSix
)

var vmsNames = map[VMSType]string{
	VMSUnknown: "Unknown",
	VMSACSEdge: "ACSEdge",
	VMSYourSix: "YourSix",
}

// String Стрингер для VMSType.
func (v VMSType) String() string {
	if name, ok := vmsNames[v]; ok {
		return name
	}

	return vmsNames[VMSUnknown]
}

// ParseVMSType Разбор названия VMS без учёта регистра.
func ParseVMSType(s string) (VMSType, error) {
	for v, name := range vmsNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return v, nil
		}
	}

	return VMSUnknown, fmt.Errorf("неизвестный тип VMS: %q", s)
}

func (v VMSType) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *VMSType) UnmarshalText(text []byte) error {
	parsed, err := ParseVMSType(string(text))
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}

// Check Битовая маска этапов опроса, завершённых в текущем прогоне.
type Check uint8

const (
	CheckReachability Check = 1 << iota
	CheckReadiness
	CheckRecording
	CheckVMS
	CheckDeviceInfo
)

// Has Проверяет, завершён ли этап.
func (c Check) Has(flag Check) bool {
	return c&flag != 0
}
