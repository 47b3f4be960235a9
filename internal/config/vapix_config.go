package config

import "time"

// VAPIXConfig Параметры опроса камер по VAPIX.
type VAPIXConfig struct {
	PokeTimeout     time.Duration
	QueryTimeout    time.Duration
	ICMPDiagnostics bool
	DeviceInfo      bool
}

// NewVAPIXConfig Конструктор, возвращающий параметры опроса камер из общей конфигурации.
func NewVAPIXConfig(cfg *Config) *VAPIXConfig {
	return &VAPIXConfig{
		PokeTimeout:     cfg.PokeTimeout,
		QueryTimeout:    cfg.QueryTimeout,
		ICMPDiagnostics: cfg.ICMPDiagnostics,
		DeviceInfo:      cfg.DeviceInfo,
	}
}

// DefaultVAPIXConfig Значения по умолчанию: 5 секунд на проверку доступности, 10 на запрос.
func DefaultVAPIXConfig() *VAPIXConfig {
	return &VAPIXConfig{
		PokeTimeout:  5 * time.Second,
		QueryTimeout: 10 * time.Second,
	}
}
