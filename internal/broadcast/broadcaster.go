package broadcast

import (
	"errors"
	"net/http"
)

//go:generate mockgen -destination=mocks/broadcast_mock.go -package=mocks . Broadcaster

// Потоки событий.
const (
	// StreamDevices Статус устройства после завершения его опроса.
	StreamDevices = "devices"
	// StreamFleet Сводка завершённого прогона.
	StreamFleet = "fleet"
)

var (
	ErrUnknownStream = errors.New("неизвестный поток событий")
)

type Broadcaster interface {
	HTTPHandler() http.Handler
	Publish(topic string, data []byte) error
	Close() error
}

// knownStream Проверяет название потока.
func knownStream(stream string) bool {
	switch stream {
	case StreamDevices, StreamFleet:
		return true
	default:
		return false
	}
}
