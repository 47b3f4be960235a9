package netutils

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_network_checker.go -package=mocks . Checker

// Checker Интерфейс для проверки доступности устройства по сети.
type Checker interface {
	// CheckHTTP Отправляет HEAD-запрос и возвращает код ответа. Ошибка означает, что
	// HTTP-ответ не был получен (таймаут или ошибка соединения).
	CheckHTTP(ctx context.Context, url string, timeout time.Duration) (int, error)
	// CheckICMP Проверяет ответ хоста на ICMP-запросы.
	CheckICMP(ctx context.Context, address string, timeout time.Duration) bool
}
