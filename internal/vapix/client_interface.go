package vapix

import "context"

//go:generate mockgen -destination=mocks/mock_client.go -package=mocks . Client

// Client Интерфейс авторизованного клиента VAPIX. Только чтение: клиент не изменяет
// ни состояние устройства, ни запись о нём.
type Client interface {
	Query(ctx context.Context, target Target, req Request) (string, error)
}
