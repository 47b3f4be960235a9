package broadcast

import (
	"net/http"
)

// NoopAdapter Заглушка для разового запуска без HTTP сервера.
// Реализует интерфейс Broadcaster, но не делает ничего.
type NoopAdapter struct{}

// NewNoopAdapter создаёт новый экземпляр "пустого" адаптера.
func NewNoopAdapter() *NoopAdapter {
	return &NoopAdapter{}
}

// Publish ничего не делает и всегда возвращает nil.
func (n *NoopAdapter) Publish(topic string, data []byte) error {
	return nil
}

// Close ничего не делает и всегда возвращает nil.
func (n *NoopAdapter) Close() error {
	return nil
}

// HTTPHandler возвращает http.Handler, который просто отвечает 404 Not Found.
func (n *NoopAdapter) HTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
}
