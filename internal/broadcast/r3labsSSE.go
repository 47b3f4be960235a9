package broadcast

import (
	"fmt"
	"net/http"

	"github.com/r3labs/sse/v2"
)

// R3labsSSEAdapter Адаптер для библиотеки r3labs/sse.
// Обёртка предоставляет Publish/Close и http.Handler для монтирования.
type R3labsSSEAdapter struct {
	srv *sse.Server
}

// NewR3labsSSEAdapter создаёт новый экземпляр адаптера с потоками devices и fleet.
// Реплей отключён: клиент получает только события после подключения,
// текущее состояние доступно через /api/fleet.
func NewR3labsSSEAdapter() *R3labsSSEAdapter {
	srv := sse.New()
	srv.AutoReplay = false

	srv.CreateStream(StreamDevices)
	srv.CreateStream(StreamFleet)

	return &R3labsSSEAdapter{srv: srv}
}

// Publish Публикует событие в указанный поток. Данные передаются в поле Event.Data.
func (a *R3labsSSEAdapter) Publish(topic string, data []byte) error {
	if !knownStream(topic) {
		return fmt.Errorf("%w: %q", ErrUnknownStream, topic)
	}

	a.srv.Publish(topic, &sse.Event{Data: data})
	return nil
}

// Close Закрывает все EventSource соединения.
func (a *R3labsSSEAdapter) Close() error {
	a.srv.Close()
	return nil
}

// HTTPHandler возвращает http.Handler для /events?stream=devices|fleet.
func (a *R3labsSSEAdapter) HTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !knownStream(r.URL.Query().Get("stream")) {
			http.Error(w, "параметр stream должен быть devices или fleet", http.StatusBadRequest)
			return
		}

		a.srv.ServeHTTP(w, r)
	})
}
