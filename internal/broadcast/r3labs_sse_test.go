package broadcast

import (
	"bufio"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/camera-recording-monitor/internal/logger"
)

func init() {
	logger.InitLogger("error", "stdout")
}

// TestBroadcasterInterface Проверяет что адаптеры реализуют интерфейс Broadcaster.
func TestBroadcasterInterface(t *testing.T) {
	var _ Broadcaster = NewR3labsSSEAdapter()
	var _ Broadcaster = NewNoopAdapter()
}

// TestPublishUnknownStream Проверяет отказ публикации в неизвестный поток.
func TestPublishUnknownStream(t *testing.T) {
	adapter := NewR3labsSSEAdapter()
	defer adapter.Close()

	assert.NoError(t, adapter.Publish(StreamFleet, []byte(`{"total":1}`)))
	assert.NoError(t, adapter.Publish(StreamDevices, []byte(`{}`)))

	err := adapter.Publish("user-1:services", []byte(`{}`))
	assert.True(t, errors.Is(err, ErrUnknownStream))
}

// TestHTTPHandlerStreamValidation Проверяет параметр stream.
func TestHTTPHandlerStreamValidation(t *testing.T) {
	adapter := NewR3labsSSEAdapter()
	defer adapter.Close()

	tests := []struct {
		name   string
		target string
	}{
		{name: "без параметра", target: "/events"},
		{name: "неизвестный поток", target: "/events?stream=services"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			adapter.HTTPHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// TestSubscribeAndReceive Проверяет доставку события подписчику.
func TestSubscribeAndReceive(t *testing.T) {
	adapter := NewR3labsSSEAdapter()

	srv := httptest.NewServer(adapter.HTTPHandler())
	defer srv.Close()
	defer adapter.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events?stream=fleet", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	require.NoError(t, adapter.Publish(StreamFleet, []byte(`{"online":3}`)))

	scanner := bufio.NewScanner(resp.Body)
	var data string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "data: ") {
			data = strings.TrimPrefix(line, "data: ")
			break
		}
	}

	assert.Equal(t, `{"online":3}`, data)
}

// TestNoopAdapter Проверяет заглушку.
func TestNoopAdapter(t *testing.T) {
	n := NewNoopAdapter()

	assert.NoError(t, n.Publish(StreamFleet, []byte("x")))
	assert.NoError(t, n.Close())

	rec := httptest.NewRecorder()
	n.HTTPHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events?stream=fleet", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
