package netutils

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/prometheus-community/pro-bing"
	"github.com/trsv-dev/camera-recording-monitor/internal/errs"
)

const DefaultHostTimeout = 5 * time.Second

// NetworkChecker Реализация проверки доступности.
type NetworkChecker struct {
	client     *http.Client
	privileged bool
}

// NewNetworkChecker Конструктор. Один http.Client на все проверки, таймаут задаётся на каждый запрос.
func NewNetworkChecker() *NetworkChecker {
	return &NetworkChecker{
		client:     &http.Client{},
		privileged: true,
	}
}

// NewNetworkCheckerWithClient Конструктор с заданным http.Client.
func NewNetworkCheckerWithClient(client *http.Client) *NetworkChecker {
	return &NetworkChecker{
		client: client,
	}
}

// CheckHTTP Метод отправляет HEAD-запрос на url в пределах заданного таймаута.
// Любой полученный HTTP-ответ означает, что устройство доступно. Если timeout <= 0 -
// используется DefaultHostTimeout.
func (nc *NetworkChecker) CheckHTTP(ctx context.Context, url string, timeout time.Duration) (int, error) {
	if timeout <= 0 {
		timeout = DefaultHostTimeout
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodHead, url, nil)
	if err != nil {
		return 0, errs.NewErrTransport(url, err)
	}

	resp, err := nc.client.Do(req)
	if err != nil {
		return 0, errs.FromTransport(url, err)
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	return resp.StatusCode, nil
}

// CheckICMP Метод отправляет ICMP-запросы на указанный адрес и ожидает ответ
// в пределах заданного таймаута. Успешный ответ означает, что хост
// доступен на сетевом уровне. Если timeout <= 0 - используется DefaultHostTimeout.
func (nc *NetworkChecker) CheckICMP(ctx context.Context, address string, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultHostTimeout
	}

	pinger, err := probing.NewPinger(address)
	if err != nil {
		return false
	}

	pinger.SetPrivileged(nc.privileged)

	pinger.Count = 3
	pinger.Timeout = timeout

	// канал ёмкостью 1, чтобы горутина пингера не зависла после выхода по контексту
	pingerDone := make(chan bool, 1)

	go func() {
		defer close(pingerDone)

		if pingerErr := pinger.Run(); pingerErr != nil {
			pingerDone <- false
			return
		}

		pingerDone <- pinger.Statistics().PacketsRecv > 0
	}()

	select {
	case <-ctx.Done():
		pinger.Stop()
		return false
	case ok := <-pingerDone:
		return ok
	}
}
