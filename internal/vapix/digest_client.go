package vapix

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/icholy/digest"

	"github.com/trsv-dev/camera-recording-monitor/internal/errs"
)

const (
	// maxBodySize Ответы статусных CGI занимают единицы килобайт.
	maxBodySize = 1 << 20

	// maxConnsPerHost Встроенный веб-сервер камеры плохо переносит параллельные соединения.
	maxConnsPerHost = 2
)

// DigestClient Клиент VAPIX с Digest-авторизацией. Пул соединений общий для всех устройств,
// учётные данные передаются в каждом запросе через Target.
type DigestClient struct {
	transport http.RoundTripper
}

// NewDigestClient Конструктор, возвращающий клиент с общим пулом соединений.
func NewDigestClient() *DigestClient {
	return NewDigestClientWithTransport(&http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxConnsPerHost:     maxConnsPerHost,
		MaxIdleConnsPerHost: maxConnsPerHost,
		IdleConnTimeout:     90 * time.Second,
	})
}

// NewDigestClientWithTransport Конструктор для подмены транспорта (тесты, прокси).
func NewDigestClientWithTransport(rt http.RoundTripper) *DigestClient {
	return &DigestClient{transport: rt}
}

// Query Выполняет запрос к CGI устройства и возвращает декодированное тело ответа.
func (c *DigestClient) Query(ctx context.Context, target Target, req Request) (string, error) {
	url := strings.TrimRight(target.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")

	if target.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, target.Timeout)
		defer cancel()
	}

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return "", errs.NewErrTransport(url, err)
	}

	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}

	client := &http.Client{
		Transport: &digest.Transport{
			Username:  target.Username,
			Password:  target.Password,
			Transport: c.transport,
		},
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return "", errs.FromTransport(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return "", errs.NewErrRequestFailed(url, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", errs.FromTransport(url, err)
	}

	text := decodeBody(raw, resp.Header.Get("Content-Type"))
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: %w", url, errs.ErrEmptyResponse)
	}

	return text, nil
}
