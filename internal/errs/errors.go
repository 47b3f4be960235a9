package errs

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrEmptyResponse Устройство ответило успешным статусом, но с пустым телом.
var ErrEmptyResponse = errors.New("устройство вернуло пустой ответ")

// ErrRequestFailed Кастомная ошибка, сообщающая о неуспешном HTTP статусе ответа устройства.
type ErrRequestFailed struct {
	URL        string
	StatusCode int
}

func (rf *ErrRequestFailed) Error() string {
	return fmt.Sprintf("запрос %s завершился со статусом %d", rf.URL, rf.StatusCode)
}

func NewErrRequestFailed(url string, statusCode int) *ErrRequestFailed {
	return &ErrRequestFailed{
		URL:        url,
		StatusCode: statusCode,
	}
}

// ErrRequestTimeout Кастомная ошибка, сообщающая о превышении времени ожидания ответа.
type ErrRequestTimeout struct {
	URL string
	Err error
}

func (rt *ErrRequestTimeout) Error() string {
	return fmt.Sprintf("превышено время ожидания ответа от %s. Ошибка: %v", rt.URL, rt.Err)
}

func (rt *ErrRequestTimeout) Unwrap() error {
	return rt.Err
}

func NewErrRequestTimeout(url string, err error) *ErrRequestTimeout {
	return &ErrRequestTimeout{
		URL: url,
		Err: err,
	}
}

// ErrTransport Кастомная ошибка сетевого уровня (отказ в соединении, DNS, TLS).
type ErrTransport struct {
	URL string
	Err error
}

func (tr *ErrTransport) Error() string {
	return fmt.Sprintf("ошибка соединения с %s. Ошибка: %v", tr.URL, tr.Err)
}

func (tr *ErrTransport) Unwrap() error {
	return tr.Err
}

func NewErrTransport(url string, err error) *ErrTransport {
	return &ErrTransport{
		URL: url,
		Err: err,
	}
}

// ErrMalformedResponse Кастомная ошибка, сообщающая о структурно некорректном теле ответа.
type ErrMalformedResponse struct {
	Endpoint string
	Err      error
}

func (mr *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("некорректный ответ %s. Ошибка: %v", mr.Endpoint, mr.Err)
}

func (mr *ErrMalformedResponse) Unwrap() error {
	return mr.Err
}

func NewErrMalformedResponse(endpoint string, err error) *ErrMalformedResponse {
	return &ErrMalformedResponse{
		Endpoint: endpoint,
		Err:      err,
	}
}

// FromTransport Классифицирует ошибку http.Client.Do: таймаут или ошибка соединения.
func FromTransport(url string, err error) error {
	var netErr net.Error

	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return NewErrRequestTimeout(url, err)
	}

	return NewErrTransport(url, err)
}

// Виды ошибок для структурированного лога.
const (
	KindTransport = "transport"
	KindTimeout   = "timeout"
	KindProtocol  = "protocol"
	KindEmpty     = "empty"
	KindUnknown   = "unknown"
)

// Kind Возвращает вид ошибки опроса устройства.
func Kind(err error) string {
	var (
		requestFailed *ErrRequestFailed
		malformed     *ErrMalformedResponse
		timeout       *ErrRequestTimeout
		transport     *ErrTransport
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &timeout):
		return KindTimeout
	case errors.As(err, &transport):
		return KindTransport
	case errors.As(err, &requestFailed), errors.As(err, &malformed):
		return KindProtocol
	case errors.Is(err, ErrEmptyResponse):
		return KindEmpty
	default:
		return KindUnknown
	}
}
