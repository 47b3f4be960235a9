package vapix

import (
	"mime"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

// decodeBody Декодирует тело ответа по кодировке из Content-Type.
// Неизвестная или некорректная кодировка не считается ошибкой: тело читается как UTF-8.
func decodeBody(raw []byte, contentType string) string {
	label := charsetLabel(contentType)
	if label == "" {
		return toUTF8(raw)
	}

	enc, name := charset.Lookup(label)
	if enc == nil || name == "utf-8" {
		return toUTF8(raw)
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return toUTF8(raw)
	}

	return string(decoded)
}

// charsetLabel Извлекает параметр charset. Встроенные веб-серверы отдают "utf8" вместо "utf-8".
func charsetLabel(contentType string) string {
	if contentType == "" {
		return ""
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}

	label := strings.ToLower(strings.Trim(strings.TrimSpace(params["charset"]), `"`))
	if label == "utf8" {
		label = "utf-8"
	}

	return label
}

func toUTF8(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}
