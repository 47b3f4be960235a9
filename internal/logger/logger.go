package logger

// Field Пара ключ-значение для структурированного лога.
type Field struct {
	Key   string
	Value string
}

// Logger Интерфейс логгера, через который пишут все пакеты приложения.
// Для замены реализации достаточно написать адаптер под новый логгер.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
}
