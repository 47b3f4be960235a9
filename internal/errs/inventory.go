package errs

import "fmt"

// ErrInventoryLine Кастомная ошибка, сообщающая о строке списка устройств, которая была пропущена.
type ErrInventoryLine struct {
	Line   int
	Fields int
}

func (il *ErrInventoryLine) Error() string {
	return fmt.Sprintf("строка %d пропущена: полей %d, требуется минимум 6", il.Line, il.Fields)
}

func NewErrInventoryLine(line, fields int) *ErrInventoryLine {
	return &ErrInventoryLine{
		Line:   line,
		Fields: fields,
	}
}
