package interpreters

import (
	"fmt"
	"math"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// HumanizeUptime Человекочитаемое время работы устройства.
// Дни и часы выводятся с двумя знаками после запятой без округления вверх,
// минуты округляются до целого (половина - к чётному), секунды выводятся как есть.
func HumanizeUptime(seconds int64) string {
	switch {
	case seconds >= secondsPerDay:
		return truncated(seconds, secondsPerDay) + " days"
	case seconds >= secondsPerHour:
		return truncated(seconds, secondsPerHour) + " hours"
	case seconds >= secondsPerMinute:
		minutes := math.RoundToEven(float64(seconds) / secondsPerMinute)
		return fmt.Sprintf("%d minutes", int64(minutes))
	default:
		return fmt.Sprintf("%d seconds", seconds)
	}
}

// truncated Делит с точностью до сотых, отбрасывая остаток. Целая часть считается
// отдельно, чтобы умножение не переполняло int64 на больших значениях.
func truncated(value, unit int64) string {
	whole := value / unit
	frac := (value % unit) * 100 / unit

	return fmt.Sprintf("%d.%02d", whole, frac)
}
