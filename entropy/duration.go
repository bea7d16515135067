package entropy

import (
	"fmt"
	"math"
	"strconv"
)

var units = []struct {
	threshold float64
	label     string
}{
	{60, "minute"},
	{60, "hour"},
	{24, "day"},
	{30, "month"},
	{12, "year"},
}

// FormatDuration renders seconds in the largest unit, up to years, that the
// value reaches, rounded to one decimal place.
func FormatDuration(seconds float64) string {
	if seconds < 1 {
		return "<1 second"
	}

	label := "second"
	value := seconds

	for _, unit := range units {
		if value < unit.threshold {
			break
		}

		value /= unit.threshold
		label = unit.label
	}

	rounded := math.Round(value*10) / 10

	suffix := "s"
	if rounded == 1 {
		suffix = ""
	}

	return fmt.Sprintf("%s %s%s", formatNumber(rounded), label, suffix)
}

func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case v >= 1e21:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}
