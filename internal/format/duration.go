package format

import (
	"strconv"
	"time"
)

// FormatExecutionDuration renders d with about three significant digits in
// the largest unit that keeps the value at or above one, e.g. "840ns",
// "12.4µs", "3.07ms" or "1.52s". From a minute on, d is rounded to the
// second and printed as time.Duration does.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < 0:
		return "-" + FormatExecutionDuration(-d)
	case d < time.Microsecond:
		return strconv.FormatInt(d.Nanoseconds(), 10) + "ns"
	case d < time.Millisecond:
		return scaled(d, time.Microsecond, "µs")
	case d < time.Second:
		return scaled(d, time.Millisecond, "ms")
	case d < time.Minute:
		return scaled(d, time.Second, "s")
	}
	return d.Round(time.Second).String()
}

func scaled(d, unit time.Duration, suffix string) string {
	v := float64(d) / float64(unit)
	prec := 2
	switch {
	case v >= 100:
		prec = 0
	case v >= 10:
		prec = 1
	}
	return strconv.FormatFloat(v, 'f', prec, 64) + suffix
}
