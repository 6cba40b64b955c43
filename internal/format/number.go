package format

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatNumberString inserts thousands separators into a string of decimal
// digits with an optional leading minus sign.
func FormatNumberString(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 1)
	b.WriteString(sign)
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatRate renders a per-second throughput: two decimals below 10,
// otherwise a rounded integer with thousands separators.
func FormatRate(perSecond float64) string {
	switch {
	case !(perSecond > 0):
		return "0"
	case perSecond < 10:
		return strconv.FormatFloat(perSecond, 'f', 2, 64)
	}
	return FormatNumberString(strconv.FormatFloat(math.Round(perSecond), 'f', 0, 64))
}

// Throughput returns n events over d as a per-second rate, or zero when d
// is not positive.
func Throughput(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}
