package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders an operation or ETA duration in the
// sub-second unit matching its magnitude, truncated, so single-limb products
// still show in nanoseconds. From one second up it falls back to
// time.Duration's own form at millisecond precision. Negative durations,
// which an ETA can briefly produce, are shown as zero.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "0s"
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Millisecond).String()
}
