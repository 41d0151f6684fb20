// Package unit provides non-negative durations at fixed time scales.
//
// Every scale is its own type so a Minutes value cannot be passed where Seconds
// are expected. Conversions are explicit methods that scale the magnitude by a
// fixed factor and never round; rounding only happens in Floor and Format.
package unit

import (
	"fmt"
	"math"
	"strconv"
)

// Conversion factors, expressed against one second.
const (
	HundredthsPerSecond = 100
	TenthsPerSecond     = 10
	SecondsPerMinute    = 60
	MinutesPerHour      = 60
	SecondsPerHour      = SecondsPerMinute * MinutesPerHour
)

// magnitude carries the accessors shared by every scale.
type magnitude struct {
	value float64
}

// Value returns the raw magnitude in the scale's own unit.
func (m magnitude) Value() float64 {
	return m.value
}

// Floor returns the magnitude rounded down to a whole unit.
func (m magnitude) Floor() int {
	return int(math.Floor(m.value))
}

// Render substitutes the floored magnitude into f.
func (m magnitude) Render(f Format) string {
	return fmt.Sprintf(f.Template(), m.Floor())
}

func (m magnitude) String() string {
	return strconv.FormatFloat(m.value, 'g', -1, 64)
}

// HundredthsOfSeconds is a duration measured in 1/100 s.
type HundredthsOfSeconds struct{ magnitude }

// NewHundredthsOfSeconds clamps negative input to zero.
func NewHundredthsOfSeconds(v float64) HundredthsOfSeconds {
	return HundredthsOfSeconds{magnitude{nonNegative(v, "hundredths")}}
}

// Seconds converts to whole seconds (÷100).
func (h HundredthsOfSeconds) Seconds() Seconds {
	return NewSeconds(h.value / HundredthsPerSecond)
}

// TenthsOfSeconds is a duration measured in 1/10 s.
type TenthsOfSeconds struct{ magnitude }

// NewTenthsOfSeconds clamps negative input to zero.
func NewTenthsOfSeconds(v float64) TenthsOfSeconds {
	return TenthsOfSeconds{magnitude{nonNegative(v, "tenths")}}
}

// Seconds converts to whole seconds (÷10).
func (t TenthsOfSeconds) Seconds() Seconds {
	return NewSeconds(t.value / TenthsPerSecond)
}

// Seconds is the canonical scale; every other scale converts through it.
type Seconds struct{ magnitude }

// NewSeconds clamps negative input to zero.
func NewSeconds(v float64) Seconds {
	return Seconds{magnitude{nonNegative(v, "seconds")}}
}

func (s Seconds) Hundredths() HundredthsOfSeconds {
	return NewHundredthsOfSeconds(s.value * HundredthsPerSecond)
}

func (s Seconds) Tenths() TenthsOfSeconds {
	return NewTenthsOfSeconds(s.value * TenthsPerSecond)
}

func (s Seconds) Minutes() Minutes {
	return NewMinutes(s.value / SecondsPerMinute)
}

func (s Seconds) Hours() Hours {
	return NewHours(s.value / SecondsPerHour)
}

// Minutes is a duration measured in minutes.
type Minutes struct{ magnitude }

// NewMinutes clamps negative input to zero.
func NewMinutes(v float64) Minutes {
	return Minutes{magnitude{nonNegative(v, "minutes")}}
}

func (m Minutes) Seconds() Seconds {
	return NewSeconds(m.value * SecondsPerMinute)
}

func (m Minutes) Hours() Hours {
	return NewHours(m.value / MinutesPerHour)
}

// Hours is a duration measured in hours.
type Hours struct{ magnitude }

// NewHours clamps negative input to zero.
func NewHours(v float64) Hours {
	return Hours{magnitude{nonNegative(v, "hours")}}
}

func (h Hours) Minutes() Minutes {
	return NewMinutes(h.value * MinutesPerHour)
}

func (h Hours) Seconds() Seconds {
	return NewSeconds(h.value * SecondsPerHour)
}
