package timer

import (
	"fmt"
	"strings"
)

// Mode selects which way a timer steps.
type Mode int8

const (
	CountDown Mode = -1
	Idle      Mode = 0
	CountUp   Mode = 1
)

func (m Mode) String() string {
	switch m {
	case CountDown:
		return "countdown"
	case Idle:
		return "idle"
	case CountUp:
		return "countup"
	default:
		return fmt.Sprintf("Mode(%d)", int8(m))
	}
}

// ParseMode accepts countdown, countup, and idle (or none).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "countdown", "down":
		return CountDown, nil
	case "countup", "up":
		return CountUp, nil
	case "idle", "none", "":
		return Idle, nil
	}
	return Idle, fmt.Errorf("unknown timer mode %q", s)
}

func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case CountDown, Idle, CountUp:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("unknown timer mode %d", int8(m))
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
