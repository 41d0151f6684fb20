package unit

import (
	"log/slog"
	"math"
	"sync/atomic"
)

var diagnostics atomic.Pointer[slog.Logger]

// SetDiagnostics installs the logger that receives clamp warnings.
// A nil logger removes the sink. The sink only observes; clamped values
// are the same with or without it.
func SetDiagnostics(logger *slog.Logger) {
	diagnostics.Store(logger)
}

// nonNegative clamps negative and non-finite input to zero.
func nonNegative(v float64, scale string) float64 {
	switch {
	case v > 0 && !math.IsInf(v, 1):
		return v
	case v == 0:
		return 0
	}
	if logger := diagnostics.Load(); logger != nil {
		msg := "there is no such thing as negative time, clamping to zero"
		if math.IsInf(v, 1) || math.IsNaN(v) {
			msg = "time must be finite, clamping to zero"
		}
		logger.Warn(msg, slog.String("scale", scale), slog.Float64("value", v))
	}
	return 0
}
