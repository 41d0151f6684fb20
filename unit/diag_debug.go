//go:build debug

package unit

import "log/slog"

func init() {
	SetDiagnostics(slog.Default())
}
