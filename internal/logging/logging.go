// Package logging sets up the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
)

// Init sets up the global slog logger with a JSON handler, matching the
// ambient logging style used throughout the service.
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))
}
