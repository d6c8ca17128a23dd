package logger

import (
	"log/slog"
	"os"
)

// Log is the package-level logger. It defaults to a JSON handler so code that
// runs before Init (or under go test) never dereferences a nil logger.
var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Init configures the logger for the given mode. Production keeps Info and
// above; development includes Debug.
func Init(production bool) {
	level := slog.LevelDebug
	if production {
		level = slog.LevelInfo
	}
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
