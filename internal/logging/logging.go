package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a console slog.Logger with the provided level string. When
// filePath is non-empty the same stream is also written to that file, which
// is truncated at startup so each run owns its log. The returned close
// function flushes and releases the file handle.
func New(level, filePath string) (*slog.Logger, func() error, error) {
	out := io.Writer(os.Stdout)
	closeFn := func() error { return nil }

	if filePath != "" {
		file, err := os.Create(filePath)
		if err != nil {
			return nil, nil, err
		}
		out = io.MultiWriter(os.Stdout, file)
		closeFn = file.Close
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: levelFromString(level),
	})
	return slog.New(handler), closeFn, nil
}

func levelFromString(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
