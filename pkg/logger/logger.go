package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. The stub server logs JSON to stdout;
// interactive commands should use NewConsole so log lines stay readable
// next to rendered output.
func New(env string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	l := zerolog.New(os.Stdout).With().Timestamp().Logger()
	return leveled(l, env)
}

// NewConsole builds a human-readable logger writing to w (normally
// os.Stderr, keeping stdout free for command output).
func NewConsole(w io.Writer, env string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	l := zerolog.New(cw).With().Timestamp().Logger()
	return leveled(l, env)
}

func leveled(l zerolog.Logger, env string) zerolog.Logger {
	if env == "dev" {
		return l.Level(zerolog.DebugLevel)
	}
	return l.Level(zerolog.InfoLevel)
}
