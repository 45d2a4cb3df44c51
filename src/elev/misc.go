package elev

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"sweepsim/src/types"
)

// InitLogger installs the default slog logger. When logPath is set, output is also
// written to that file, truncated on every run.
func InitLogger(level slog.Level, logPath string) error {
	var out io.Writer = os.Stderr
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stderr, logFile)
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})

	slog.SetDefault(slog.New(handler))
	return nil
}

// FormatEvent renders an event as a human-readable line.
func FormatEvent(evt types.Event) string {
	switch evt.Kind {
	case types.Board:
		return fmt.Sprintf("%s gets on the elevator at floor %d", evt.Name, evt.Floor)
	case types.Disembark:
		return fmt.Sprintf("%s got off the elevator at floor %d", evt.Name, evt.Floor)
	case types.Move:
		return fmt.Sprintf("Elevator moving %s", evt.Dir)
	}
	return "Unknown"
}
