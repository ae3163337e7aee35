package timeexchange

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

func logColors(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if !isatty.IsTerminal(f.Fd()) {
		return false
	}

	return os.Getenv("TERM") != "dumb"
}

func logLevel(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// GetSlogHandler returns the console handler, colored only when out is a terminal.
func GetSlogHandler(debug bool, out io.Writer) slog.Handler {
	return tint.NewHandler(out, &tint.Options{
		AddSource: debug,
		Level:     logLevel(debug),
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if _, ok := attr.Value.Any().(error); attr.Key == "err" || ok {
				return tint.Attr(9, attr)
			}
			return attr
		},
		TimeFormat: time.RFC3339,
		NoColor:    !logColors(out),
	})
}

// NewLogHandler returns the console handler, fanned out to a rotating JSON
// log file inside logDir when logDir is set. The returned closer releases the
// log file.
func NewLogHandler(debug bool, out io.Writer, logDir string) (slog.Handler, io.Closer, error) {
	console := GetSlogHandler(debug, out)
	if logDir == "" {
		return console, nopCloser{}, nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("could not create log dir: %w", err)
	}
	file := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, Name+".log"),
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		Compress:   true,
	}
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: logLevel(debug)})

	return slogmulti.Fanout(console, fileHandler), file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
