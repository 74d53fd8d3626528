package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/clog/hooks"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func init() {
	_ = Configure("text", "info", "stderr")
}

// Default is the logger used when a context carries none.
func Default() *slog.Logger {
	return defaultLogger
}

// newFilter masks credentials wherever they show up in a record.
func newFilter() func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(
		masq.WithTag("secret"),
		masq.WithType[types.GitHubAppSecret](masq.MaskWithSymbol('*', 64)),
		masq.WithType[types.GitHubAppPrivateKey](masq.MaskWithSymbol('*', 16)),
		masq.WithType[types.GitHubToken](masq.MaskWithSymbol('*', 16)),
	)
}

var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// logFile is the file opened by the last Configure call, if any.
var logFile *os.File

func openOutput(logOutput string) (io.Writer, *os.File, error) {
	switch logOutput {
	case "stdout", "-":
		return os.Stdout, nil, nil
	case "stderr":
		return os.Stderr, nil, nil
	}

	fd, err := os.OpenFile(filepath.Clean(logOutput), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", logOutput))
	}
	return fd, fd, nil
}

// Configure replaces the default logger. logOutput is stdout, stderr or a file
// path; log files are appended to and closed on the next Configure call.
func Configure(logFormat, logLevel, logOutput string) error {
	level, ok := levels[logLevel]
	if !ok {
		return goerr.Wrap(types.ErrInvalidOption, "invalid log level", goerr.V("value", logLevel))
	}
	if logFormat != "text" && logFormat != "json" {
		return goerr.Wrap(types.ErrInvalidOption, "invalid log format, should be 'json' or 'text'", goerr.V("value", logFormat))
	}

	w, fd, err := openOutput(logOutput)
	if err != nil {
		return err
	}

	filter := newFilter()
	var handler slog.Handler
	if logFormat == "json" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: filter,
		})
	} else {
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithSource(true),
			clog.WithColorMap(&clog.ColorMap{
				Level: map[slog.Level]*color.Color{
					slog.LevelDebug: color.New(color.FgGreen, color.Bold),
					slog.LevelInfo:  color.New(color.FgCyan, color.Bold),
					slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
					slog.LevelError: color.New(color.FgRed, color.Bold),
				},
				LevelDefault: color.New(color.FgBlue, color.Bold),
				Time:         color.New(color.FgWhite),
				Message:      color.New(color.FgHiWhite),
				AttrKey:      color.New(color.FgHiCyan),
				AttrValue:    color.New(color.FgHiWhite),
			}),
			clog.WithAttrHook(hooks.GoErr()),
			clog.WithReplaceAttr(filter),
		)
	}

	defaultLogger = slog.New(handler)
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = fd

	return nil
}
