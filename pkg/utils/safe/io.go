package safe

import (
	"io"
	"log/slog"

	"github.com/nicepulls/nicepulls/pkg/utils/logging"
)

// Close closes the resource and logs the error, if any. A nil closer and
// io.EOF are fine.
func Close(closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil && err != io.EOF {
		logging.Default().Warn("Fail to close resource", slog.Any("error", err))
	}
}
