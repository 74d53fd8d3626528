package safe_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/nicepulls/nicepulls/pkg/utils/safe"
)

type closer struct {
	err    error
	closed bool
}

func (x *closer) Close() error {
	x.closed = true
	return x.err
}

func TestClose(t *testing.T) {
	t.Run("close valid reader", func(t *testing.T) {
		safe.Close(io.NopCloser(bytes.NewReader([]byte("test"))))
	})

	t.Run("nil closer", func(t *testing.T) {
		safe.Close(nil)
	})

	t.Run("close errors are swallowed", func(t *testing.T) {
		for _, err := range []error{io.ErrUnexpectedEOF, io.EOF} {
			c := &closer{err: err}
			safe.Close(c)
			if !c.closed {
				t.Error("closer was not closed")
			}
		}
	})
}
