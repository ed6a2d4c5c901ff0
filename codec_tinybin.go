package roundtrip

import (
	"github.com/cdvelop/tinybin"
	. "github.com/cdvelop/tinystring"
)

// tinybinCodec adapts TinyBin to the Codec interface
type tinybinCodec struct {
	tb *tinybin.TinyBin
}

// NewTinyBinCodec returns a Codec backed by the TinyBin serializer.
// Swapping it in via Config proves the oracle has no opinion on the wire
// layout, only on round-trip exactness.
func NewTinyBinCodec() Codec {
	return &tinybinCodec{
		tb: tinybin.New(),
	}
}

func (c *tinybinCodec) Encode(data any) ([]byte, error) {
	return c.tb.Encode(data)
}

func (c *tinybinCodec) Decode(data []byte, v any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = Errf(panicMessage(r))
		}
	}()
	return c.tb.Decode(data, v)
}
