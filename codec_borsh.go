package roundtrip

import (
	. "github.com/cdvelop/tinystring"
	"github.com/near/borsh-go"
)

// borshCodec adapts Borsh to the Codec interface
type borshCodec struct{}

// getDefaultCodec returns the default codec (borsh)
func getDefaultCodec() Codec {
	return &borshCodec{}
}

// Encode expects the struct value itself; Decode expects a pointer target.
// A top-level pointer would serialize as an optional, which is not the
// schema the canonical values use.
func (c *borshCodec) Encode(data any) ([]byte, error) {
	return borsh.Serialize(data)
}

func (c *borshCodec) Decode(data []byte, v any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = Errf(panicMessage(r))
		}
	}()
	return borsh.Deserialize(v, data)
}
