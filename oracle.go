// Package roundtrip is a conformance harness for a binary serialization
// format: it decodes a caller-supplied buffer into the type registered for a
// small test-case id, asserts exact structural equality against that case's
// canonical value, and returns the canonical value re-encoded.
package roundtrip

import (
	"reflect"
	"strconv"

	. "github.com/cdvelop/tinystring"
)

// Oracle performs the decode → compare → re-encode check for one invocation.
// It holds no mutable state after construction, so a single instance is safe
// for concurrent callers.
type Oracle struct {
	config *Config
	cases  []Case
	codec  Codec
	log    func(...any) // Never nil - uses no-op by default
}

// noopLogger is the default logger that does nothing
func noopLogger(...any) {}

// New creates a new Oracle with configuration
func New(cfg *Config) *Oracle {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Assign default codec if not provided
	codec := cfg.Codec
	if codec == nil {
		codec = getDefaultCodec()
	}

	return &Oracle{
		config: cfg,
		cases:  builtinCases(),
		codec:  codec,
		log:    noopLogger, // Logger disabled by default
	}
}

// SetLogger configures a custom logging function
// Pass nil to restore no-op logger
func (o *Oracle) SetLogger(logger func(...any)) {
	if logger == nil {
		o.log = noopLogger
		return
	}
	o.log = logger
}

// DisableLogger disables logging
func (o *Oracle) DisableLogger() {
	o.log = noopLogger
}

// Config returns the current configuration (read-only)
func (o *Oracle) Config() *Config {
	return o.config
}

// Codec returns the current codec
func (o *Oracle) Codec() Codec {
	return o.codec
}

// Run checks one (id, input) pair and produces the output buffer.
// Failures come back as *Failure values; Run itself never terminates the
// process and has no side effect beyond the returned bytes.
func (o *Oracle) Run(id uint8, input []byte) ([]byte, error) {
	c, err := o.Resolve(id)
	if err != nil {
		return nil, err
	}
	o.log("run case", c.Name, "input bytes:", len(input))

	target := c.New()
	if err := o.codec.Decode(input, target); err != nil {
		return nil, &Failure{Kind: DecodeError, CaseID: id, Err: err}
	}
	decoded := deref(target)

	// The codecs read from the front of the buffer and silently ignore
	// surplus bytes, so re-encoding the decoded value recovers how many
	// bytes the decode actually consumed.
	consumed, err := o.codec.Encode(decoded)
	if err != nil {
		return nil, fail(DecodeError, id, "re-encode of decoded "+c.Name+" value failed: "+err.Error())
	}
	if len(consumed) != len(input) {
		return nil, fail(DecodeError, id,
			"input is "+strconv.Itoa(len(input))+" bytes but case "+c.Name+
				" consumes "+strconv.Itoa(len(consumed)))
	}

	if !reflect.DeepEqual(decoded, c.Canonical) {
		return nil, fail(RoundTripMismatch, id,
			"decoded "+c.Name+" value differs from the canonical one")
	}

	// Re-encode the canonical value, not the decoded one: equality was just
	// asserted, and the canonical bytes stay independent of any
	// non-canonical encoding quirk in the input.
	output, err := o.codec.Encode(c.Canonical)
	if err != nil {
		return nil, Errf("encode canonical " + c.Name + " value: " + err.Error())
	}
	return output, nil
}

// deref unwraps the decode target so comparison and re-encode see the struct
// value, matching how Canonical is stored.
func deref(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return rv.Elem().Interface()
	}
	return v
}
