package roundtrip

import (
	"strconv"

	. "github.com/cdvelop/tinystring"
)

// FailureKind classifies the three fatal conditions of the harness.
type FailureKind uint8

const (
	// UnsupportedCase: the identifier has no registered entry.
	UnsupportedCase FailureKind = iota + 1
	// DecodeError: the input bytes do not conform to the case schema.
	DecodeError
	// RoundTripMismatch: the decoded value differs from the canonical one.
	RoundTripMismatch
)

func (k FailureKind) String() string {
	switch k {
	case UnsupportedCase:
		return "unsupported case"
	case DecodeError:
		return "decode error"
	case RoundTripMismatch:
		return "round-trip mismatch"
	default:
		return "unknown failure"
	}
}

// Failure is the explicit result for a failed invocation. The library never
// terminates the process; only the c-shared boundary turns a Failure into a
// fatal exit, so the oracle stays testable in-process.
type Failure struct {
	Kind   FailureKind
	CaseID uint8
	Err    error
}

// Error assembles the message by concatenation. Errf renders only the
// literal prefix before the first format verb, so verbs must never reach it;
// every message in this package is built as a complete literal first.
func (f *Failure) Error() string {
	msg := "case " + strconv.Itoa(int(f.CaseID)) + ": " + f.Kind.String()
	if f.Err != nil {
		msg += ": " + f.Err.Error()
	}
	return msg
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// fail builds a Failure whose cause is a ready-made, verb-free message
func fail(kind FailureKind, caseID uint8, msg string) *Failure {
	return &Failure{Kind: kind, CaseID: caseID, Err: Errf(msg)}
}

// panicMessage renders a recovered panic value as a verb-free literal for
// the codec adapters.
func panicMessage(r any) string {
	switch v := r.(type) {
	case error:
		return "panic in decode: " + v.Error()
	case string:
		return "panic in decode: " + v
	default:
		return "panic in decode"
	}
}
