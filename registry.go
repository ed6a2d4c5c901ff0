package roundtrip

import "strconv"

// Case associates one test-case identifier with a concrete payload type:
// one immutable canonical instance of it plus a factory for fresh decode
// targets. The table is fixed at build time; an id is never overloaded with
// more than one type.
type Case struct {
	ID        uint8
	Name      string
	Canonical any        // the struct value itself, never mutated
	New       func() any // pointer to a zero value of the same type
}

// Resolve returns the registered case for id.
// Uses a slice indexed by id instead of a map for TinyGo compatibility.
func (o *Oracle) Resolve(id uint8) (*Case, error) {
	if int(id) >= len(o.cases) {
		return nil, fail(UnsupportedCase, id, "no case registered for id "+strconv.Itoa(int(id)))
	}
	return &o.cases[id], nil
}

// Cases returns a copy of the registered case table, so callers cannot
// reorder or replace entries behind the oracle's back. The canonical payloads
// themselves are shared and must be treated as read-only.
func (o *Oracle) Cases() []Case {
	out := make([]Case, len(o.cases))
	copy(out, o.cases)
	return out
}
