package roundtrip

// Profile is the reference record for case 0: a text field, a wide integer,
// a float and a sequence of signed integers.
type Profile struct {
	Name string
	Age  uint64
	Prob float64
	Data []int32
}

// Scalars covers the fixed-width primitive kinds.
type Scalars struct {
	Flag  bool
	Tiny  uint8
	Count int32
	Wide  int64
	Ratio float32
}

// Document covers variable-length payloads: text, a string list and raw bytes.
type Document struct {
	Title string
	Tags  []string
	Blob  []byte
}

// Chain is a linked record: a value head followed by its links in sequence.
// The links are a slice, not pointer hops: the codec rebuilds an absent
// pointer as a pointer to a zero value, which can never compare equal to a
// nil link.
type Chain struct {
	Value int32
	Links []Link
}

// Link is one follower in a Chain; Final marks the last one.
type Link struct {
	Value int32
	Final bool
}

// Matrix covers fixed-size arrays next to a float64.
type Matrix struct {
	Cells [4]uint16
	Scale float64
}

// builtinCases returns the fixed case table. Entries must stay dense: the
// slice position is the identifier Resolve dispatches on.
func builtinCases() []Case {
	return []Case{
		{
			ID:   0,
			Name: "profile",
			Canonical: Profile{
				Name: "ccccc",
				Age:  541212312321534534,
				Prob: 0.69,
				Data: []int32{31, 69},
			},
			New: func() any { return &Profile{} },
		},
		{
			ID:   1,
			Name: "scalars",
			Canonical: Scalars{
				Flag:  true,
				Tiny:  212,
				Count: -7341,
				Wide:  -9007199254740993,
				Ratio: 0.25,
			},
			New: func() any { return &Scalars{} },
		},
		{
			ID:   2,
			Name: "document",
			Canonical: Document{
				Title: "conformance",
				Tags:  []string{"alpha", "", "útf-8 ✓"},
				Blob:  []byte{0x00, 0xFF, 0x7F, 0x80},
			},
			New: func() any { return &Document{} },
		},
		{
			ID:   3,
			Name: "chain",
			Canonical: Chain{
				Value: 31,
				Links: []Link{{Value: 69, Final: true}},
			},
			New: func() any { return &Chain{} },
		},
		{
			ID:   4,
			Name: "matrix",
			Canonical: Matrix{
				Cells: [4]uint16{1, 256, 65535, 0},
				Scale: -0.001953125,
			},
			New: func() any { return &Matrix{} },
		},
	}
}
