package roundtrip

// Codec interface for the serializer under test. The harness never inspects
// the byte layout itself: encode and decode only need to be exact inverses
// for every registered case type.
type Codec interface {
	Encode(data any) ([]byte, error)
	Decode(data []byte, v any) error
}
