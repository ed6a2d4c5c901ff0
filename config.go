package roundtrip

// Config contains Oracle configuration
// NOTE: Logger is NOT here - configured via SetLogger()
type Config struct {
	// Codec for serialization. Default: borsh
	Codec Codec
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Codec: nil, // Will assign borsh in New()
	}
}
