package llm

// Provider represents an extraction model provider.
type Provider string

// Provider constants define supported providers.
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for extraction calls.
type Config struct {
	Provider Provider
	// Model is the provider model name used for structured extraction.
	Model string
	// MaxOutputTokens bounds the response size of a single extraction call.
	MaxOutputTokens int32
}

// DefaultConfig returns the default extraction configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:        ProviderGemini,
		Model:           "gemini-2.5-flash",
		MaxOutputTokens: 4096,
	}
}

// WithModel returns a copy of the config with a different model name.
func (c *Config) WithModel(model string) *Config {
	out := *c
	out.Model = model
	return &out
}
