// Package llm provides the generative-text client used to write interview questions.
package llm

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

// DefaultModel is the model interview questions are generated with.
const DefaultModel = "gemini-2.0-flash-001"

// Config holds the model configuration for the application
type Config struct {
	Provider    Provider
	Model       string
	Temperature *float32 // nil leaves the provider default
}

// DefaultConfig returns the default Gemini configuration
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultModel,
	}
}

// WithModel returns a copy of the config using model.
func (c *Config) WithModel(model string) *Config {
	out := *c
	out.Model = model
	return &out
}

// WithTemperature returns a copy of the config using temperature. A nil
// temperature keeps the provider default.
func (c *Config) WithTemperature(temperature *float32) *Config {
	out := *c
	out.Temperature = temperature
	return &out
}
