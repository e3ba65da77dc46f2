// Package llm wraps the Gemini API behind a small Client interface. The
// pipeline uses it for one thing: an optional one-paragraph company brief
// during research. Tiers let cheap calls stay cheap.
package llm

// ModelTier selects model capability per call.
type ModelTier string

const (
	// TierLite handles classification and short summaries.
	TierLite ModelTier = "lite"
	// TierStandard handles structured output and moderate reasoning.
	TierStandard ModelTier = "standard"
	// TierAdvanced handles long-form synthesis.
	TierAdvanced ModelTier = "advanced"
)

// Config maps tiers to concrete model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the standard Gemini tier mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel resolves a tier to a model name, falling back through standard
// then lite when the requested tier is unconfigured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the Config with one tier overridden.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	models := make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		models[k] = v
	}
	models[tier] = model
	return &Config{Models: models}
}
