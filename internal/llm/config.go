// Package llm wraps the generative model provider behind a small client
// interface with per-task model tiers.
package llm

// ModelTier selects how much model capability a task gets.
type ModelTier string

const (
	// TierLite handles cheap structured extraction, e.g. job postings.
	TierLite ModelTier = "lite"
	// TierStandard handles question generation.
	TierStandard ModelTier = "standard"
	// TierAdvanced handles answer evaluation and feedback.
	TierAdvanced ModelTier = "advanced"
)

// Config maps tiers to provider model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultGeminiConfig returns the Gemini model assignment per tier.
func DefaultGeminiConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier, falling back to standard
// then lite when the tier has no assignment.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return c.Models[TierLite]
}
