package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
}

func TestGetModel_Fallback(t *testing.T) {
	t.Run("unknown tier falls back to standard", func(t *testing.T) {
		config := &Config{Models: map[ModelTier]string{
			TierStandard: "standard-model",
		}}
		assert.Equal(t, "standard-model", config.GetModel(TierAdvanced))
	})

	t.Run("falls back to lite when standard is absent", func(t *testing.T) {
		config := &Config{Models: map[ModelTier]string{
			TierLite: "lite-model",
		}}
		assert.Equal(t, "lite-model", config.GetModel(TierAdvanced))
	})

	t.Run("empty config yields empty model", func(t *testing.T) {
		config := &Config{Models: map[ModelTier]string{}}
		assert.Empty(t, config.GetModel(TierStandard))
	})
}

func TestWithModel(t *testing.T) {
	base := DefaultConfig()
	custom := base.WithModel(TierAdvanced, "gemini-exp")

	assert.Equal(t, "gemini-exp", custom.GetModel(TierAdvanced))
	// The original is untouched.
	assert.Equal(t, "gemini-2.5-pro", base.GetModel(TierAdvanced))
	// Other tiers carry over.
	assert.Equal(t, "gemini-2.5-flash", custom.GetModel(TierStandard))
}
