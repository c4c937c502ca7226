package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("CoinDesk", "crypto", "crypto market")

	// source name is repeated to pressure attribution in the output
	assert.GreaterOrEqual(t, strings.Count(prompt, "CoinDesk"), 3)
	assert.Contains(t, prompt, "crypto")
	assert.Contains(t, prompt, `"crypto market"`)
	assert.Contains(t, prompt, "CRITICAL REQUIREMENTS")

	// the JSON template hyphenates multi-word keywords for tags
	assert.Contains(t, prompt, "crypto-market")
	assert.Contains(t, prompt, `"source_attribution": "Information sourced from CoinDesk"`)
}
