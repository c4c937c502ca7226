package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cryptodigest/cryptodigest/pkg/domain"
)

// parseArticle extracts the fixed-shape JSON record from the raw response
// text. Title, content and summary are required; tags, seo_keywords and
// source_attribution get defaults when absent. Anything else is a
// malformed-output failure the caller must treat as recoverable.
func parseArticle(content, sourceName string) (*domain.GeneratedArticle, error) {
	// models often wrap the object in prose or code fences
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return nil, fmt.Errorf("malformed output: no json object found in response")
	}

	var generated domain.GeneratedArticle
	if err := json.Unmarshal([]byte(content[start:end+1]), &generated); err != nil {
		return nil, fmt.Errorf("malformed output: %w", err)
	}

	if generated.Title == "" || generated.Content == "" || generated.Summary == "" {
		return nil, fmt.Errorf("malformed output: missing required fields")
	}

	if generated.Tags == nil {
		generated.Tags = []string{}
	}
	if generated.SEOKeywords == nil {
		generated.SEOKeywords = []string{}
	}
	if generated.SourceAttribution == "" {
		generated.SourceAttribution = fmt.Sprintf("Source: %s", sourceName)
	}

	return &generated, nil
}
