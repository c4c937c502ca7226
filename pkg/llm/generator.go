package llm

import (
	"context"
	"fmt"
	"html"
	"math/rand/v2"
	"net/http"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sashabaranov/go-openai"

	"github.com/cryptodigest/cryptodigest/pkg/config"
	"github.com/cryptodigest/cryptodigest/pkg/domain"
)

// Generator produces articles from news sources via an OpenAI-compatible
// text-generation service
type Generator struct {
	client    *openai.Client
	config    config.LLMConfig
	sanitizer *bluemonday.Policy
	pick      func(n int) int // keyword selection, swappable in tests
}

// NewGenerator creates a new article generator
func NewGenerator(cfg config.LLMConfig) *Generator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Generator{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		sanitizer: bluemonday.StrictPolicy(),
		pick:      rand.IntN,
	}
}

// Generate builds a prompt for the source, makes a single completion call
// and parses the response into an article. One call per invocation, no
// retries: any transport error, API error or empty response surfaces as a
// single generic failure to the caller.
func (g *Generator) Generate(ctx context.Context, source domain.NewsSource) (*domain.Article, error) {
	category, keywords := domain.KeywordsFor(source.Category)
	keyword := keywords[g.pick(len(keywords))]

	prompt := buildPrompt(source.Name, category, keyword)

	req := openai.ChatCompletionRequest{
		Model:       g.config.Model,
		Temperature: float32(g.config.Temperature),
		MaxTokens:   g.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from generation service")
	}

	generated, err := parseArticle(resp.Choices[0].Message.Content, source.Name)
	if err != nil {
		return nil, err
	}

	article := &domain.Article{
		Title:             g.cleanText(generated.Title),
		Content:           g.cleanText(generated.Content),
		Summary:           g.cleanText(generated.Summary),
		Category:          category,
		Tags:              generated.Tags,
		SEOKeywords:       generated.SEOKeywords,
		SourceName:        source.Name,
		SourceAttribution: generated.SourceAttribution,
		AIGenerated:       true,
	}
	return article, nil
}

// cleanText strips markup from generated text. The strict policy
// entity-escapes plain text too, so escape artifacts like &amp; are
// decoded back before the text is stored.
func (g *Generator) cleanText(s string) string {
	return html.UnescapeString(g.sanitizer.Sanitize(s))
}
