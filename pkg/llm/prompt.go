package llm

import (
	"fmt"
	"strings"
)

// buildPrompt constructs the generation instruction for one source. The
// source name is embedded multiple times so the generated article is
// pressured to attribute its content.
func buildPrompt(sourceName, category, keyword string) string {
	var sb strings.Builder

	// simulated scraped content, sources are prompt context only
	scraped := fmt.Sprintf("Latest %s news and analysis focusing on %s from %s", category, keyword, sourceName)

	sb.WriteString(fmt.Sprintf("Based on the following news content about %s from %s, "+
		"create a comprehensive, SEO-optimized article focusing on %q:\n\n", category, sourceName, keyword))
	sb.WriteString(fmt.Sprintf("SOURCE: %s\nCONTENT:\n%s\n\n", sourceName, scraped))

	sb.WriteString("CRITICAL REQUIREMENTS:\n")
	sb.WriteString("1. Always include proper source attribution in the article\n")
	sb.WriteString(fmt.Sprintf("2. Create content that ranks well for %q and related %s terms\n", keyword, category))
	sb.WriteString("3. Make it newsworthy and up-to-the-minute relevant\n")
	sb.WriteString("4. Include market analysis and expert insights\n")
	sb.WriteString("5. Use trending financial/crypto terminology naturally\n\n")

	sb.WriteString("Please provide your response in this exact JSON format:\n")
	sb.WriteString(fmt.Sprintf(`{
    "title": "SEO-optimized breaking news title under 60 characters",
    "content": "BREAKING NEWS article (600-900 words) with proper source attribution. Start with 'According to %[1]s,' or 'Reports from %[1]s indicate...' ALWAYS mention the source multiple times throughout the article. Include market analysis, expert commentary, and trending insights. Make it feel like breaking financial news.",
    "summary": "Compelling 2-3 sentence summary mentioning the source and key market impact",
    "tags": ["breaking-news", "%[2]s", "market-analysis", "financial-update", "%[3]s"],
    "seo_keywords": ["%[4]s", "%[2]s", "breaking news", "market analysis", "financial update"],
    "source_attribution": "Information sourced from %[1]s"
}`, sourceName, category, strings.ReplaceAll(keyword, " ", "-"), keyword))
	sb.WriteString("\n\nIMPORTANT: This should read like BREAKING financial news, not generic content. Make it urgent and market-relevant.")

	return sb.String()
}
