package domain

import "time"

// NewsSource is a named news outlet used as generation-prompt context.
// Sources are not scraped for real content in this design.
type NewsSource struct {
	ID          string
	Name        string
	URL         string
	Category    string
	IsActive    bool
	LastScraped *time.Time
}
