package domain

import "time"

// LiveStream describes a live-stream embed from a financial news outlet
type LiveStream struct {
	ID           string
	Title        string
	Description  string
	SourceName   string
	EmbedURL     string
	ThumbnailURL string
	Category     string
	Language     string
	IsLive       bool
	ViewersCount *int
	StartedAt    time.Time
	ScheduledFor *time.Time
	Tags         []string
	Region       string
	IsDirectLink bool
}
