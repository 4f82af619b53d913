package domain

import "time"

// Resource represents a published health education article or link
type Resource struct {
	ID          int64
	Title       string
	Description string
	Category    string
	URL         string
	ImageURL    *string
	Content     *string
	PublishedAt time.Time
}
