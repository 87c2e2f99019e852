package media

import "time"

// Item is a single playable search result.
type Item struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Link      string        `json:"link"`
	Duration  time.Duration `json:"duration"`
	Thumbnail string        `json:"thumbnail,omitempty"`
	IsLive    bool          `json:"is_live"`
}
