package media

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var (
	ErrUnrecognisedObject = errors.New("unrecognised object type")
	ErrInvalidYtdlpData   = errors.New("invalid ytdlp data")
	ErrNoVideoFound       = errors.New("no video found")
	ErrPlaylistEmpty      = errors.New("playlist has no entries")
)

const (
	objectVideo    = "video"
	objectPlaylist = "playlist"
	objectURL      = "url"
)

type ytDlpObject struct {
	// "playlist", "video", or "url" for flat playlist entries
	Type string `json:"_type"`
}

type ytDlpThumbnail struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type ytDlpVideo struct {
	ytDlpObject
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	FullTitle  string           `json:"fulltitle"`
	Duration   float64          `json:"duration"`
	Thumbnail  string           `json:"thumbnail"`
	Thumbnails []ytDlpThumbnail `json:"thumbnails"`
	URL        string           `json:"url"`
	WebpageURL string           `json:"webpage_url"`
	IsLive     bool             `json:"is_live"`
	LiveStatus string           `json:"live_status"`
}

type ytDlpPlaylist struct {
	ytDlpObject
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Entries []*ytDlpVideo `json:"entries"`
}

// parseResult turns the output of `yt-dlp --dump-single-json` into an
// Item. Playlists (search results are playlists too) yield their first entry.
func parseResult(stdout string) (Item, error) {
	payload := strings.TrimSpace(stdout)
	if payload == "" {
		return Item{}, ErrNoVideoFound
	}

	var object ytDlpObject
	if err := json.Unmarshal([]byte(payload), &object); err != nil {
		return Item{}, err
	}

	switch object.Type {
	case objectVideo, objectURL:
		var video ytDlpVideo
		if err := json.Unmarshal([]byte(payload), &video); err != nil {
			return Item{}, err
		}
		return itemFromVideo(&video)

	case objectPlaylist:
		var playlist ytDlpPlaylist
		if err := json.Unmarshal([]byte(payload), &playlist); err != nil {
			return Item{}, err
		}
		if len(playlist.Entries) == 0 || playlist.Entries[0] == nil {
			return Item{}, ErrPlaylistEmpty
		}
		return itemFromVideo(playlist.Entries[0])

	default:
		return Item{}, ErrUnrecognisedObject
	}
}

func itemFromVideo(video *ytDlpVideo) (Item, error) {
	title := video.FullTitle
	if title == "" {
		title = video.Title
	}
	if video.ID == "" || title == "" {
		return Item{}, ErrInvalidYtdlpData
	}

	link := video.WebpageURL
	if link == "" && strings.HasPrefix(video.URL, "http") {
		link = video.URL
	}
	if link == "" {
		link = "https://www.youtube.com/watch?v=" + video.ID
	}

	thumbnail := video.Thumbnail
	if thumbnail == "" {
		thumbnailWidth := -1
		for _, t := range video.Thumbnails {
			if t.Width > thumbnailWidth {
				thumbnail = t.URL
				thumbnailWidth = t.Width
			}
		}
	}

	return Item{
		ID:        video.ID,
		Title:     title,
		Link:      link,
		Duration:  time.Duration(video.Duration * float64(time.Second)),
		Thumbnail: thumbnail,
		IsLive:    video.IsLive || video.LiveStatus == "is_live",
	}, nil
}
