package media

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var mockVideoJson string = strings.ReplaceAll(`{
	"id": "123",
	"title": "Mock",
	"fulltitle": "Mock Title",
	"duration": 70.5,
	"thumbnail": "foo",
	"webpage_url": "https://www.youtube.com/watch?v=123",
	"is_live": false,
	"_type": "video"
}`, "\n", "")

var mockSearchJson string = strings.ReplaceAll(`{
	"id": "lofi",
	"title": "lofi",
	"_type": "playlist",
	"entries": [
		{
			"_type": "url",
			"id": "0",
			"title": "foobar",
			"url": "https://www.youtube.com/watch?v=0",
			"duration": 60,
			"live_status": "not_live",
			"thumbnails": [
				{"url": "small", "height": 64, "width": 64},
				{"url": "large", "height": 720, "width": 1280}
			]
		},
		{
			"_type": "url",
			"id": "1",
			"title": "foobar 2 live",
			"duration": 0,
			"live_status": "is_live"
		}
	]
}`, "\n", "")

var _ = Describe("yt-dlp output", func() {
	It("Reads a single video", func() {
		item, err := parseResult(mockVideoJson)
		Expect(err).NotTo(HaveOccurred())
		Expect(item).To(Equal(Item{
			ID:        "123",
			Title:     "Mock Title",
			Link:      "https://www.youtube.com/watch?v=123",
			Duration:  70500 * time.Millisecond,
			Thumbnail: "foo",
		}))
	})

	It("Takes the first entry of a playlist", func() {
		item, err := parseResult(mockSearchJson)
		Expect(err).NotTo(HaveOccurred())
		Expect(item.ID).To(Equal("0"))
		Expect(item.Title).To(Equal("foobar"))
		Expect(item.Link).To(Equal("https://www.youtube.com/watch?v=0"))
		Expect(item.Duration).To(Equal(time.Minute))
		Expect(item.Thumbnail).To(Equal("large"))
		Expect(item.IsLive).To(BeFalse())
	})

	It("Marks live entries", func() {
		item, err := parseResult(`{"_type":"url","id":"1","title":"live","live_status":"is_live"}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(item.IsLive).To(BeTrue())
		Expect(item.Link).To(Equal("https://www.youtube.com/watch?v=1"))
	})

	It("Fails on an empty playlist", func() {
		_, err := parseResult(`{"_type":"playlist","id":"x","entries":[]}`)
		Expect(err).To(MatchError(ErrPlaylistEmpty))
	})

	It("Fails on empty output", func() {
		_, err := parseResult("  \n")
		Expect(err).To(MatchError(ErrNoVideoFound))
	})

	It("Fails on unknown object types", func() {
		_, err := parseResult(`{"_type":"channel","id":"x"}`)
		Expect(err).To(MatchError(ErrUnrecognisedObject))
	})

	It("Fails on entries without a title", func() {
		_, err := parseResult(`{"_type":"video","id":"x"}`)
		Expect(err).To(MatchError(ErrInvalidYtdlpData))
	})

	It("Fails on invalid json", func() {
		_, err := parseResult("{")
		Expect(err).To(MatchError("unexpected end of JSON input"))
	})
})
