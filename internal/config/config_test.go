package config_test

import (
	"time"

	"github.com/disgoorg/snowflake/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/glotchimo/nickbot/internal/config"
)

var _ = Describe("Parse", func() {
	var environ map[string]string

	BeforeEach(func() {
		environ = map[string]string{
			"APPLICATION_ID":  "1100000000000000001",
			"NICKBOT_GUILDID": "1100000000000000002",
			"NICKBOT_ROLEID":  "1100000000000000003",
			"DISCORD_TOKEN":   "token",
			"YOUTUBE_DL_PATH": "/usr/bin/yt-dlp",
		}
	})

	It("Reads required values and applies defaults", func() {
		conf, err := config.Parse(environ)
		Expect(err).NotTo(HaveOccurred())

		Expect(conf.ApplicationID).To(Equal(snowflake.ID(1100000000000000001)))
		Expect(conf.GuildID.String()).To(Equal("1100000000000000002"))
		Expect(conf.RoleID).To(Equal(snowflake.ID(1100000000000000003)))
		Expect(conf.Token).To(Equal("token"))
		Expect(conf.YoutubeDLPath).To(Equal("/usr/bin/yt-dlp"))
		Expect(conf.Debug).To(BeFalse())
		Expect(conf.Intents).To(Equal(129))
		Expect(conf.SearchTimeout).To(Equal(15 * time.Second))
		Expect(conf.CacheTTL).To(Equal(time.Hour))
		Expect(conf.DatabaseURL).To(BeEmpty())
		Expect(conf.CacheURL).To(BeEmpty())
	})

	It("Reads optional overrides", func() {
		environ["DEBUG"] = "true"
		environ["SEARCH_TIMEOUT"] = "30s"
		environ["REDIS_URL"] = "redis://localhost:6379/0"
		environ["DATABASE_URL"] = "postgres://localhost/nickbot"

		conf, err := config.Parse(environ)
		Expect(err).NotTo(HaveOccurred())
		Expect(conf.Debug).To(BeTrue())
		Expect(conf.SearchTimeout).To(Equal(30 * time.Second))
		Expect(conf.CacheURL).To(Equal("redis://localhost:6379/0"))
		Expect(conf.DatabaseURL).To(Equal("postgres://localhost/nickbot"))
	})

	DescribeTable("Aborts on missing or unusable values",
		func(key, value string) {
			if value == "" {
				delete(environ, key)
			} else {
				environ[key] = value
			}

			_, err := config.Parse(environ)
			Expect(err).To(HaveOccurred())
		},
		Entry("missing token", "DISCORD_TOKEN", ""),
		Entry("missing yt-dlp path", "YOUTUBE_DL_PATH", ""),
		Entry("missing application", "APPLICATION_ID", ""),
		Entry("missing guild", "NICKBOT_GUILDID", ""),
		Entry("missing role", "NICKBOT_ROLEID", ""),
		Entry("guild that is not a snowflake", "NICKBOT_GUILDID", "general"),
		Entry("zero role", "NICKBOT_ROLEID", "0"),
		Entry("negative timeout", "SEARCH_TIMEOUT", "-1s"),
		Entry("timeout without a unit", "SEARCH_TIMEOUT", "15"),
	)
})
