package utils_test

import (
	dg "github.com/bwmarrin/discordgo"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/glotchimo/nickbot/internal/testutils"
	"github.com/glotchimo/nickbot/internal/utils"
)

var _ = Describe("TruncateString", func() {
	DescribeTable("Cuts long strings",
		func(in string, maxLen int, suffix, expected string) {
			Expect(utils.TruncateString(in, maxLen, suffix)).To(Equal(expected))
		},
		Entry("short enough", "hello", 10, "...", "hello"),
		Entry("exact length", "hello", 5, "...", "hello"),
		Entry("word boundary", "hello brave new world", 14, "...", "hello brave..."),
		Entry("no boundary", "abcdefghij", 4, "", "abcd"),
		Entry("counts runes", "ééééé", 3, "", "ééé"),
	)
})

var _ = Describe("GenerateID", func() {
	It("Generates distinct ids", func() {
		Expect(utils.GenerateID()).NotTo(Equal(utils.GenerateID()))
		Expect(utils.GenerateID()).To(HaveLen(20))
	})
})

var _ = Describe("FormatInteraction", func() {
	It("Renders a command the way it was typed", func() {
		i := testutils.NewCommandInteraction("play", "1", "10", "20", testutils.StringOption("a_braba", "lofi hip hop"))
		Expect(utils.FormatInteraction(i)).To(Equal("/play a_braba:lofi hip hop"))
	})

	It("Renders user options as mentions", func() {
		i := testutils.NewCommandInteraction("play", "1", "10", "20", &dg.ApplicationCommandInteractionDataOption{
			Name:  "who",
			Type:  dg.ApplicationCommandOptionUser,
			Value: "20",
		})
		Expect(utils.FormatInteraction(i)).To(Equal("/play who:<@20>"))
	})

	It("Ignores anything that is not a command", func() {
		i := testutils.NewCommandInteraction("play", "1", "10", "20")
		i.Type = dg.InteractionMessageComponent
		Expect(utils.FormatInteraction(i)).To(BeEmpty())
		Expect(utils.FormatInteraction(nil)).To(BeEmpty())
	})
})
