package media

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/glotchimo/nickbot/internal/testutils"
	"github.com/glotchimo/nickbot/internal/utils"
)

var _ = Describe("YtDlpResolver", func() {
	newResolver := func(runner *testutils.MockRunner, timeout time.Duration) *YtDlpResolver {
		r := NewYtDlpResolver("yt-dlp", timeout)
		r.SetRunner(runner)
		return r
	}

	It("Searches YouTube for free text", func() {
		runner := &testutils.MockRunner{MockStdoutResult: mockSearchJson}

		item, err := newResolver(runner, time.Second).Resolve(context.Background(), "  lofi hip hop ")
		Expect(err).NotTo(HaveOccurred())
		Expect(item.Title).To(Equal("foobar"))
		Expect(runner.Targets()).To(Equal([]string{"ytsearch1:lofi hip hop"}))
	})

	It("Passes links through untouched", func() {
		runner := &testutils.MockRunner{MockStdoutResult: mockVideoJson}

		item, err := newResolver(runner, time.Second).Resolve(context.Background(), "https://youtu.be/123")
		Expect(err).NotTo(HaveOccurred())
		Expect(item.Title).To(Equal("Mock Title"))
		Expect(runner.Targets()).To(Equal([]string{"https://youtu.be/123"}))
	})

	It("Does not run yt-dlp for an empty query", func() {
		runner := &testutils.MockRunner{}

		_, err := newResolver(runner, time.Second).Resolve(context.Background(), "   ")
		Expect(err).To(MatchError(ErrNoVideoFound))
		Expect(utils.TypeOf(err)).To(Equal(utils.ErrResolution))
		Expect(runner.Targets()).To(BeEmpty())
	})

	It("Fails with a sensible error if yt-dlp exits with an error", func() {
		runner := &testutils.MockRunner{MockExitCode: 1}

		_, err := newResolver(runner, time.Second).Resolve(context.Background(), "foo")
		Expect(err).To(MatchError("search failed: exit status 1"))
		Expect(utils.TypeOf(err)).To(Equal(utils.ErrResolution))
	})

	It("Fails when a search yields nothing", func() {
		runner := &testutils.MockRunner{MockStdoutResult: `{"_type":"playlist","id":"x","entries":[]}`}

		_, err := newResolver(runner, time.Second).Resolve(context.Background(), "foo")
		Expect(err).To(MatchError(ErrPlaylistEmpty))
		Expect(utils.IsType(err, utils.ErrResolution)).To(BeTrue())
	})

	It("Gives up once the timeout elapses", func() {
		runner := &testutils.MockRunner{MockStdoutResult: mockVideoJson, MockDelay: 5 * time.Second}

		start := time.Now()
		_, err := newResolver(runner, 50*time.Millisecond).Resolve(context.Background(), "foo")
		Expect(err).To(MatchError(ErrTimeout))
		Expect(utils.TypeOf(err)).To(Equal(utils.ErrResolution))
		Expect(time.Since(start)).To(BeNumerically("<", time.Second))
	})

	It("Reports cancellation separately from timeouts", func() {
		runner := &testutils.MockRunner{MockStdoutResult: mockVideoJson, MockDelay: 5 * time.Second}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newResolver(runner, time.Second).Resolve(ctx, "foo")
		Expect(err).To(MatchError(context.Canceled))
		Expect(err).NotTo(MatchError(ErrTimeout))
	})

	It("Falls back to the default timeout", func() {
		Expect(NewYtDlpResolver("yt-dlp", 0).timeout).To(Equal(DefaultSearchTimeout))
	})
})
