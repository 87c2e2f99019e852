package media

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/glotchimo/nickbot/internal/utils"
)

//go:generate mockgen -destination=../mocks/media.go -package=mocks github.com/glotchimo/nickbot/internal/media Resolver

const DefaultSearchTimeout = 15 * time.Second

var ErrTimeout = errors.New("search timed out")

type Resolver interface {
	Resolve(ctx context.Context, query string) (Item, error)
}

type YtDlpResolver struct {
	runner  Runner
	timeout time.Duration
}

func NewYtDlpResolver(executable string, timeout time.Duration) *YtDlpResolver {
	if timeout <= 0 {
		timeout = DefaultSearchTimeout
	}

	return &YtDlpResolver{
		runner:  NewRunner(executable, timeout),
		timeout: timeout,
	}
}

func (r *YtDlpResolver) SetRunner(runner Runner) {
	r.runner = runner
}

type runResult struct {
	stdout string
	err    error
}

// Resolve searches for query and returns the first match. The lookup runs on
// its own goroutine and is abandoned once the timeout elapses.
func (r *YtDlpResolver) Resolve(ctx context.Context, query string) (Item, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Item{}, utils.Fail(utils.ErrResolution, "", ErrNoVideoFound)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan runResult, 1)
	go func() {
		stdout, err := r.runner.Run(ctx, searchTarget(query))
		done <- runResult{stdout: stdout, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			if ctx.Err() != nil {
				return Item{}, r.contextFailure(ctx.Err())
			}
			return Item{}, utils.Fail(utils.ErrResolution, "search failed", res.err)
		}

		item, err := parseResult(res.stdout)
		if err != nil {
			return Item{}, utils.Fail(utils.ErrResolution, "search failed", err)
		}
		return item, nil

	case <-ctx.Done():
		return Item{}, r.contextFailure(ctx.Err())
	}
}

func (r *YtDlpResolver) contextFailure(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return utils.Fail(utils.ErrResolution, "", fmt.Errorf("%w after %d seconds", ErrTimeout, int(r.timeout.Seconds())))
	}
	return utils.Fail(utils.ErrResolution, "search cancelled", err)
}

// searchTarget passes links straight to yt-dlp and turns anything else into a
// single-result YouTube search.
func searchTarget(query string) string {
	if u, err := url.Parse(query); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return query
	}
	return "ytsearch1:" + query
}
