package media

import (
	"context"
	"time"

	"github.com/lrstanley/go-ytdlp"
)

// Runner executes one yt-dlp lookup and returns its stdout.
type Runner interface {
	Run(ctx context.Context, target string) (string, error)
}

type ytdlpRunner struct {
	executable    string
	socketTimeout time.Duration
}

func NewRunner(executable string, socketTimeout time.Duration) Runner {
	return &ytdlpRunner{
		executable:    executable,
		socketTimeout: socketTimeout,
	}
}

func (r *ytdlpRunner) Run(ctx context.Context, target string) (string, error) {
	result, err := ytdlp.New().
		SetExecutable(r.executable).
		DumpSingleJSON().
		FlatPlaylist().
		SkipDownload().
		SocketTimeout(r.socketTimeout.Seconds()).
		Run(ctx, target)
	if err != nil {
		return "", err
	}

	return result.Stdout, nil
}
