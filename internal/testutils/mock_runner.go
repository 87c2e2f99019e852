package testutils

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type MockRunner struct {
	MockStdoutResult string
	MockExitCode     int
	MockDelay        time.Duration

	mu      sync.Mutex
	targets []string
}

func (r *MockRunner) Run(ctx context.Context, target string) (string, error) {
	r.mu.Lock()
	r.targets = append(r.targets, target)
	r.mu.Unlock()

	if r.MockDelay > 0 {
		select {
		case <-time.After(r.MockDelay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if r.MockExitCode != 0 {
		return "", fmt.Errorf("exit status %d", r.MockExitCode)
	}

	return r.MockStdoutResult, nil
}

func (r *MockRunner) Targets() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.targets...)
}
