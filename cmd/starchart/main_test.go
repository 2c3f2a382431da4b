package main

import (
	"context"
	"fmt"
	"testing"

	scerrors "github.com/matzehuels/starchart/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"interrupted", fmt.Errorf("draw stars: %w", context.Canceled), 130},
		{"bad viewport", scerrors.New(scerrors.ErrCodeInvalidViewport, "ra_min must be less than ra_max"), 2},
		{"unknown target", scerrors.New(scerrors.ErrCodeNotFound, "unknown target"), 1},
		{"plain", fmt.Errorf("write chart.svg: disk full"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestRunStyles(t *testing.T) {
	t.Setenv("STARCHART_CACHE_DIR", t.TempDir())
	if err := run(context.Background(), []string{"styles", "neon"}); exitCode(err) != 1 {
		t.Errorf("unknown preset: err %v, exit %d, want 1", err, exitCode(err))
	}
}
