package cmd

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/raphi011/clack/internal/log"
)

// CombinedContext runs name in dir and returns stdout and stderr
// interleaved as written. The output is returned on failure too; an exit
// status is reported as *exec.ExitError.
func CombinedContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	var out bytes.Buffer
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdout = &out
	c.Stderr = &out

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	err := c.Run()
	done(time.Since(start))

	if err != nil && ctx.Err() != nil {
		return out.Bytes(), ctx.Err()
	}
	return out.Bytes(), err
}
