// Package lint runs the project's lint scripts through an embedded POSIX
// shell, so the same script works on every platform the build runs on.
package lint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// DefaultScripts fixes JavaScript sources in place with ESLint.
var DefaultScripts = []string{
	"npx eslint --ext=.js,.cjs,.mjs . --fix",
}

// Runner executes shell scripts and reports their exit status.
type Runner struct {
	// Dir is the working directory. Empty means the process working directory.
	Dir string
	// Env is the environment as KEY=value pairs. Nil means os.Environ().
	Env    []string
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes script and returns its exit status. A non-zero status is not
// an error; errors are reserved for scripts that cannot be parsed or run.
func (r *Runner) Run(ctx context.Context, script string) (int, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "")
	if err != nil {
		return 0, fmt.Errorf("parse error: %w", err)
	}

	env := r.Env
	if env == nil {
		env = os.Environ()
	}
	stdout, stderr := r.Stdout, r.Stderr
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(os.Stdin, stdout, stderr),
	}
	if r.Dir != "" {
		opts = append(opts, interp.Dir(r.Dir))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return 0, fmt.Errorf("failed to create runner: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return int(status), nil
		}
		return 0, err
	}
	return 0, nil
}

// RunAll runs each script in order, never stopping early. The result is
// the status of the last failing script, or 0 when all of them pass.
func (r *Runner) RunAll(ctx context.Context, scripts []string) (int, error) {
	code := 0
	for _, script := range scripts {
		status, err := r.Run(ctx, script)
		if err != nil {
			return code, fmt.Errorf("%s: %w", script, err)
		}
		if status > 0 {
			code = status
		}
	}
	return code, nil
}
