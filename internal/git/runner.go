package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
)

// Runner executes external commands. It exists so command execution can be
// faked in tests; the real implementation is ExecRunner. The same runner
// drives both the git binary and the privilege-escalation helper.
type Runner interface {
	// Run executes a command in dir, capturing stdout and stderr separately.
	// The returned error is the raw execution error; callers wrap it.
	Run(ctx context.Context, dir string, name string, args ...string) (stdout string, stderr string, err error)

	// RunInteractive executes a command in dir with the process stdio
	// attached, for helpers that talk to the terminal themselves (sudo).
	RunInteractive(ctx context.Context, dir string, name string, args ...string) error
}

// ExecRunner is the Runner implementation backed by os/exec. Commands inherit
// the invoking shell's environment and PATH.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements Runner.Run
func (r *ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) (string, string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// RunInteractive implements Runner.RunInteractive
func (r *ExecRunner) RunInteractive(ctx context.Context, dir string, name string, args ...string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
