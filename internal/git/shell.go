package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	fuxierrors "github.com/ImShyMike/fuxi/internal/errors"
)

// Shell issues the fixed set of git subcommands fuxi needs against a backup
// repository working tree. All mutations go through the external git binary;
// failures carry the captured stderr. No retries happen at this layer.
type Shell struct {
	runner Runner
}

// NewShell creates a Shell over the given runner
func NewShell(runner Runner) *Shell {
	return &Shell{runner: runner}
}

// Run executes a git command in dir and returns its trimmed stdout
func (s *Shell) Run(ctx context.Context, dir string, args ...string) (string, error) {
	stdout, stderr, err := s.runner.Run(ctx, dir, "git", args...)
	if err != nil {
		return "", fuxierrors.NewGitCommandError("git", args, stdout, stderr, err)
	}
	return strings.TrimSpace(stdout), nil
}

// Init initializes a git repository in dir with the given initial branch,
// so later pushes target the branch the configuration names.
func (s *Shell) Init(ctx context.Context, dir string, branch string) error {
	_, err := s.Run(ctx, dir, "init", "-b", branch)
	return err
}

// SetRemote points the origin remote at url, creating it when absent
func (s *Shell) SetRemote(ctx context.Context, dir string, url string) error {
	if _, err := s.Run(ctx, dir, "remote", "add", "origin", url); err != nil {
		_, err = s.Run(ctx, dir, "remote", "set-url", "origin", url)
		return err
	}
	return nil
}

// Log returns the repository's one-line commit log. An empty repository
// yields an empty string.
func (s *Shell) Log(ctx context.Context, dir string) (string, error) {
	out, err := s.Run(ctx, dir, "log", "--oneline")
	if err != nil {
		// A repository with no commits makes git log exit non-zero.
		var gitErr *fuxierrors.GitCommandError
		if errors.As(err, &gitErr) && strings.Contains(gitErr.Stderr, "does not have any commits yet") {
			return "", nil
		}
		return "", err
	}
	return out, nil
}

// Push stages everything, commits with message, and pushes origin/<branch>.
// A clean tree is a benign no-op reported through the returned Pushed flag.
func (s *Shell) Push(ctx context.Context, dir string, branch string, message string) (pushed bool, err error) {
	if _, err := s.Run(ctx, dir, "add", "."); err != nil {
		return false, err
	}

	status, err := s.Run(ctx, dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	if status == "" {
		return false, nil
	}

	if message == "" {
		message = "Automated backup commit"
	}
	if _, err := s.Run(ctx, dir, "commit", "-m", message); err != nil {
		return false, err
	}
	if _, err := s.Run(ctx, dir, "push", "origin", branch); err != nil {
		return false, err
	}
	return true, nil
}

// Fetch retrieves and checks out a backup state. With a commit it fetches and
// checks out that commit; without one it fetches the branch, checks it out,
// and hard-resets to origin/<branch>.
func (s *Shell) Fetch(ctx context.Context, dir string, branch string, commit string) error {
	if commit != "" {
		if _, err := s.Run(ctx, dir, "fetch", "origin", commit); err != nil {
			return err
		}
		_, err := s.Run(ctx, dir, "checkout", commit)
		return err
	}

	if _, err := s.Run(ctx, dir, "fetch", "origin", branch); err != nil {
		return err
	}
	if _, err := s.Run(ctx, dir, "checkout", branch); err != nil {
		return err
	}
	_, err := s.Run(ctx, dir, "reset", "--hard", fmt.Sprintf("origin/%s", branch))
	return err
}

// Pull pulls origin/<branch> into the working tree
func (s *Shell) Pull(ctx context.Context, dir string, branch string) error {
	_, err := s.Run(ctx, dir, "pull", "origin", branch)
	return err
}
