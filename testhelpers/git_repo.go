package testhelpers

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitRepo drives a real Git repository for tests: setup goes through the
// git binary, verification reads the repository with go-git.
type GitRepo struct {
	Dir string
}

// InitGitRepo initializes a Git repository in dir with a test identity
func InitGitRepo(t *testing.T, dir string) *GitRepo {
	t.Helper()

	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to init repo: %v", err)
	}

	repo := &GitRepo{Dir: dir}
	repo.Git(t, "config", "user.name", "Test User")
	repo.Git(t, "config", "user.email", "test@example.com")
	return repo
}

// Git runs a git command in the repository directory
func (r *GitRepo) Git(t *testing.T, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return strings.TrimSpace(string(out))
}

// WriteFile writes a file inside the repository working tree
func (r *GitRepo) WriteFile(t *testing.T, rel string, content string) string {
	t.Helper()

	path := filepath.Join(r.Dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	return path
}

// CommitAll stages everything and commits with message
func (r *GitRepo) CommitAll(t *testing.T, message string) {
	t.Helper()

	r.Git(t, "add", "-A")
	r.Git(t, "commit", "-m", message)
}

// IsRepo reports whether dir is a Git repository
func IsRepo(dir string) bool {
	_, err := gogit.PlainOpen(dir)
	return err == nil
}

// open opens the repository with go-git
func (r *GitRepo) open(t *testing.T) *gogit.Repository {
	t.Helper()

	repo, err := gogit.PlainOpen(r.Dir)
	if err != nil {
		t.Fatalf("Failed to open repo: %v", err)
	}
	return repo
}

// CommitCount returns the number of commits reachable from HEAD
func (r *GitRepo) CommitCount(t *testing.T) int {
	t.Helper()

	repo := r.open(t)
	head, err := repo.Head()
	if err != nil {
		return 0
	}

	iter, err := repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}

	count := 0
	err = iter.ForEach(func(*object.Commit) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to iterate commits: %v", err)
	}
	return count
}

// HeadMessage returns the commit message at HEAD
func (r *GitRepo) HeadMessage(t *testing.T) string {
	t.Helper()

	repo := r.open(t)
	head, err := repo.Head()
	if err != nil {
		t.Fatalf("Failed to get HEAD: %v", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		t.Fatalf("Failed to get commit: %v", err)
	}
	return strings.TrimSpace(commit.Message)
}

// HeadHash returns the full commit hash at HEAD
func (r *GitRepo) HeadHash(t *testing.T) string {
	t.Helper()

	repo := r.open(t)
	head, err := repo.Head()
	if err != nil {
		t.Fatalf("Failed to get HEAD: %v", err)
	}
	return head.Hash().String()
}

// RemoteURL returns the first URL of the named remote, or "" when the
// remote does not exist.
func (r *GitRepo) RemoteURL(t *testing.T, name string) string {
	t.Helper()

	repo := r.open(t)
	remote, err := repo.Remote(name)
	if err != nil {
		return ""
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}
