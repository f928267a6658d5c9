// Package errors provides sentinel errors and custom error types for the fuxi application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNoProfileSelected indicates that no profile is currently selected
	ErrNoProfileSelected = errors.New("no profile selected")

	// ErrProfileNotFound indicates that a profile does not exist
	ErrProfileNotFound = errors.New("profile not found")

	// ErrRepoNotConfigured indicates that the backup repository path is not set
	ErrRepoNotConfigured = errors.New("backup repository path is not set")

	// ErrRemoteNotConfigured indicates that the GitHub repository is not set
	ErrRemoteNotConfigured = errors.New("github repository is not set")

	// ErrNoLastBackup indicates that no last backup ID has been recorded
	ErrNoLastBackup = errors.New("no last backup ID found")

	// ErrNoPathsConfigured indicates that the selected profile has no paths
	ErrNoPathsConfigured = errors.New("no paths configured for the selected profile")

	// ErrNoBackups indicates that the backup repository has no commits
	ErrNoBackups = errors.New("no backups found in the repository")

	// ErrNoNormalComponent indicates that a path has no usable final component
	ErrNoNormalComponent = errors.New("path has no normal component")
)

// ProfileNotFoundError represents an error when a profile is not found
type ProfileNotFoundError struct {
	Name string
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("profile '%s' does not exist", e.Name)
}

// Is returns true if the target error is ErrProfileNotFound
func (e *ProfileNotFoundError) Is(target error) bool {
	return target == ErrProfileNotFound
}

// NewProfileNotFoundError creates a new ProfileNotFoundError
func NewProfileNotFoundError(name string) *ProfileNotFoundError {
	return &ProfileNotFoundError{Name: name}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// CopyError represents a filesystem failure during path synchronization.
// Op is the operation that failed ("mkdir", "copy dir", "copy file").
type CopyError struct {
	Op  string
	Src string
	Dst string
	Err error
}

func (e *CopyError) Error() string {
	if e.Src == "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Dst, e.Err)
	}
	return fmt.Sprintf("%s %s -> %s: %v", e.Op, e.Src, e.Dst, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// NewCopyError creates a new CopyError
func NewCopyError(op, src, dst string, err error) *CopyError {
	return &CopyError{
		Op:  op,
		Src: src,
		Dst: dst,
		Err: err,
	}
}
