// Package git provides low-level Git operations for the backup repository.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Repository setup (init, remote configuration)
//   - Backup publication (stage, commit, push)
//   - Backup retrieval (fetch, checkout, pull)
//   - History queries (log)
//
// This package should be the only place where direct git commands are executed.
package git
