package mirror

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	fuxierrors "github.com/ImShyMike/fuxi/internal/errors"
)

// Confirmer asks the user a yes/no question before retrying a failed
// operation with elevated privileges.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// Runner runs the privilege-escalation helper as a child process with the
// terminal attached. git.ExecRunner satisfies it.
type Runner interface {
	RunInteractive(ctx context.Context, dir string, name string, args ...string) error
}

// Syncer copies file-or-directory trees between live filesystem locations
// and the backup repository. On Unix-like systems, directory-creation and
// copy failures can be retried once through sudo after confirmation.
type Syncer struct {
	confirm Confirmer
	runner  Runner
	elevate bool
}

// NewSyncer creates a Syncer. The elevation fallback is enabled on
// Unix-like platforms and unavailable elsewhere.
func NewSyncer(confirm Confirmer, runner Runner) *Syncer {
	return &Syncer{
		confirm: confirm,
		runner:  runner,
		elevate: runtime.GOOS != "windows",
	}
}

// Sync copies src to dst. src must exist; callers handle skip/warn semantics
// for missing sources.
//
// For a directory with flatten set, each direct child of src is copied into
// dst individually, merging into a possibly pre-existing dst (the restore
// direction). Without flatten the tree rooted at src is recreated at dst
// (the backup direction). For a file, dst's parent is created as needed and
// the file copied, overwriting any existing file.
//
// A failure on one entry, after a declined or failed elevation retry, aborts
// the whole call with that entry's error.
func (s *Syncer) Sync(ctx context.Context, src string, dst string, flatten bool) error {
	info, err := os.Stat(src)
	if err != nil {
		return fuxierrors.NewCopyError("stat", src, "", err)
	}

	if info.IsDir() {
		if flatten {
			return s.syncContents(ctx, src, dst)
		}
		return s.syncTree(ctx, src, dst)
	}
	return s.syncFile(ctx, src, dst)
}

// syncContents merges the direct children of src into dst.
func (s *Syncer) syncContents(ctx context.Context, src string, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		prompt := fmt.Sprintf("Failed to create destination directory %s: %v. Retry creating it with sudo?", dst, err)
		if retryErr := s.retryElevated(ctx, prompt, fuxierrors.NewCopyError("mkdir", "", dst, err), "mkdir", "-p", dst); retryErr != nil {
			return retryErr
		}
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fuxierrors.NewCopyError("read dir", src, "", err)
	}

	for _, entry := range entries {
		srcEntry := filepath.Join(src, entry.Name())
		dstEntry := filepath.Join(dst, entry.Name())

		info, err := os.Stat(srcEntry)
		if err != nil {
			return fuxierrors.NewCopyError("stat", srcEntry, "", err)
		}

		if info.IsDir() {
			if err := copyDirRecursive(srcEntry, dstEntry); err != nil {
				prompt := fmt.Sprintf("Failed to copy directory %s -> %s: %v. Retry with sudo?", srcEntry, dstEntry, err)
				if retryErr := s.retrySudoCopy(ctx, prompt, err, srcEntry, dstEntry); retryErr != nil {
					return retryErr
				}
			}
		} else if err := copyFile(srcEntry, dstEntry); err != nil {
			prompt := fmt.Sprintf("Failed to copy file %s -> %s: %v. Retry with sudo?", srcEntry, dstEntry, err)
			if retryErr := s.retrySudoCopy(ctx, prompt, err, srcEntry, dstEntry); retryErr != nil {
				return retryErr
			}
		}
	}
	return nil
}

// syncTree recreates the directory tree rooted at src at dst.
func (s *Syncer) syncTree(ctx context.Context, src string, dst string) error {
	if err := copyDirRecursive(src, dst); err != nil {
		prompt := fmt.Sprintf("Failed to copy directory %s -> %s: %v. Retry with sudo?", src, dst, err)
		return s.retrySudoCopy(ctx, prompt, err, src, dst)
	}
	return nil
}

// syncFile copies a single file, creating dst's parent directory as needed.
func (s *Syncer) syncFile(ctx context.Context, src string, dst string) error {
	if parent := filepath.Dir(dst); parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			prompt := fmt.Sprintf("Failed to create parent directory %s: %v. Retry creating it with sudo?", parent, err)
			if retryErr := s.retryElevated(ctx, prompt, fuxierrors.NewCopyError("mkdir", "", parent, err), "mkdir", "-p", parent); retryErr != nil {
				return retryErr
			}
		}
	}

	if err := copyFile(src, dst); err != nil {
		prompt := fmt.Sprintf("Failed to copy file %s -> %s: %v. Retry with sudo?", src, dst, err)
		return s.retrySudoCopy(ctx, prompt, err, src, dst)
	}
	return nil
}

// retryElevated offers one elevated retry of a failed operation. When the
// fallback is unavailable or declined, the original error is returned.
func (s *Syncer) retryElevated(ctx context.Context, prompt string, orig error, args ...string) error {
	if !s.elevate {
		return orig
	}

	ok, err := s.confirm.Confirm(prompt)
	if err != nil {
		return err
	}
	if !ok {
		return orig
	}

	if err := s.runner.RunInteractive(ctx, "", "sudo", args...); err != nil {
		return fuxierrors.NewCopyError(fmt.Sprintf("sudo %s", args[0]), "", args[len(args)-1], err)
	}
	return nil
}

// retrySudoCopy offers one archive-preserving elevated copy of src to dst.
func (s *Syncer) retrySudoCopy(ctx context.Context, prompt string, orig error, src string, dst string) error {
	if !s.elevate {
		return asCopyError("copy", src, dst, orig)
	}

	ok, err := s.confirm.Confirm(prompt)
	if err != nil {
		return err
	}
	if !ok {
		return asCopyError("copy", src, dst, orig)
	}
	return s.sudoCopy(ctx, src, dst)
}

// sudoCopy replicates src at dst through the privilege-escalation helper:
// the destination's parent is created first, then an archive-preserving copy
// runs. The helper's exit status decides success.
func (s *Syncer) sudoCopy(ctx context.Context, src string, dst string) error {
	if parent := filepath.Dir(dst); parent != "" {
		if err := s.runner.RunInteractive(ctx, "", "sudo", "mkdir", "-p", parent); err != nil {
			return fuxierrors.NewCopyError("sudo mkdir", "", parent, err)
		}
	}
	if err := s.runner.RunInteractive(ctx, "", "sudo", "cp", "-a", src, dst); err != nil {
		return fuxierrors.NewCopyError("sudo cp", src, dst, err)
	}
	return nil
}

// copyDirRecursive copies the tree rooted at src to dst without prompting.
// Entry types follow symlinks, matching what the copy helpers do.
func copyDirRecursive(src string, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fuxierrors.NewCopyError("mkdir", "", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fuxierrors.NewCopyError("read dir", src, "", err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		info, err := os.Stat(srcPath)
		if err != nil {
			return fuxierrors.NewCopyError("stat", srcPath, "", err)
		}

		if info.IsDir() {
			if err := copyDirRecursive(srcPath, dstPath); err != nil {
				return err
			}
		} else if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies a single file, overwriting dst and preserving the
// source's permission bits.
func copyFile(src string, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fuxierrors.NewCopyError("copy file", src, dst, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fuxierrors.NewCopyError("copy file", src, dst, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fuxierrors.NewCopyError("copy file", src, dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fuxierrors.NewCopyError("copy file", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fuxierrors.NewCopyError("copy file", src, dst, err)
	}

	// O_CREATE leaves an existing file's mode alone; align it with the source.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fuxierrors.NewCopyError("copy file", src, dst, err)
	}
	return nil
}

// asCopyError wraps err in a CopyError unless it already is one.
func asCopyError(op string, src string, dst string, err error) error {
	if _, ok := err.(*fuxierrors.CopyError); ok {
		return err
	}
	return fuxierrors.NewCopyError(op, src, dst, err)
}
