package mirror

import (
	"path/filepath"
	"strings"

	fuxierrors "github.com/ImShyMike/fuxi/internal/errors"
)

// LastComponent returns the name under which a registered path is mirrored
// inside a profile's repository subdirectory: the last "normal" component of
// the path, walking from the end and skipping separators, "." and ".."
// segments, and any root or volume prefix.
//
// A path with no normal component at all ("/", ".", "..") is rejected with
// ErrNoNormalComponent; mirroring such a path would collapse it into the
// profile root.
func LastComponent(path string) (string, error) {
	rest := filepath.ToSlash(path[len(filepath.VolumeName(path)):])

	segs := strings.Split(rest, "/")
	for i := len(segs) - 1; i >= 0; i-- {
		switch segs[i] {
		case "", ".", "..":
			continue
		default:
			return segs[i], nil
		}
	}
	return "", fuxierrors.ErrNoNormalComponent
}
