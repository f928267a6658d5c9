// Package mirror implements the path synchronization engine.
//
// It moves files between the user's live filesystem locations and the backup
// repository's mirrored directory tree, in both directions:
//   - Backup: recreate a registered path (file or full directory tree) under
//     the profile's subdirectory in the repository.
//   - Restore: merge a mirrored tree's contents back onto the existing live
//     path without nesting a new directory level.
//
// Failed directory creations and copies can be retried once with elevated
// privileges after interactive confirmation (Unix only). The last-component
// extraction rule that names mirrored entries lives here too.
package mirror
