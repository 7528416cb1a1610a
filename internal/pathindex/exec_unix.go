//go:build unix

package pathindex

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// isExecutable asks the kernel whether the current process may execute path.
func isExecutable(path string, _ fs.FileInfo) bool {
	return unix.Access(path, unix.X_OK) == nil
}
