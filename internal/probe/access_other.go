//go:build !unix

package probe

import "os"

// OSReadable falls back to permission bits where there is no access(2).
// On Windows this matches the file attributes: readable unless stat fails.
func OSReadable(path string, info os.FileInfo) bool {
	return ModeReadable(path, info)
}
