package system

import "io/fs"

// SetUmask does nothing on Windows which has no umask.
func SetUmask(_ fs.FileMode) (previous fs.FileMode) {
	return 0
}
