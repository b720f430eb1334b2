//go:build !windows

// Package system holds process level settings.
package system

import (
	"io/fs"
	"syscall"
)

// SetUmask sets the umask of the process and returns the previous one.
func SetUmask(umask fs.FileMode) (previous fs.FileMode) {
	return fs.FileMode(syscall.Umask(int(umask)))
}
