//go:build !windows

package clipboard

import "syscall"

// detachedAttr starts the clearer in its own session so it survives the
// terminal closing.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
