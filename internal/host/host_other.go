//go:build !unix && !windows

package host

import "runtime"

func osVersion() string { return runtime.GOOS }

func isElevated() bool { return false }
