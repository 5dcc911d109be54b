//go:build !windows

package dynlib

import (
	"errors"
	"runtime"

	"github.com/ebitengine/purego"
)

const defaultFlags = purego.RTLD_NOW | purego.RTLD_GLOBAL

var errNullHandle = errors.New("dlopen returned a NULL handle")

func loadLibrary(path string, flags int) (uintptr, error) {
	libHandle, err := purego.Dlopen(path, flags)
	if err != nil {
		return 0, err
	}
	if libHandle == 0 {
		return 0, errNullHandle
	}
	return libHandle, nil
}

func getSymbol(handle uintptr, symbol string) (uintptr, error) {
	return purego.Dlsym(handle, symbol)
}

func closeLibrary(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return purego.Dlclose(handle)
}

// SystemLibrary returns the name of the C runtime library, which is always
// loadable.
func SystemLibrary() string {
	switch runtime.GOOS {
	case "darwin", "ios":
		return "/usr/lib/libSystem.B.dylib"
	case "freebsd":
		return "libc.so.7"
	case "netbsd":
		return "libc.so"
	default:
		return "libc.so.6"
	}
}
