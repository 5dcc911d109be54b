//go:build windows

package dynlib

import (
	"github.com/amikos-tech/pure-kernel32/kernel32"
)

// defaultFlags only satisfies the shared config; LoadLibraryA takes no mode.
const defaultFlags = 1

func loadLibrary(path string, _ int) (uintptr, error) {
	handle, err := kernel32.LoadLibraryA(path)
	if err != nil {
		return 0, err
	}
	return uintptr(handle), nil
}

func getSymbol(handle uintptr, symbol string) (uintptr, error) {
	proc, err := kernel32.GetProcAddress(kernel32.HMODULE(handle), symbol)
	if err != nil {
		return 0, err
	}
	return uintptr(proc), nil
}

func closeLibrary(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return kernel32.FreeLibraryErr(kernel32.HMODULE(handle))
}

// SystemLibrary returns the name of a library that is always loadable.
func SystemLibrary() string {
	return "kernel32.dll"
}
