// Package dynlib opens shared libraries and resolves their exported symbols
// on every platform supported by purego, without CGO.
//
// On Windows the loader is reached through package kernel32; elsewhere it is
// dlopen(3) through purego. Resolved addresses can be bound to Go function
// variables with Bind.
package dynlib
