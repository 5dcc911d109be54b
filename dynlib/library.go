package dynlib

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"
)

var (
	// ErrClosed is returned by Lookup, Bind and Close after Close.
	ErrClosed = errors.New("dynlib: library is closed")

	// ErrSymbolNotFound is matched by every failed Lookup of an open library.
	ErrSymbolNotFound = errors.New("dynlib: symbol not found")

	// ErrInvalidFunc is returned by Bind when the target is not a non-nil
	// pointer to a func variable.
	ErrInvalidFunc = errors.New("dynlib: target must be a non-nil pointer to a func")
)

// Library is an open shared library. It is safe for concurrent use; Close
// waits for in-flight lookups.
type Library struct {
	mu     sync.RWMutex
	handle uintptr
	path   string
	log    *zap.Logger
}

// Open loads the shared library name and returns a handle to it. A bare name
// is first searched in the configured search paths.
func Open(name string, opts ...Option) (*Library, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("dynlib: library name cannot be empty")
	}
	cfg, err := resolveConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("dynlib: %w", err)
	}

	path := cfg.resolve(name)
	handle, err := loadLibrary(path, cfg.flags)
	if err != nil {
		cfg.logger.Debug("open failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("dynlib: failed to open %s: %w", path, err)
	}
	cfg.logger.Debug("opened library", zap.String("path", path), zap.Uintptr("handle", handle))

	return &Library{handle: handle, path: path, log: cfg.logger}, nil
}

// Path returns the path the library was opened from.
func (l *Library) Path() string {
	return l.path
}

// Handle returns the platform handle, or 0 after Close.
func (l *Library) Handle() uintptr {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.handle
}

// Lookup returns the address of the exported symbol.
func (l *Library) Lookup(symbol string) (uintptr, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.handle == 0 {
		return 0, ErrClosed
	}
	addr, err := getSymbol(l.handle, symbol)
	if err != nil {
		return 0, fmt.Errorf("%w: %s in %s: %w", ErrSymbolNotFound, symbol, l.path, err)
	}
	if addr == 0 {
		return 0, fmt.Errorf("%w: %s in %s", ErrSymbolNotFound, symbol, l.path)
	}
	l.log.Debug("resolved symbol", zap.String("symbol", symbol), zap.Uintptr("addr", addr))
	return addr, nil
}

// Bind resolves symbol and stores a Go wrapper for it in fptr, which must
// point to a func variable. The caller is responsible for the signature
// matching the native function.
func (l *Library) Bind(fptr any, symbol string) error {
	v := reflect.ValueOf(fptr)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Func {
		return ErrInvalidFunc
	}
	addr, err := l.Lookup(symbol)
	if err != nil {
		return err
	}
	purego.RegisterFunc(fptr, addr)
	return nil
}

// Close unloads the library. Calling Close again returns ErrClosed.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.handle == 0 {
		return ErrClosed
	}
	err := closeLibrary(l.handle)
	l.handle = 0
	if err != nil {
		return fmt.Errorf("dynlib: failed to close %s: %w", l.path, err)
	}
	l.log.Debug("closed library", zap.String("path", l.path))
	return nil
}
