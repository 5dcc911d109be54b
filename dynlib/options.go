package dynlib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// SearchPathEnv names the environment variable holding default search
// directories, separated by os.PathListSeparator.
const SearchPathEnv = "DYNLIB_SEARCH_PATH"

// Option configures Open.
type Option func(*config) error

type config struct {
	searchPaths []string
	flags       int
	logger      *zap.Logger
}

// WithSearchPaths adds directories that are probed, in order, for a bare
// library name before falling back to the platform loader's own search.
func WithSearchPaths(dirs ...string) Option {
	return func(cfg *config) error {
		for _, dir := range dirs {
			dir = strings.TrimSpace(dir)
			if dir == "" {
				return fmt.Errorf("search path cannot be empty")
			}
			cfg.searchPaths = append(cfg.searchPaths, dir)
		}
		return nil
	}
}

// WithFlags sets the dlopen mode flags. The default is RTLD_NOW|RTLD_GLOBAL.
// Flags are ignored on Windows.
func WithFlags(flags int) Option {
	return func(cfg *config) error {
		if flags == 0 {
			return fmt.Errorf("dlopen flags cannot be zero")
		}
		cfg.flags = flags
		return nil
	}
}

// WithLogger sets the logger used for this library instead of Logger().
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) error {
		if l == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		cfg.logger = l
		return nil
	}
}

func resolveConfig(opts ...Option) (config, error) {
	cfg := config{
		searchPaths: splitSearchPath(os.Getenv(SearchPathEnv)),
		flags:       defaultFlags,
		logger:      Logger(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

func splitSearchPath(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	var dirs []string
	for _, dir := range filepath.SplitList(value) {
		if dir = strings.TrimSpace(dir); dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// candidates lists the paths Open tries for name, in order. A name that
// already contains a directory is returned unchanged.
func (cfg config) candidates(name string) []string {
	if filepath.Base(name) != name {
		return []string{name}
	}
	paths := make([]string, 0, len(cfg.searchPaths)+1)
	for _, dir := range cfg.searchPaths {
		paths = append(paths, filepath.Join(dir, name))
	}
	return append(paths, name)
}

// resolve returns the first candidate that exists on disk. The bare name is
// the last candidate and is handed to the platform loader as is.
func (cfg config) resolve(name string) string {
	paths := cfg.candidates(name)
	for _, path := range paths[:len(paths)-1] {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return paths[len(paths)-1]
}
