package kernel32

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestNoCgoImportInLibraryPackages enforces the no-CGO contract for the
// packages that talk to the platform loader.
func TestNoCgoImportInLibraryPackages(t *testing.T) {
	root, err := resolveModuleRoot()
	if err != nil {
		t.Fatal(err)
	}

	for _, pkg := range []string{"kernel32", "dynlib"} {
		dir := filepath.Join(root, pkg)
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("failed to read %s package directory: %v", pkg, err)
		}

		fset := token.NewFileSet()
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasSuffix(name, ".go") {
				continue
			}

			file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("failed to parse %s/%s: %v", pkg, name, err)
			}
			for _, imp := range file.Imports {
				if imp.Path != nil && imp.Path.Value == "\"C\"" {
					t.Fatalf("CGO import detected in %s/%s: import \"C\" is forbidden", pkg, name)
				}
			}
		}
	}
}

func resolveModuleRoot() (string, error) {
	candidates := make([]string, 0, 3)

	if wd, err := os.Getwd(); err == nil && wd != "" {
		candidates = append(candidates, filepath.Dir(wd), wd)
	}
	if _, thisFile, _, ok := runtime.Caller(0); ok {
		candidates = append(candidates, filepath.Dir(filepath.Dir(thisFile)))
	}

	for _, dir := range candidates {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
	}

	return "", fmt.Errorf("failed to locate module root; checked: %v", candidates)
}
