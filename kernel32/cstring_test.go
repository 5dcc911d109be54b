package kernel32

import (
	"errors"
	"strings"
	"testing"
)

func TestCString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"simple ascii", "kernel32.dll"},
		{"with path", `C:\Windows\System32\kernel32.dll`},
		{"unicode", "Hello, 世界"},
		{"long string", strings.Repeat("a", 1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := cString("LoadLibraryA", tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(b) != len(tt.input)+1 {
				t.Errorf("expected byte slice length %d, got %d", len(tt.input)+1, len(b))
			}
			if b[len(b)-1] != 0 {
				t.Error("expected null terminator at end of byte slice")
			}
			if string(b[:len(b)-1]) != tt.input {
				t.Errorf("expected content %q, got %q", tt.input, string(b[:len(b)-1]))
			}
		})
	}
}

func TestCStringEmbeddedNUL(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{"leading", "\x00kernel32.dll", 0},
		{"middle", "kernel32\x00.dll", 8},
		{"trailing", "kernel32.dll\x00", 12},
		{"only", "\x00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := cString("GetProcAddress", tt.input)
			if err == nil {
				t.Fatalf("expected conversion error, got buffer %q", b)
			}
			if b != nil {
				t.Errorf("expected nil buffer on error, got %q", b)
			}
			if !errors.Is(err, ErrEmbeddedNUL) {
				t.Errorf("expected errors.Is(err, ErrEmbeddedNUL), got %v", err)
			}

			var convErr *ConversionError
			if !errors.As(err, &convErr) {
				t.Fatalf("expected *ConversionError, got %T", err)
			}
			if convErr.Op != "GetProcAddress" {
				t.Errorf("expected op GetProcAddress, got %q", convErr.Op)
			}
			if convErr.Offset != tt.offset {
				t.Errorf("expected offset %d, got %d", tt.offset, convErr.Offset)
			}
		})
	}
}

func TestCheckText(t *testing.T) {
	if err := checkText("GetModuleHandleW", "ntdll"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := checkText("GetModuleHandleW", ""); err != nil {
		t.Errorf("empty text must be accepted: %v", err)
	}
	if err := checkText("GetModuleHandleW", "nt\x00dll"); !errors.Is(err, ErrEmbeddedNUL) {
		t.Errorf("expected ErrEmbeddedNUL, got %v", err)
	}
}

func TestCStringPreservesBytes(t *testing.T) {
	input := "GetTickCount"
	b1, err := cString("GetProcAddress", input)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := cString("GetProcAddress", input)
	if err != nil {
		t.Fatal(err)
	}

	if &b1[0] == &b2[0] {
		t.Error("expected different buffers for different calls")
	}
	if string(b1) != string(b2) {
		t.Errorf("expected identical content, got %q and %q", b1, b2)
	}
}

func BenchmarkCString(b *testing.B) {
	tests := []struct {
		name  string
		input string
	}{
		{"short", "kernel32"},
		{"medium", strings.Repeat("a", 100)},
		{"long", strings.Repeat("b", 1000)},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				buf, _ := cString("LoadLibraryA", tt.input)
				_ = buf
			}
		})
	}
}
