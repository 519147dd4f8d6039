package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/matter/internal/errors"
)

func TestResolveHome(t *testing.T) {
	got, err := ResolveHome()
	want, _ := os.UserHomeDir()

	if err != nil {
		// Restricted environments may have no home directory.
		if !errors.Is(err, ErrHomeDirNotFound) {
			t.Errorf("unexpected error type: %v", err)
		}
	} else if got != want {
		t.Errorf("ResolveHome() = %q, want %q", got, want)
	}
}

func TestConfigHome(t *testing.T) {
	got := ConfigHome()
	if got == "" {
		t.Error("ConfigHome() returned empty string")
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ConfigHome() = %q, want absolute path", got)
	}
}

func TestConfigDir(t *testing.T) {
	got := ConfigDir()
	if filepath.Base(got) != AppDirName {
		t.Errorf("ConfigDir() = %q, want suffix %q", got, AppDirName)
	}
	if filepath.Dir(got) != ConfigHome() {
		t.Errorf("ConfigDir() = %q, want parent %q", got, ConfigHome())
	}
}

func TestEnsureDir(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		name string
		path string
		perm os.FileMode
		want os.FileMode
	}{
		{"default perm", filepath.Join(base, "a", "b"), 0, DefaultDirPerm},
		{"explicit perm", filepath.Join(base, "c"), 0o755, 0o755},
		{"existing dir", base, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := EnsureDir(tt.path, tt.perm); err != nil {
				t.Fatalf("EnsureDir() error = %v", err)
			}
			info, err := os.Stat(tt.path)
			if err != nil {
				t.Fatalf("Stat() error = %v", err)
			}
			if !info.IsDir() {
				t.Fatalf("%q is not a directory", tt.path)
			}
			if extra := info.Mode().Perm() &^ tt.want; tt.want != 0 && extra != 0 {
				t.Errorf("perm = %v, has bits beyond %v", info.Mode().Perm(), tt.want)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/notes/post.md", filepath.Join(home, "notes", "post.md")},
		{"/tmp/../tmp/post.md", "/tmp/post.md"},
		{"relative/./post.md", "relative/post.md"},
		{"~other/post.md", "~other/post.md"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandHome(tt.in)
			if err != nil {
				t.Fatalf("ExpandHome(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpandHome_Empty(t *testing.T) {
	_, err := ExpandHome("")
	if !errors.Is(err, ErrInvalidPath) {
		t.Errorf("ExpandHome(\"\") error = %v, want ErrInvalidPath", err)
	}
}
