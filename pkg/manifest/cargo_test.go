package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/libcheck/pkg/errors"
)

// writeManifest creates a Cargo.toml (and optionally src/lib.rs) in a temp
// directory and returns the manifest path.
func writeManifest(t *testing.T, contents string, withLibRS bool) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "Cargo.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	if withLibRS {
		if err := os.MkdirAll(filepath.Join(dir, "src"), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "src", "lib.rs"), []byte("// empty\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func TestSupports(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"Cargo.toml", true},
		{"cargo.toml", true},
		{"/some/dir/Cargo.toml", true},
		{"metadata.json", false},
		{"Cargo.lock", false},
	}

	for _, tt := range tests {
		if got := Supports(tt.path); got != tt.want {
			t.Errorf("Supports(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestHasLibTarget(t *testing.T) {
	tests := []struct {
		name      string
		contents  string
		withLibRS bool
		pkg       string
		want      bool
	}{
		{
			name:     "explicit lib table",
			contents: "[package]\nname = \"core\"\nversion = \"0.1.0\"\n\n[lib]\nname = \"core\"\n",
			pkg:      "core",
			want:     true,
		},
		{
			name:      "auto-discovered lib.rs",
			contents:  "[package]\nname = \"core\"\nversion = \"0.1.0\"\n",
			withLibRS: true,
			pkg:       "core",
			want:      true,
		},
		{
			name:     "no lib table and no lib.rs",
			contents: "[package]\nname = \"core\"\nversion = \"0.1.0\"\n\n[[bin]]\nname = \"core\"\n",
			pkg:      "core",
			want:     false,
		},
		{
			name:      "name mismatch",
			contents:  "[package]\nname = \"core\"\nversion = \"0.1.0\"\n",
			withLibRS: true,
			pkg:       "other",
			want:      false,
		},
		{
			name:      "workspace manifest without package table",
			contents:  "[workspace]\nmembers = [\"crates/*\"]\n",
			withLibRS: true,
			pkg:       "core",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.contents, tt.withLibRS)
			got, err := HasLibTarget(path, tt.pkg)
			if err != nil {
				t.Fatalf("HasLibTarget() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("HasLibTarget(%q) = %v, want %v", tt.pkg, got, tt.want)
			}
		})
	}
}

func TestHasLibTargetErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := HasLibTarget(filepath.Join(t.TempDir(), "Cargo.toml"), "core")
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
		}
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeManifest(t, "[package\nname = broken", false)
		_, err := HasLibTarget(path, "core")
		if !errors.Is(err, errors.ErrCodeInvalidManifest) {
			t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidManifest)
		}
	})
}
