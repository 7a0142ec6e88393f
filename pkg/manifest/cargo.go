package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/libcheck/pkg/errors"
)

// libSource is the conventional library root cargo auto-discovers.
const libSource = "src/lib.rs"

type cargoFile struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
	Lib *struct {
		Name string `toml:"name"`
		Path string `toml:"path"`
	} `toml:"lib"`
}

// Supports reports whether path looks like a Cargo manifest.
func Supports(path string) bool {
	return strings.EqualFold(filepath.Base(path), "cargo.toml")
}

// HasLibTarget reports whether the package declared in the Cargo.toml at path
// is named pkg and produces a library target. Name matching is exact and
// case-sensitive, like the metadata lookup.
func HasLibTarget(path, pkg string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, errors.Wrap(errors.ErrCodeFileNotFound, err, "read manifest %s", path)
		}
		return false, errors.Wrap(errors.ErrCodeInvalidInput, err, "read manifest %s", path)
	}

	var cargo cargoFile
	if err := toml.Unmarshal(data, &cargo); err != nil {
		return false, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse manifest %s", path)
	}

	if cargo.Package.Name != pkg {
		return false, nil
	}
	if cargo.Lib != nil {
		return true, nil
	}

	// No explicit [lib] table: fall back to cargo's auto-discovery rule.
	libPath := filepath.Join(filepath.Dir(path), filepath.FromSlash(libSource))
	info, err := os.Stat(libPath)
	if err != nil {
		return false, nil
	}
	return !info.IsDir(), nil
}
