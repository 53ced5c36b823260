package build

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolver turns dependency coordinates into files on disk.
type Resolver interface {
	Resolve(deps []Dependency) ([]string, error)
}

// MavenLocal resolves coordinates against a local Maven repository layout.
// It never downloads anything.
type MavenLocal struct {
	Root string
}

// DefaultMavenLocal returns a resolver for ~/.m2/repository.
func DefaultMavenLocal() MavenLocal {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return MavenLocal{Root: filepath.Join(home, ".m2", "repository")}
}

// Path returns where d's jar lives in the repository.
func (m MavenLocal) Path(d Dependency) string {
	groupDir := filepath.Join(strings.Split(d.Group, ".")...)
	return filepath.Join(m.Root, groupDir, d.Name, d.Version, d.Name+"-"+d.Version+".jar")
}

// Resolve returns the jar paths for deps, in order.
// A missing jar is reported with ErrMissingDependency.
func (m MavenLocal) Resolve(deps []Dependency) ([]string, error) {
	paths := make([]string, 0, len(deps))
	for _, d := range deps {
		p := m.Path(d)
		if _, err := os.Stat(p); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s (looked in %s)", ErrMissingDependency, d, p)
			}
			return nil, fmt.Errorf("resolve %s: %w", d, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}
