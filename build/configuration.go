package build

import (
	"fmt"
	"slices"
	"strings"
)

// Role tags a dependency bucket with what consumes it.
type Role string

const (
	// RoleAnnotationProcessor marks buckets resolved into the compiler's processor path.
	RoleAnnotationProcessor Role = "annotation-processor"
	// RoleCompileClasspath marks buckets resolved into the compile classpath.
	RoleCompileClasspath Role = "compile-classpath"
)

// Dependency is a "group:name:version" library coordinate.
type Dependency struct {
	Group   string
	Name    string
	Version string
}

// ParseDependency parses a "group:name:version" coordinate.
func ParseDependency(s string) (Dependency, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Dependency{}, fmt.Errorf("%w: %q: want group:name:version", ErrInvalidDependency, s)
	}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" || strings.ContainsAny(p, " \t/\\") {
			return Dependency{}, fmt.Errorf("%w: %q", ErrInvalidDependency, s)
		}
	}
	return Dependency{Group: parts[0], Name: parts[1], Version: parts[2]}, nil
}

// MustParseDependency is like ParseDependency but panics on error.
func MustParseDependency(s string) Dependency {
	d, err := ParseDependency(s)
	if err != nil {
		panic(fmt.Sprintf("build: %v", err))
	}
	return d
}

func (d Dependency) String() string {
	return d.Group + ":" + d.Name + ":" + d.Version
}

// Configuration is a named, mutable bucket of dependency coordinates.
type Configuration struct {
	name  string
	roles []Role
	deps  []Dependency
}

// Name returns the bucket name.
func (c *Configuration) Name() string { return c.name }

// HasRole reports whether the bucket is tagged with role.
func (c *Configuration) HasRole(role Role) bool {
	return slices.Contains(c.roles, role)
}

// Add appends d unless the bucket already holds it.
// It reports whether the bucket changed.
func (c *Configuration) Add(d Dependency) bool {
	if slices.Contains(c.deps, d) {
		return false
	}
	c.deps = append(c.deps, d)
	return true
}

// Dependencies returns the coordinates in insertion order.
func (c *Configuration) Dependencies() []Dependency {
	return slices.Clone(c.deps)
}

// Configurations holds a project's dependency buckets.
type Configurations struct {
	project *Project
	items   []*Configuration
	hooks   []func(*Configuration)
}

func newConfigurations(p *Project) *Configurations {
	return &Configurations{project: p}
}

// Create returns the bucket with the given name, creating it if needed.
// Roles are added to an existing bucket. Callbacks registered with All run
// once, when the bucket is first created.
func (cs *Configurations) Create(name string, roles ...Role) *Configuration {
	if c, ok := cs.Get(name); ok {
		for _, r := range roles {
			if !c.HasRole(r) {
				c.roles = append(c.roles, r)
			}
		}
		return c
	}
	c := &Configuration{name: name, roles: slices.Clone(roles)}
	cs.items = append(cs.items, c)
	cs.project.logger.Debug().Str("bucket", name).Msg("created dependency bucket")
	for _, fn := range cs.hooks {
		fn(c)
	}
	return c
}

// Get returns the bucket with the given name.
func (cs *Configurations) Get(name string) (*Configuration, bool) {
	for _, c := range cs.items {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// All calls fn for every bucket: the existing ones and every one created later.
func (cs *Configurations) All(fn func(*Configuration)) {
	existing := slices.Clone(cs.items)
	cs.hooks = append(cs.hooks, fn)
	for _, c := range existing {
		fn(c)
	}
}
