// Package build is a small build orchestrator on top of goyek.
// It provides the task and dependency abstractions that napt plugs into:
// typed tasks with ordering edges, dependency buckets and callbacks that
// configure matching tasks and buckets, including ones registered later.
package build

import (
	"context"
	"path/filepath"

	"github.com/goyek/goyek/v3"
	"github.com/rs/zerolog"
)

// Project is the configuration root for a single build.
// It is not safe for concurrent configuration; tasks may still be executed
// in parallel by goyek once configuration is done.
type Project struct {
	name string
	dir  string

	flow     *goyek.Flow
	logger   zerolog.Logger
	resolver Resolver

	tasks          *TaskContainer
	configurations *Configurations
}

// Option configures a Project.
type Option func(*Project)

// WithFlow sets the goyek flow tasks are defined in.
// Defaults to goyek.DefaultFlow.
func WithFlow(flow *goyek.Flow) Option {
	return func(p *Project) {
		p.flow = flow
	}
}

// WithLogger sets the logger used for configuration-time diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Project) {
		p.logger = logger
	}
}

// WithResolver sets the resolver used to turn dependency coordinates into files.
func WithResolver(r Resolver) Option {
	return func(p *Project) {
		p.resolver = r
	}
}

// NewProject creates a project named name rooted at dir.
// A relative dir is made absolute against the working directory.
func NewProject(name, dir string, opts ...Option) *Project {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	p := &Project{
		name:   name,
		dir:    dir,
		flow:   goyek.DefaultFlow,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.resolver == nil {
		p.resolver = DefaultMavenLocal()
	}
	p.tasks = newTaskContainer(p)
	p.configurations = newConfigurations(p)
	return p
}

// Name returns the project identifier.
func (p *Project) Name() string { return p.name }

// Dir returns the absolute project directory.
func (p *Project) Dir() string { return p.dir }

// FromDir returns a path relative to the project directory.
func (p *Project) FromDir(elem ...string) string {
	return filepath.Join(append([]string{p.dir}, elem...)...)
}

// Logger returns the project logger.
func (p *Project) Logger() zerolog.Logger { return p.logger }

// Flow returns the goyek flow the project's tasks are defined in.
func (p *Project) Flow() *goyek.Flow { return p.flow }

// Resolver returns the dependency resolver.
func (p *Project) Resolver() Resolver { return p.resolver }

// Tasks returns the project's task container.
func (p *Project) Tasks() *TaskContainer { return p.tasks }

// Configurations returns the project's dependency buckets.
func (p *Project) Configurations() *Configurations { return p.configurations }

// Run executes the named tasks and everything they depend on.
func (p *Project) Run(ctx context.Context, names ...string) error {
	for _, name := range names {
		if _, ok := p.tasks.Get(name); !ok {
			return unknownTaskError(name)
		}
	}
	return p.flow.Execute(ctx, names)
}
