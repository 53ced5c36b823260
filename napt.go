// Package napt wires the NAPT javac plugin into a build.
//
// Applying it to a project puts the plugin on every annotation processor
// path and passes javac the flags the plugin needs. It also maintains a
// generated NaptTrigger.java so that javac, and with it the plugin, runs on
// every build, even when no other Java source changed.
package napt

import (
	"github.com/fredrikaverpil/napt/build"
)

const (
	// CompilerPlugin is the coordinate of the NAPT javac plugin.
	CompilerPlugin = "io.github.sergei-lapin.napt:javac:1.1"

	// TriggerFileName is the name of the generated trigger source.
	TriggerFileName = "NaptTrigger.java"

	// TaskGroup groups the trigger tasks in help output.
	TaskGroup = "napt"

	defaultNamespace = "napt"
)

// Tasks holds the tasks registered by Apply.
type Tasks struct {
	// CreateTrigger writes NaptTrigger.java before compilation.
	CreateTrigger *TriggerTask

	// CleanTrigger removes NaptTrigger.java when the project is cleaned.
	CleanTrigger *TriggerTask
}

// Apply configures p for the NAPT plugin.
// Buckets and tasks registered after Apply are configured as well.
func Apply(p *build.Project, ext Extension) *Tasks {
	ext = ext.WithDefaults()
	log := p.Logger().With().Str("plugin", "napt").Logger()

	InjectDependency(p.Configurations(), build.MustParseDependency(CompilerPlugin), log)

	t := &Tasks{}
	t.CreateTrigger = BindTriggerCreation(p, ext)
	ConfigureCompilers(p.Tasks(), log)
	t.CleanTrigger = BindTriggerCleaning(p, ext)
	return t
}

// projectContext builds the trigger inputs for p.
func projectContext(p *build.Project, ext Extension) ProjectContext {
	return ProjectContext{
		Dir:             p.Dir(),
		SourceDir:       ext.SourceDir,
		Name:            p.Name(),
		PackagePrefix:   ext.PackagePrefix,
		GenerateTrigger: ext.ShouldGenerateTrigger(),
	}
}
