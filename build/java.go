package build

import (
	"os"

	"github.com/goyek/goyek/v3"
)

// Conventional bucket and directory names for a Java project.
const (
	AnnotationProcessorBucket     = "annotationProcessor"
	TestAnnotationProcessorBucket = "testAnnotationProcessor"
	MainJavaDir                   = "src/main/java"
	BuildDir                      = "build"
)

// JavaTasks holds the tasks registered by ApplyJava.
type JavaTasks struct {
	// CompileJava compiles src/main/java into build/classes/java/main.
	CompileJava *JavaCompile

	// Clean removes the build directory.
	Clean *Task

	// Build runs the full build.
	Build *Task
}

// ApplyJava registers the conventional Java buckets and tasks.
func ApplyJava(p *Project) *JavaTasks {
	processors := p.Configurations().Create(AnnotationProcessorBucket, RoleAnnotationProcessor)
	p.Configurations().Create(TestAnnotationProcessorBucket, RoleAnnotationProcessor)

	t := &JavaTasks{}
	t.CompileJava = NewJavaCompile(p, "compileJava", "compile main Java sources",
		[]string{MainJavaDir}, "build/classes/java/main", processors)

	t.Clean = NewDelete(p, "clean", "delete the build directory", BuildDir)

	t.Build = p.Tasks().Register(TaskSpec{
		Name:        "build",
		Description: "assemble the project",
		Group:       "build",
	})
	t.Build.DependsOn(t.CompileJava.Task)

	return t
}

// NewDelete registers a KindDelete task removing targets, relative to the project directory.
func NewDelete(p *Project, name, description string, targets ...string) *Task {
	return p.Tasks().Register(TaskSpec{
		Name:        name,
		Description: description,
		Group:       "build",
		Kind:        KindDelete,
		Action: func(a *goyek.A) {
			for _, target := range targets {
				path := p.FromDir(target)
				if _, err := os.Stat(path); err != nil {
					continue
				}
				if err := os.RemoveAll(path); err != nil {
					a.Fatalf("remove %s: %v", target, err)
				}
				a.Logf("Removed %s", path)
			}
		},
	})
}
