package build

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goyek/goyek/v3"
	"github.com/goyek/x/cmd"
)

// CompileOptions is the mutable compiler configuration of a compile task.
// Plugins append to the lists; they never replace or reorder entries.
type CompileOptions struct {
	// CompilerArgs are passed to the compiler itself.
	CompilerArgs []string
	// Fork runs the compiler in a separate JVM.
	Fork bool
	// ForkOptions configure the forked JVM.
	ForkOptions ForkOptions
}

// ForkOptions configure the process the compiler runs in.
type ForkOptions struct {
	// JvmArgs are passed to the forked JVM (javac receives them as -J<arg>).
	JvmArgs []string
}

// JavaCompile wires a KindJavaCompile task to javac.
type JavaCompile struct {
	Task *Task
	// SourceDirs are scanned for .java files, relative to the project directory.
	SourceDirs []string
	// DestinationDir receives class files, relative to the project directory.
	DestinationDir string
	// ProcessorPath is resolved into -processorpath. May be nil.
	ProcessorPath *Configuration
}

// NewJavaCompile registers a javac task.
func NewJavaCompile(p *Project, name, description string, sourceDirs []string, dest string, processorPath *Configuration) *JavaCompile {
	jc := &JavaCompile{
		SourceDirs:     sourceDirs,
		DestinationDir: dest,
		ProcessorPath:  processorPath,
	}
	jc.Task = p.Tasks().Register(TaskSpec{
		Name:        name,
		Description: description,
		Group:       "build",
		Kind:        KindJavaCompile,
		Action:      jc.run,
	})
	return jc
}

// Sources returns the .java files under SourceDirs, sorted.
// Source directories that do not exist are ignored.
func (jc *JavaCompile) Sources() ([]string, error) {
	p := jc.Task.Project()
	var sources []string
	for _, dir := range jc.SourceDirs {
		root := p.FromDir(dir)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if os.IsNotExist(err) && path == root {
					return filepath.SkipDir
				}
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".java") {
				sources = append(sources, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	slices.Sort(sources)
	return sources, nil
}

// Command returns the javac command line for the given sources.
func (jc *JavaCompile) Command(sources []string) ([]string, error) {
	p := jc.Task.Project()
	var processorPath []string
	if jc.ProcessorPath != nil {
		var err error
		processorPath, err = p.Resolver().Resolve(jc.ProcessorPath.Dependencies())
		if err != nil {
			return nil, err
		}
	}
	return JavacCommand(*jc.Task.CompileOptions(), processorPath, p.FromDir(jc.DestinationDir), sources), nil
}

// JavacCommand builds a javac command line.
func JavacCommand(opts CompileOptions, processorPath []string, dest string, sources []string) []string {
	args := []string{"javac"}
	if opts.Fork {
		for _, arg := range opts.ForkOptions.JvmArgs {
			args = append(args, "-J"+arg)
		}
	}
	args = append(args, opts.CompilerArgs...)
	if len(processorPath) > 0 {
		args = append(args, "-processorpath", strings.Join(processorPath, string(os.PathListSeparator)))
	}
	args = append(args, "-d", dest)
	return append(args, sources...)
}

func (jc *JavaCompile) run(a *goyek.A) {
	sources, err := jc.Sources()
	if err != nil {
		a.Fatalf("collect sources: %v", err)
	}
	if len(sources) == 0 {
		a.Skip("no Java sources")
	}
	args, err := jc.Command(sources)
	if err != nil {
		a.Fatal(err)
	}
	p := jc.Task.Project()
	if err := os.MkdirAll(p.FromDir(jc.DestinationDir), 0o755); err != nil {
		a.Fatalf("create output dir: %v", err)
	}
	if !cmd.Exec(a, shellJoin(args), cmd.Dir(p.Dir())) {
		a.FailNow()
	}
}

// shellJoin quotes args for cmd.Exec, which splits its command line shell-style
// and stops at operators such as ; & | < >. Only args made entirely of safe
// characters are left bare.
func shellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		if arg != "" && strings.IndexFunc(arg, isUnsafeShellRune) < 0 {
			quoted[i] = arg
			continue
		}
		quoted[i] = "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
	}
	return strings.Join(quoted, " ")
}

func isUnsafeShellRune(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return false
	}
	return !strings.ContainsRune("_./:=@+,-", r)
}
