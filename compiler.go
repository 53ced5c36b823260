package napt

import (
	"github.com/fredrikaverpil/napt/build"
	"github.com/rs/zerolog"
)

// PluginFlag activates the plugin in javac.
const PluginFlag = "-Xplugin:Napt"

// openedPackages are the javac internals the plugin reaches into reflectively.
var openedPackages = []string{
	"jdk.compiler/com.sun.tools.javac.util",
	"jdk.compiler/com.sun.tools.javac.api",
	"jdk.compiler/com.sun.tools.javac.main",
}

// CompileTasks enumerates tasks by kind, including ones registered later.
type CompileTasks interface {
	WithKind(fn func(*build.Task), kinds ...build.Kind)
}

// ConfigureCompilers applies ConfigureCompiler to every javac task, present and future.
func ConfigureCompilers(tasks CompileTasks, log zerolog.Logger) {
	tasks.WithKind(func(t *build.Task) {
		ConfigureCompiler(t.CompileOptions())
		log.Debug().Str("task", t.Name()).Msg("configured javac for plugin")
	}, build.KindJavaCompile)
}

// ConfigureCompiler appends the plugin flag to the compiler arguments and the
// --add-opens grants to the forked JVM arguments. Forking is switched on
// because the grants only take effect in a separate JVM.
func ConfigureCompiler(opts *build.CompileOptions) {
	opts.CompilerArgs = append(opts.CompilerArgs, PluginFlag)
	opts.Fork = true
	opts.ForkOptions.JvmArgs = append(opts.ForkOptions.JvmArgs, AddOpens(openedPackages...)...)
}

// AddOpens returns one "--add-opens <module/package>=ALL-UNNAMED" pair per package.
func AddOpens(modulePackages ...string) []string {
	args := make([]string, 0, 2*len(modulePackages))
	for _, pkg := range modulePackages {
		args = append(args, "--add-opens", pkg+"=ALL-UNNAMED")
	}
	return args
}
