package build

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJavacCommand(t *testing.T) {
	opts := CompileOptions{
		CompilerArgs: []string{"-Xplugin:Napt"},
		Fork:         true,
		ForkOptions:  ForkOptions{JvmArgs: []string{"--add-opens", "jdk.compiler/com.sun.tools.javac.api=ALL-UNNAMED"}},
	}

	got := JavacCommand(opts, []string{"a.jar", "b.jar"}, "out", []string{"A.java"})

	sep := string(os.PathListSeparator)
	assert.Equal(t, []string{
		"javac",
		"-J--add-opens", "-Jjdk.compiler/com.sun.tools.javac.api=ALL-UNNAMED",
		"-Xplugin:Napt",
		"-processorpath", "a.jar" + sep + "b.jar",
		"-d", "out",
		"A.java",
	}, got)
}

func TestJavacCommand_NoFork(t *testing.T) {
	opts := CompileOptions{ForkOptions: ForkOptions{JvmArgs: []string{"-Xmx1g"}}}

	got := JavacCommand(opts, nil, "out", nil)

	assert.Equal(t, []string{"javac", "-d", "out"}, got)
}

func TestJavaCompile_Sources(t *testing.T) {
	p := newTestProject(t)
	jc := NewJavaCompile(p, "compileJava", "compile", []string{MainJavaDir, "src/missing"}, "build/classes", nil)
	files := []string{
		"src/main/java/com/example/B.java",
		"src/main/java/com/example/A.java",
		"src/main/java/com/example/notes.txt",
	}
	for _, f := range files {
		path := p.FromDir(f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	got, err := jc.Sources()

	require.NoError(t, err)
	assert.Equal(t, []string{
		p.FromDir("src/main/java/com/example/A.java"),
		p.FromDir("src/main/java/com/example/B.java"),
	}, got)
}

func TestJavaCompile_Command(t *testing.T) {
	p := newTestProject(t)
	repo := t.TempDir()
	p.resolver = MavenLocal{Root: repo}
	processors := p.Configurations().Create(AnnotationProcessorBucket, RoleAnnotationProcessor)
	jc := NewJavaCompile(p, "compileJava", "compile", []string{MainJavaDir}, "build/classes", processors)

	d := MustParseDependency("io.github.sergei-lapin.napt:javac:1.1")
	processors.Add(d)

	_, err := jc.Command(nil)
	require.ErrorIs(t, err, ErrMissingDependency)

	jar := MavenLocal{Root: repo}.Path(d)
	require.NoError(t, os.MkdirAll(filepath.Dir(jar), 0o755))
	require.NoError(t, os.WriteFile(jar, nil, 0o644))

	got, err := jc.Command([]string{"A.java"})
	require.NoError(t, err)
	assert.Equal(t, []string{"javac", "-processorpath", jar, "-d", p.FromDir("build/classes"), "A.java"}, got)
}

func TestJavaCompile_SkipsWithoutSources(t *testing.T) {
	p := newTestProject(t)
	NewJavaCompile(p, "compileJava", "compile", []string{MainJavaDir}, "build/classes", nil)

	require.NoError(t, p.Run(context.Background(), "compileJava"))
	assert.NoDirExists(t, p.FromDir("build"))
}

func TestMavenLocal_Path(t *testing.T) {
	m := MavenLocal{Root: filepath.FromSlash("/repo")}
	got := m.Path(MustParseDependency("io.github.sergei-lapin.napt:javac:1.1"))
	assert.Equal(t, filepath.FromSlash("/repo/io/github/sergei-lapin/napt/javac/1.1/javac-1.1.jar"), got)
}

func TestShellJoin(t *testing.T) {
	got := shellJoin([]string{"javac", "-d", "/tmp/my dir", "it's", ""})
	assert.Equal(t, `javac -d '/tmp/my dir' 'it'\''s' ''`, got)
	assert.False(t, strings.Contains(shellJoin([]string{"plain"}), "'"))
}

func TestShellJoin_Operators(t *testing.T) {
	for _, dir := range []string{"/home/u/R&D/app", "/tmp/a;b", "/tmp/a|b", "/tmp/x>y", "/tmp/x<y", "/tmp/(sub)", "/tmp/*", "/tmp/~me"} {
		t.Run(dir, func(t *testing.T) {
			args := []string{"javac", "-d", dir + "/build", dir + "/src/A.java"}

			got := shellJoin(args)

			assert.Equal(t, "javac -d '"+dir+"/build' '"+dir+"/src/A.java'", got)
		})
	}
}

func TestShellJoin_SafeArgsBare(t *testing.T) {
	args := []string{
		"javac",
		"-J--add-opens", "-Jjdk.compiler/com.sun.tools.javac.api=ALL-UNNAMED",
		"-Xplugin:Napt",
		"-processorpath", "/repo/a-1.0.jar:/repo/b+c@2,x.jar",
	}

	assert.Equal(t, strings.Join(args, " "), shellJoin(args))
}
