package napt

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ProjectContext is the per-build input to trigger resolution.
// It is read-only once built.
type ProjectContext struct {
	// Dir is the project root directory.
	Dir string
	// SourceDir is the Java source root, relative to Dir (or absolute, under Dir).
	// It may not exist yet.
	SourceDir string
	// Name is the project identifier.
	Name string
	// PackagePrefix overrides the trigger's package when non-blank.
	PackagePrefix string
	// GenerateTrigger enables trigger creation.
	GenerateTrigger bool
}

// Descriptor locates the trigger artifact of a project.
// It is computed on demand and never stored.
type Descriptor struct {
	// Path is the absolute path of the trigger file.
	Path string
	// Namespace is the Java package the trigger declares.
	Namespace string
	// SourceRoot is the absolute source root; cleanup never goes above it.
	SourceRoot string
}

// Resolve computes where the trigger lives and which package it declares.
// It is pure: it never touches the filesystem.
func Resolve(ctx ProjectContext) Descriptor {
	sourceRoot := ctx.SourceDir
	if !filepath.IsAbs(sourceRoot) {
		sourceRoot = filepath.Join(ctx.Dir, sourceRoot)
	}
	sourceRoot = filepath.Clean(sourceRoot)

	namespace := Namespace(ctx.PackagePrefix, ctx.Name)
	elem := append([]string{sourceRoot}, strings.Split(namespace, ".")...)
	elem = append(elem, TriggerFileName)

	return Descriptor{
		Path:       filepath.Join(elem...),
		Namespace:  namespace,
		SourceRoot: sourceRoot,
	}
}

// Namespace returns the trigger package: the sanitized prefix if it has any
// usable segment, otherwise a package derived from the project name.
func Namespace(packagePrefix, projectName string) string {
	if ns := sanitizePackage(packagePrefix); ns != "" {
		return ns
	}
	if id := sanitizeIdentifier(projectName); id != "" {
		return defaultNamespace + "." + id
	}
	return defaultNamespace
}

func sanitizePackage(pkg string) string {
	var segments []string
	for _, s := range strings.Split(pkg, ".") {
		if id := sanitizeIdentifier(s); id != "" {
			segments = append(segments, id)
		}
	}
	return strings.Join(segments, ".")
}

// sanitizeIdentifier turns s into a valid Java identifier, or "" if s is blank.
func sanitizeIdentifier(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	id := b.String()
	if javaKeywords[id] {
		id += "_"
	}
	return id
}

var javaKeywords = map[string]bool{
	"_": true, "abstract": true, "assert": true, "boolean": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "class": true,
	"const": true, "continue": true, "default": true, "do": true, "double": true,
	"else": true, "enum": true, "extends": true, "false": true, "final": true,
	"finally": true, "float": true, "for": true, "goto": true, "if": true,
	"implements": true, "import": true, "instanceof": true, "int": true,
	"interface": true, "long": true, "native": true, "new": true, "null": true,
	"package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true,
	"super": true, "switch": true, "synchronized": true, "this": true,
	"throw": true, "throws": true, "transient": true, "true": true, "try": true,
	"void": true, "volatile": true, "while": true,
}
