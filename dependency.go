package napt

import (
	"strings"

	"github.com/fredrikaverpil/napt/build"
	"github.com/rs/zerolog"
)

// annotationProcessorToken identifies processor path buckets by name
// when they carry no role tag.
const annotationProcessorToken = "annotationprocessor"

// Buckets enumerates dependency buckets, including ones created later.
type Buckets interface {
	All(fn func(*build.Configuration))
}

// InjectDependency adds dep to every annotation processor bucket, present and future.
func InjectDependency(buckets Buckets, dep build.Dependency, log zerolog.Logger) {
	buckets.All(func(c *build.Configuration) {
		if !IsProcessorBucket(c) {
			return
		}
		if c.Add(dep) {
			log.Debug().
				Str("bucket", c.Name()).
				Stringer("dependency", dep).
				Msg("added compiler plugin dependency")
		}
	})
}

// IsProcessorBucket reports whether c feeds the compiler's processor path.
// The role tag wins; untagged buckets are matched by name.
func IsProcessorBucket(c *build.Configuration) bool {
	if c.HasRole(build.RoleAnnotationProcessor) {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name()), annotationProcessorToken)
}
