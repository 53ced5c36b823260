package napt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fredrikaverpil/napt/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
}

func TestExtension_WithDefaults(t *testing.T) {
	ext := Extension{}.WithDefaults()

	assert.Equal(t, build.MainJavaDir, ext.SourceDir)
	assert.True(t, ext.ShouldGenerateTrigger())
	assert.Empty(t, ext.PackagePrefix)
}

func TestExtension_ShouldGenerateTrigger(t *testing.T) {
	assert.True(t, Extension{}.ShouldGenerateTrigger())
	assert.True(t, Extension{GenerateTrigger: boolPtr(true)}.ShouldGenerateTrigger())
	assert.False(t, Extension{GenerateTrigger: boolPtr(false)}.ShouldGenerateTrigger())
}

func TestLoadExtension_NoFile(t *testing.T) {
	ext, err := LoadExtension(t.TempDir())

	require.NoError(t, err)
	assert.Nil(t, ext.GenerateTrigger)
	assert.Equal(t, build.MainJavaDir, ext.SourceDir)
}

func TestLoadExtension_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
generateNaptTrigger: false
naptTriggerPackagePrefix: com.example.gen
sourceDir: java
`)

	ext, err := LoadExtension(dir)

	require.NoError(t, err)
	require.NotNil(t, ext.GenerateTrigger)
	assert.False(t, *ext.GenerateTrigger)
	assert.Equal(t, "com.example.gen", ext.PackagePrefix)
	assert.Equal(t, "java", ext.SourceDir)
}

func TestLoadExtension_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")

	ext, err := LoadExtension(dir)

	require.NoError(t, err)
	assert.True(t, ext.ShouldGenerateTrigger())
}

func TestLoadExtension_UnknownKey(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "generateTrigger: true\n")

	_, err := LoadExtension(dir)

	require.Error(t, err)
}

func TestLoadExtension_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "naptTriggerPackagePrefix: com.example.file\n")
	t.Setenv("NAPT_GENERATE_TRIGGER", "false")
	t.Setenv("NAPT_TRIGGER_PACKAGE_PREFIX", "com.example.env")

	ext, err := LoadExtension(dir)

	require.NoError(t, err)
	assert.False(t, ext.ShouldGenerateTrigger())
	assert.Equal(t, "com.example.env", ext.PackagePrefix)
}

func TestLoadExtension_InvalidEnv(t *testing.T) {
	t.Setenv("NAPT_GENERATE_TRIGGER", "maybe")

	_, err := LoadExtension(t.TempDir())

	require.Error(t, err)
}
