package napt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fredrikaverpil/napt/build"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-project config file.
const ConfigFileName = "napt.yaml"

// EnvPrefix prefixes the environment variables read by LoadExtension.
const EnvPrefix = "NAPT"

// Extension is the user-facing plugin configuration.
//
// Example napt.yaml:
//
//	generateNaptTrigger: true
//	naptTriggerPackagePrefix: com.example.gen
type Extension struct {
	// GenerateTrigger enables writing NaptTrigger.java. Nil means true.
	GenerateTrigger *bool `yaml:"generateNaptTrigger" envconfig:"GENERATE_TRIGGER"`

	// PackagePrefix is the package of the trigger.
	// When blank, a package derived from the project name is used.
	PackagePrefix string `yaml:"naptTriggerPackagePrefix" envconfig:"TRIGGER_PACKAGE_PREFIX"`

	// SourceDir is the Java source root the trigger is written under.
	// Default: "src/main/java"
	SourceDir string `yaml:"sourceDir" envconfig:"SOURCE_DIR"`
}

// WithDefaults returns a copy of the extension with default values applied.
func (e Extension) WithDefaults() Extension {
	if e.SourceDir == "" {
		e.SourceDir = build.MainJavaDir
	}
	return e
}

// ShouldGenerateTrigger reports whether the create task writes the trigger.
func (e Extension) ShouldGenerateTrigger() bool {
	return e.GenerateTrigger == nil || *e.GenerateTrigger
}

// LoadExtension reads napt.yaml from dir, if present, then applies
// NAPT_* environment overrides.
func LoadExtension(dir string) (Extension, error) {
	var ext Extension

	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Extension{}, fmt.Errorf("read %s: %w", ConfigFileName, err)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&ext); err != nil && !errors.Is(err, io.EOF) {
			return Extension{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &ext); err != nil {
		return Extension{}, fmt.Errorf("load environment: %w", err)
	}
	return ext.WithDefaults(), nil
}
