// Command napt runs a Java build with the NAPT javac plugin applied.
//
// It treats the working directory as a Java project (sources in
// src/main/java), reads optional napt.yaml and runs goyek tasks:
//
//	napt build            # createNaptTrigger, compileJava, build
//	napt clean            # cleanNaptTrigger, clean
//	napt -v clean build
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fredrikaverpil/napt"
	"github.com/fredrikaverpil/napt/build"
	"github.com/goyek/goyek/v3"
	"github.com/goyek/x/boot"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// config holds CLI settings read from NAPT_* environment variables.
type config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	ProjectName string `envconfig:"PROJECT_NAME"`
	MavenRepo   string `envconfig:"MAVEN_REPO"`
}

func main() {
	var cfg config
	if err := envconfig.Process(napt.EnvPrefix, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "napt: %v\n", err)
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	dir, err := os.Getwd()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to get working directory")
	}
	name := cfg.ProjectName
	if name == "" {
		name = filepath.Base(dir)
	}

	ext, err := napt.LoadExtension(dir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load napt config")
	}

	opts := []build.Option{build.WithLogger(logger)}
	if cfg.MavenRepo != "" {
		opts = append(opts, build.WithResolver(build.MavenLocal{Root: cfg.MavenRepo}))
	}
	p := build.NewProject(name, dir, opts...)

	java := build.ApplyJava(p)
	napt.Apply(p, ext)

	logger.Debug().
		Str("project", name).
		Str("dir", dir).
		Bool("generate_trigger", ext.ShouldGenerateTrigger()).
		Msg("configured build")

	goyek.SetDefault(java.Build.Defined())
	boot.Main()
}
