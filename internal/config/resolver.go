package config

import (
	"os"

	"github.com/createapp/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its origin.
type ResolvedValue struct {
	// Key is the configuration key.
	Key string
	// Value is the winning value. Empty when no source set one.
	Value string
	// Source indicates where Value came from. Empty when unset.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// candidate is one source's value for a key.
type candidate struct {
	source ConfigSource
	value  string
}

// resolve picks the first non-empty candidate and records the rest as
// shadowed.
func resolve(key string, candidates ...candidate) ResolvedValue {
	result := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}
	return result
}

// ResolveTemplatesDirOptions contains options for templates directory
// resolution.
type ResolveTemplatesDirOptions struct {
	// FlagValue is the --templates-dir flag value (empty if not set).
	FlagValue string
	// ConfigValue is the templatesDir value from config file (empty if not set).
	ConfigValue string
}

// ResolveTemplatesDir resolves the templates directory using precedence:
// (1) --templates-dir flag, (2) CREATE_APP_TEMPLATES_DIR env, (3) config.templatesDir.
// An empty result means the built-in templates are used.
func ResolveTemplatesDir(opts ResolveTemplatesDirOptions) ResolvedValue {
	return resolve("templatesDir",
		candidate{SourceFlag, opts.FlagValue},
		candidate{SourceEnv, os.Getenv(EnvTemplatesDir)},
		candidate{SourceConfig, opts.ConfigValue},
	)
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) CREATE_APP_CONFIG env, (3) ~/.create-app/config.yaml default
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{Key: "config", Shadowed: map[ConfigSource]string{}}, err
	}

	return resolve("config",
		candidate{SourceFlag, opts.FlagValue},
		candidate{SourceEnv, os.Getenv(EnvConfig)},
		candidate{SourceDefault, paths.ConfigFile},
	), nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
