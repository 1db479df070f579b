// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	// Env: CREATE_APP_LOG_TIMESTAMPS
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the create-app configuration.
// Loaded from ~/.create-app/config.yaml.
type Config struct {
	// TemplatesDir replaces the built-in templates with the template-<name>
	// directories found under this path.
	// Env: CREATE_APP_TEMPLATES_DIR
	TemplatesDir string `mapstructure:"templatesDir" yaml:"templatesDir,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `create-app config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := false
	return &Config{
		Log: LogConfig{Timestamps: &timestamps},
	}
}
