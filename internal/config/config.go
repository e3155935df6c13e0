// Package config handles ctmtool configuration loading and management.
package config

// Config holds all ctmtool settings.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DefaultsConfig holds the export settings applied when a conversion does
// not override them on the command line.
type DefaultsConfig struct {
	Method       string  `yaml:"method"`        // raw, mg1, or mg2
	Precision    float32 `yaml:"precision"`     // absolute vertex precision for mg2
	RelPrecision float32 `yaml:"rel_precision"` // relative precision; 0 disables
	Comment      string  `yaml:"comment"`       // comment stamped into saved files
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Method:    "mg1",
			Precision: 1.0 / 1024.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
