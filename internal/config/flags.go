package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagMethod    = flag.String("method", "", "Default compression method (raw, mg1, mg2)")
	flagPrecision = flag.Float64("precision", 0, "Default vertex precision")
	flagComment   = flag.String("comment", "", "Default file comment")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMethod != "" {
		cfg.Defaults.Method = *flagMethod
	}
	if *flagPrecision > 0 {
		cfg.Defaults.Precision = float32(*flagPrecision)
	}
	if *flagComment != "" {
		cfg.Defaults.Comment = *flagComment
	}
}
