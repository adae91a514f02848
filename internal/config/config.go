// Package config handles xform tool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Euler   EulerConfig   `yaml:"euler"`
	Sample  SampleConfig  `yaml:"sample"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds result formatting settings.
type OutputConfig struct {
	Digits int    `yaml:"digits"` // Fractional digits printed per component
	Format string `yaml:"format"` // "table" or "yaml"
}

// EulerConfig holds Euler angle settings.
type EulerConfig struct {
	Order string `yaml:"order"` // Intrinsic axis order, e.g. "zyx"
}

// SampleConfig holds keyframe sampling settings.
type SampleConfig struct {
	Count  int    `yaml:"count"`  // Samples per track
	Method string `yaml:"method"` // "slerp", "nlerp", or "sqlerp"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Digits: 5,
			Format: "table",
		},
		Euler: EulerConfig{
			Order: "zyx",
		},
		Sample: SampleConfig{
			Count:  10,
			Method: "slerp",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
