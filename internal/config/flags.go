package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagDigits  = flag.Int("digits", 0, "Fractional digits per printed component")
	flagOrder   = flag.String("order", "", "Euler axis order (xyz, xzy, yxz, yzx, zxy, zyx)")
	flagSamples = flag.Int("samples", 0, "Samples per interpolated track")
	flagMethod  = flag.String("method", "", "Quaternion interpolation method (slerp, nlerp, sqlerp)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config
// flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagDigits > 0 {
		cfg.Output.Digits = *flagDigits
	}
	if *flagOrder != "" {
		cfg.Euler.Order = *flagOrder
	}
	if *flagSamples > 0 {
		cfg.Sample.Count = *flagSamples
	}
	if *flagMethod != "" {
		cfg.Sample.Method = *flagMethod
	}
}
