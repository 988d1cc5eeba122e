// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the MPCALC_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// intOverride builds an override for an integer field. Unparsable values
// are ignored.
func intOverride(key, flagName string, field func(*AppConfig) *int) envOverride {
	return envOverride{key, []string{flagName}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			*field(c) = parsed
		}
	}}
}

// boolOverride builds an override for a boolean field with a short alias.
func boolOverride(key string, flags []string, field func(*AppConfig) *bool) envOverride {
	return envOverride{key, flags, func(c *AppConfig, v string) {
		p := field(c)
		*p = parseBoolEnv(v, *p)
	}}
}

// envOverrides is the declarative table of all environment variable overrides,
// grouped as numeric, duration, string and boolean.
var envOverrides = []envOverride{
	intOverride("KARATSUBA_THRESHOLD", "karatsuba", func(c *AppConfig) *int { return &c.KaratsubaThreshold }),
	intOverride("TOOM_THRESHOLD", "toom", func(c *AppConfig) *int { return &c.ToomCookThreshold }),
	intOverride("KARATSUBA_SQR_THRESHOLD", "karatsuba-sqr", func(c *AppConfig) *int { return &c.KaratsubaSquareThreshold }),
	intOverride("TOOM_SQR_THRESHOLD", "toom-sqr", func(c *AppConfig) *int { return &c.ToomCookSquareThreshold }),
	intOverride("PARALLEL_THRESHOLD", "parallel", func(c *AppConfig) *int { return &c.ParallelThreshold }),
	intOverride("NATIVE_THRESHOLD", "native-threshold", func(c *AppConfig) *int { return &c.NativeThreshold }),
	intOverride("SCALE", "scale", func(c *AppConfig) *int { return &c.Scale }),

	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	{"OP", []string{"op"}, func(c *AppConfig, v string) { c.Op = v }},
	{"A", []string{"a"}, func(c *AppConfig, v string) { c.A = v }},
	{"B", []string{"b"}, func(c *AppConfig, v string) { c.B = v }},
	{"ENGINE", []string{"engine"}, func(c *AppConfig, v string) { c.Engine = v }},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) { c.OutputFile = v }},
	{"CALIBRATION_PROFILE", []string{"calibration-profile"}, func(c *AppConfig, v string) { c.CalibrationProfile = v }},
	{"METRICS_FILE", []string{"metrics-file"}, func(c *AppConfig, v string) { c.MetricsFile = v }},
	{"THEME", []string{"theme"}, func(c *AppConfig, v string) { c.Theme = v }},

	boolOverride("VERBOSE", []string{"v", "verbose"}, func(c *AppConfig) *bool { return &c.Verbose }),
	boolOverride("DETAILS", []string{"d", "details"}, func(c *AppConfig) *bool { return &c.Details }),
	boolOverride("QUIET", []string{"quiet", "q"}, func(c *AppConfig) *bool { return &c.Quiet }),
	boolOverride("CALIBRATE", []string{"calibrate"}, func(c *AppConfig) *bool { return &c.Calibrate }),
	boolOverride("NO_COLOR", []string{"no-color"}, func(c *AppConfig) *bool { return &c.NoColor }),
	boolOverride("TUI", []string{"tui"}, func(c *AppConfig) *bool { return &c.TUI }),
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with MPCALC_):
//   - OP, A, B, ENGINE, TIMEOUT, SCALE, OUTPUT, CALIBRATION_PROFILE,
//     METRICS_FILE, THEME, VERBOSE, DETAILS, QUIET, CALIBRATE, NO_COLOR, TUI
//   - KARATSUBA_THRESHOLD, TOOM_THRESHOLD, KARATSUBA_SQR_THRESHOLD,
//     TOOM_SQR_THRESHOLD, PARALLEL_THRESHOLD, NATIVE_THRESHOLD
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
