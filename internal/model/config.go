package model

// DefaultTarget is the file repaired when no path is given
const DefaultTarget = "App.jsx"

// Config is the full mojifix configuration
type Config struct {
	Target TargetConfig `yaml:"target" mapstructure:"target"`
	Write  WriteConfig  `yaml:"write" mapstructure:"write"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// TargetConfig selects the files to repair
type TargetConfig struct {
	Paths []string `yaml:"paths" mapstructure:"paths"`
}

// WriteConfig controls how repaired text reaches disk
type WriteConfig struct {
	DryRun bool `yaml:"dry_run" mapstructure:"dry_run"` // Report only, never write
	Sync   bool `yaml:"sync" mapstructure:"sync"`       // fsync the temp file before rename
}

// OutputConfig controls logging
type OutputConfig struct {
	Verbose   bool   `yaml:"verbose" mapstructure:"verbose"`
	LogFormat string `yaml:"log_format" mapstructure:"log_format"` // console or json
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Target: TargetConfig{
			Paths: []string{DefaultTarget},
		},
		Write: WriteConfig{
			DryRun: false,
			Sync:   true,
		},
		Output: OutputConfig{
			Verbose:   false,
			LogFormat: "console",
		},
	}
}
