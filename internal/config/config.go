package config

import (
	"github.com/lit-migrators/cem-angular-generator/internal/cmd"
)

// Log holds the logging flags shared by every command.
type Log struct {
	Level string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"CEM_NG_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"CEM_NG_LOG_FILE"`
}

// CLI is the root command line and configuration surface parsed by Kong.
type CLI struct {
	Config string `help:"Path to a config file (JSON, YAML or TOML)" env:"CEM_NG_CONFIG"`
	Log    Log    `embed:"" prefix:"log."`

	Generate  cmd.Generate      `cmd:"" help:"Generate Angular wrapper components from a custom elements manifest"`
	Analyze   cmd.Analyze       `cmd:"" help:"Run the custom elements analyzer to produce a manifest"`
	Watch     cmd.Watch         `cmd:"" help:"Watch the manifest and regenerate wrappers on change"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
	Version   cmd.Version       `cmd:"" help:"Print the version"`
}
