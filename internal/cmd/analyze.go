package cmd

import (
	"log/slog"

	"github.com/lit-migrators/cem-angular-generator/internal/codegen/analyzer"
)

type Analyze struct {
	Globs      []string `help:"Source globs passed to the analyzer" default:"src/**/*.ts" env:"CEM_NG_ANALYZE_GLOBS"`
	Outdir     string   `help:"Directory the analyzer writes custom-elements.json into" default:"." env:"CEM_NG_ANALYZE_OUTDIR"`
	Litelement bool     `help:"Enable the analyzer's Lit-specific extraction" default:"true" env:"CEM_NG_ANALYZE_LITELEMENT"`
	Command    string   `help:"Analyzer binary to invoke" default:"custom-elements-manifest" env:"CEM_NG_ANALYZE_COMMAND"`
	Dir        string   `help:"Working directory for the analyzer" default:"." env:"CEM_NG_ANALYZE_DIR"`
}

// Run is called by Kong when the analyze command is executed.
func (a *Analyze) Run(logger *slog.Logger) error {
	return analyzer.Run(logger, analyzer.Options{
		Command:    a.Command,
		Globs:      a.Globs,
		Outdir:     a.Outdir,
		Litelement: a.Litelement,
		Dir:        a.Dir,
	})
}
