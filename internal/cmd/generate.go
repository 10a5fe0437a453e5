package cmd

import (
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/lit-migrators/cem-angular-generator/internal/codegen/generator"
)

type Generate struct {
	Manifest        string `help:"Path to the custom elements manifest" default:"custom-elements.json" env:"CEM_NG_MANIFEST"`
	Output          string `help:"Directory the wrapper package is generated into" default:"./generated" env:"CEM_NG_OUTPUT"`
	SelectorPrefix  string `help:"Prefix prepended to tag names to form Angular selectors" default:"wc-" env:"CEM_NG_SELECTOR_PREFIX"`
	LibraryImport   string `help:"Module specifier of the wrapped component library" required:"" env:"CEM_NG_LIBRARY_IMPORT"`
	Standalone      bool   `help:"Emit standalone components instead of an NgModule" default:"false" env:"CEM_NG_STANDALONE"`
	PackageName     string `help:"Name for the scaffolded package.json (derived from the library import when empty)" env:"CEM_NG_PACKAGE_NAME"`
	Scaffold        bool   `help:"Write package.json, tsconfig.json and README.md when missing" default:"true" env:"CEM_NG_SCAFFOLD"`
	NodeModulesLink string `help:"Symlink this directory as node_modules into the output" env:"CEM_NG_NODE_MODULES_LINK"`
	DumpModel       bool   `help:"Dump the extracted component model to stderr"`
}

func (g *Generate) options() generator.Options {
	return generator.Options{
		ManifestPath:    g.Manifest,
		SelectorPrefix:  g.SelectorPrefix,
		LibraryImport:   g.LibraryImport,
		Standalone:      g.Standalone,
		PackageName:     g.PackageName,
		Scaffold:        g.Scaffold,
		NodeModulesLink: g.NodeModulesLink,
	}
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	logger.Info("Starting wrapper generation", "manifest", g.Manifest, "output", g.Output)

	gen := generator.New(g.Output, logger)
	result, err := gen.Regenerate(g.options())
	if err != nil {
		return err
	}

	if g.DumpModel {
		spew.Fdump(os.Stderr, result.Components)
	}

	logger.Info("Wrapper generation complete",
		"components", len(result.Components),
		"written", len(result.Written),
		"deleted", len(result.Deleted))
	return nil
}
