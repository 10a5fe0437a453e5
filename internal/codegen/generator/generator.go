// Package generator coordinates a full regeneration run: manifest parsing,
// component extraction, emission and stale-file cleanup.
package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lit-migrators/cem-angular-generator/internal/codegen/angular"
	"github.com/lit-migrators/cem-angular-generator/internal/codegen/common"
	"github.com/lit-migrators/cem-angular-generator/internal/codegen/manifest"
)

// Options selects the manifest and shapes the emitted package.
type Options struct {
	// ManifestPath points at the custom elements manifest JSON file.
	ManifestPath string
	// SelectorPrefix is prepended to every tag name to form the Angular
	// selector, and doubles as the marker for generated component files
	// during cleanup.
	SelectorPrefix string
	// LibraryImport is the module specifier of the wrapped library.
	LibraryImport string
	// Standalone emits standalone components and skips the NgModule.
	Standalone bool
	// PackageName names the scaffolded package; empty derives it from the
	// library import.
	PackageName string
	// Scaffold writes package.json, tsconfig.json and README.md when absent.
	Scaffold bool
	// NodeModulesLink, when set, links <output>/node_modules to this path.
	NodeModulesLink string
}

// Result reports what a regeneration run did.
type Result struct {
	ManifestPath string
	OutputDir    string
	Components   []manifest.Component
	Written      []string
	Deleted      []string
}

type Generator struct {
	outputDir string
	logger    *slog.Logger
}

func New(outputDir string, logger *slog.Logger) *Generator {
	return &Generator{
		outputDir: outputDir,
		logger:    logger,
	}
}

// Regenerate runs the whole pipeline once. Nothing is written when the
// manifest cannot be read or parsed, and stale files are only removed after
// every current file has been written.
func (g *Generator) Regenerate(opts Options) (*Result, error) {
	if strings.TrimSpace(opts.ManifestPath) == "" {
		return nil, errors.New("manifest path is not configured")
	}

	m, err := manifest.Load(opts.ManifestPath)
	if err != nil {
		return nil, err
	}

	components := manifest.Extract(g.logger, m, opts.SelectorPrefix)
	g.logger.Info("Extracted components from manifest", "manifest", opts.ManifestPath, "count", len(components))

	version, err := common.GetVersion()
	if err != nil {
		return nil, fmt.Errorf("get version: %w", err)
	}

	packageName := opts.PackageName
	if packageName == "" {
		packageName = derivePackageName(opts.LibraryImport)
	}

	written, err := angular.Generate(g.logger, g.outputDir, angular.Options{
		LibraryImport: opts.LibraryImport,
		Standalone:    opts.Standalone,
		PackageName:   packageName,
		Version:       version,
		Scaffold:      opts.Scaffold,
	}, components)
	if err != nil {
		return nil, err
	}

	keep := make(map[string]bool, len(components))
	for _, c := range components {
		keep[c.FileName] = true
	}
	deleted, err := g.removeStale(keep, opts.SelectorPrefix)
	if err != nil {
		return nil, err
	}

	if opts.NodeModulesLink != "" {
		link := filepath.Join(g.outputDir, "node_modules")
		if err := common.EnsureSymlink(opts.NodeModulesLink, link); err != nil {
			return nil, err
		}
		g.logger.Debug("Linked node_modules", "link", link, "target", opts.NodeModulesLink)
	}

	return &Result{
		ManifestPath: opts.ManifestPath,
		OutputDir:    g.outputDir,
		Components:   components,
		Written:      written,
		Deleted:      deleted,
	}, nil
}

// removeStale deletes previously generated component files whose component
// vanished from the manifest. Only files following the selector-prefix and
// component-suffix convention are candidates, so the shared artifacts and
// anything user-made survive.
func (g *Generator) removeStale(keep map[string]bool, selectorPrefix string) ([]string, error) {
	entries, err := os.ReadDir(g.outputDir)
	if err != nil {
		return nil, fmt.Errorf("scan output directory: %w", err)
	}

	var deleted []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, selectorPrefix) || !strings.HasSuffix(name, manifest.ComponentFileSuffix()) {
			continue
		}
		if keep[name] {
			continue
		}
		if err := os.Remove(filepath.Join(g.outputDir, name)); err != nil {
			return deleted, fmt.Errorf("remove stale component %s: %w", name, err)
		}
		g.logger.Debug("Removed stale component file", "file", name)
		deleted = append(deleted, name)
	}
	return deleted, nil
}

// derivePackageName turns a library import specifier into a package name,
// e.g. "@acme/widgets" => "widgets-angular".
func derivePackageName(libraryImport string) string {
	base := libraryImport
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}
	base = strings.TrimPrefix(base, "@")
	if base == "" {
		return "wrapper-components"
	}
	return base + "-angular"
}
