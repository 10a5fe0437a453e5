// Package angular emits Angular wrapper component sources and the shared
// package artifacts from an extracted component list.
package angular

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lit-migrators/cem-angular-generator/internal/codegen/common"
	"github.com/lit-migrators/cem-angular-generator/internal/codegen/manifest"
)

const generatedNotice = "Generated by cem-angular-generator. Do not edit."

func fileHeader() string { return "// " + generatedNotice + "\n" }

// Generate writes one component file per extracted component plus the
// shared artifacts into outputDir and returns every path it now manages.
// Files whose content is already current are left untouched.
func Generate(logger *slog.Logger, outputDir string, opts Options, components []manifest.Component) ([]string, error) {
	if err := os.MkdirAll(outputDir, common.DirPerm); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", outputDir, err)
	}

	var written []string
	for _, c := range components {
		path := filepath.Join(outputDir, c.FileName)
		changed, err := common.WriteFileIfChanged(path, []byte(Render(c, opts)))
		if err != nil {
			return nil, fmt.Errorf("write component %s: %w", c.FileName, err)
		}
		if changed {
			logger.Debug("Wrote wrapper component", "file", c.FileName, "tag", c.TagName)
		}
		written = append(written, path)
	}

	barrel, err := generatePublicAPI(logger, outputDir, components)
	if err != nil {
		return nil, err
	}
	written = append(written, barrel)

	register, err := generateRegister(logger, outputDir, opts)
	if err != nil {
		return nil, err
	}
	written = append(written, register)

	if !opts.Standalone {
		module, err := generateModule(logger, outputDir, components)
		if err != nil {
			return nil, err
		}
		written = append(written, module)
	}

	if opts.Scaffold {
		scaffolded, err := generateProject(logger, outputDir, opts)
		if err != nil {
			return nil, err
		}
		written = append(written, scaffolded...)
	}

	logger.Info("Generated Angular wrappers", "components", len(components), "dir", outputDir)
	return written, nil
}
