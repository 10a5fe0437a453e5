package angular

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/lit-migrators/cem-angular-generator/internal/codegen/common"
)

const packageTemplate = `{
  "name": "{{.PackageName}}",
  "version": "{{.Version}}",
  "description": "Angular wrapper components for {{.LibraryImport}}",
  "peerDependencies": {
    "@angular/core": ">=15.0.0",
    "{{.LibraryImport}}": "*"
  }
}
`

const tsconfigTemplate = `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "ES2022",
    "moduleResolution": "bundler",
    "experimentalDecorators": true,
    "declaration": true,
    "strict": true,
    "strictPropertyInitialization": false,
    "skipLibCheck": true,
    "forceConsistentCasingInFileNames": true
  },
  "include": ["*.ts"]
}
`

const readmeTemplate = `# {{.PackageName}}

Angular wrapper components for ` + "`{{.LibraryImport}}`" + `, generated from its
custom elements manifest. Import the wrappers through ` + "`public-api.ts`" + ` and
call ` + "`registerCustomElements()`" + ` once during application startup.

Regenerating overwrites every ` + "`*.component.ts`" + ` file in this directory;
this file, ` + "`package.json`" + ` and ` + "`tsconfig.json`" + ` are only written when
missing and are yours to edit.
`

// generateProject scaffolds package.json, tsconfig.json and README.md in
// the output directory. Existing files are never overwritten.
func generateProject(logger *slog.Logger, outputDir string, opts Options) ([]string, error) {
	logger.Debug("Scaffolding generated package", "name", opts.PackageName, "version", opts.Version)

	data := struct {
		PackageName   string
		Version       string
		LibraryImport string
	}{
		PackageName:   opts.PackageName,
		Version:       opts.Version,
		LibraryImport: opts.LibraryImport,
	}

	files := []struct {
		name string
		tmpl string
	}{
		{"package.json", packageTemplate},
		{"tsconfig.json", tsconfigTemplate},
		{"README.md", readmeTemplate},
	}

	var written []string
	for _, f := range files {
		tmpl, err := template.New(f.name).Parse(f.tmpl)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", f.name, err)
		}
		var buf strings.Builder
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("execute %s template: %w", f.name, err)
		}
		path := filepath.Join(outputDir, f.name)
		created, err := common.WriteFileIfAbsent(path, []byte(buf.String()))
		if err != nil {
			return nil, fmt.Errorf("scaffold %s: %w", f.name, err)
		}
		if created {
			logger.Info("Scaffolded project file", "file", f.name)
			written = append(written, path)
		}
	}
	return written, nil
}
