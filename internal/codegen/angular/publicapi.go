package angular

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/lit-migrators/cem-angular-generator/internal/codegen/common"
	"github.com/lit-migrators/cem-angular-generator/internal/codegen/manifest"
)

// PublicAPIFileName is the aggregate barrel written next to the components.
const PublicAPIFileName = "public-api.ts"

const publicAPITemplate = `{{fileHeader}}{{range .Components}}import { {{.ClassName}} } from './{{.ImportPath}}';
{{end}}{{if .Components}}
{{range .Components}}export * from './{{.ImportPath}}';
{{end}}{{end}}
export const GENERATED_COMPONENTS = [
{{range .Components}}  {{.ClassName}},
{{end}}] as const;
`

type barrelEntry struct {
	ClassName  string
	ImportPath string
}

// generatePublicAPI writes the barrel that imports and re-exports every
// generated class and publishes the ordered component list.
func generatePublicAPI(logger *slog.Logger, outputDir string, components []manifest.Component) (string, error) {
	logger.Debug("Generating public API barrel")

	entries := make([]barrelEntry, 0, len(components))
	for _, c := range components {
		entries = append(entries, barrelEntry{
			ClassName:  c.ClassName,
			ImportPath: strings.TrimSuffix(c.FileName, ".ts"),
		})
	}

	tmpl := template.Must(template.New("publicapi").Funcs(template.FuncMap{
		"fileHeader": fileHeader,
	}).Parse(publicAPITemplate))

	var buf strings.Builder
	if err := tmpl.Execute(&buf, struct{ Components []barrelEntry }{Components: entries}); err != nil {
		return "", fmt.Errorf("execute public API template: %w", err)
	}

	path := filepath.Join(outputDir, PublicAPIFileName)
	if _, err := common.WriteFileIfChanged(path, []byte(buf.String())); err != nil {
		return "", fmt.Errorf("write %s: %w", PublicAPIFileName, err)
	}
	return path, nil
}
