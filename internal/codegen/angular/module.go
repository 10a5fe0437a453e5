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

// ModuleFileName is the NgModule written for non-standalone builds.
const ModuleFileName = "components.module.ts"

const moduleTemplate = `{{fileHeader}}import { CUSTOM_ELEMENTS_SCHEMA, NgModule } from '@angular/core';
{{if .ClassNames}}
import {
{{range .ClassNames}}  {{.}},
{{end}}} from './public-api';
{{end}}
@NgModule({
  declarations: [
{{range .ClassNames}}    {{.}},
{{end}}  ],
  exports: [
{{range .ClassNames}}    {{.}},
{{end}}  ],
  schemas: [CUSTOM_ELEMENTS_SCHEMA],
})
export class WrapperComponentsModule {}
`

// generateModule writes the NgModule declaring and exporting every wrapper
// component. Standalone builds skip it.
func generateModule(logger *slog.Logger, outputDir string, components []manifest.Component) (string, error) {
	logger.Debug("Generating wrapper components NgModule")

	names := make([]string, 0, len(components))
	for _, c := range components {
		names = append(names, c.ClassName)
	}

	tmpl := template.Must(template.New("module").Funcs(template.FuncMap{
		"fileHeader": fileHeader,
	}).Parse(moduleTemplate))

	var buf strings.Builder
	if err := tmpl.Execute(&buf, struct{ ClassNames []string }{ClassNames: names}); err != nil {
		return "", fmt.Errorf("execute module template: %w", err)
	}

	path := filepath.Join(outputDir, ModuleFileName)
	if _, err := common.WriteFileIfChanged(path, []byte(buf.String())); err != nil {
		return "", fmt.Errorf("write %s: %w", ModuleFileName, err)
	}
	return path, nil
}
