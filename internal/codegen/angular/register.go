package angular

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/lit-migrators/cem-angular-generator/internal/codegen/common"
)

// RegisterFileName is the element registration helper written next to the
// components.
const RegisterFileName = "register-custom-elements.ts"

const registerTemplate = `{{fileHeader}}
let registered = false;

/**
 * Loads '{{.LibraryImport}}' once so its custom elements define themselves
 * with the browser. Calling this more than once is a no-op, and outside a
 * browser (server-side rendering, tests) it does nothing at all.
 */
export function registerCustomElements(): void {
  if (registered) {
    return;
  }
  if (typeof window === 'undefined' || typeof customElements === 'undefined') {
    return;
  }
  registered = true;
  void import('{{.LibraryImport}}');
}
`

// generateRegister writes the once-per-process registration helper.
func generateRegister(logger *slog.Logger, outputDir string, opts Options) (string, error) {
	logger.Debug("Generating element registration helper")

	tmpl := template.Must(template.New("register").Funcs(template.FuncMap{
		"fileHeader": fileHeader,
	}).Parse(registerTemplate))

	var buf strings.Builder
	if err := tmpl.Execute(&buf, struct{ LibraryImport string }{LibraryImport: opts.LibraryImport}); err != nil {
		return "", fmt.Errorf("execute register template: %w", err)
	}

	path := filepath.Join(outputDir, RegisterFileName)
	if _, err := common.WriteFileIfChanged(path, []byte(buf.String())); err != nil {
		return "", fmt.Errorf("write %s: %w", RegisterFileName, err)
	}
	return path, nil
}
