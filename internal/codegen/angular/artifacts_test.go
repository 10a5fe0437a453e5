package angular

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lit-migrators/cem-angular-generator/internal/codegen/manifest"
)

func testComponents() []manifest.Component {
	return []manifest.Component{
		{
			TagName:   "my-badge",
			Selector:  "wc-my-badge",
			ClassName: "WcMyBadgeComponent",
			FileName:  "wc-my-badge.component.ts",
		},
		{
			TagName:   "my-card",
			Selector:  "wc-my-card",
			ClassName: "WcMyCardComponent",
			FileName:  "wc-my-card.component.ts",
			Members:   []manifest.ComponentMember{{Name: "title", Type: "string", Optional: true}},
		},
	}
}

func testGenerate(t *testing.T, dir string, opts Options) []string {
	t.Helper()
	written, err := Generate(slog.New(slog.DiscardHandler), dir, opts, testComponents())
	require.NoError(t, err)
	return written
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGenerateWritesComponentsAndArtifacts(t *testing.T) {
	dir := t.TempDir()
	opts := Options{LibraryImport: "@acme/widgets", PackageName: "widgets-angular", Version: "1.2.3", Scaffold: true}

	written := testGenerate(t, dir, opts)

	for _, name := range []string{
		"wc-my-badge.component.ts",
		"wc-my-card.component.ts",
		PublicAPIFileName,
		RegisterFileName,
		ModuleFileName,
		"package.json",
		"tsconfig.json",
		"README.md",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s to be generated", name)
	}
	assert.Len(t, written, 8)
}

func TestGeneratePublicAPIOrderAndContent(t *testing.T) {
	dir := t.TempDir()
	testGenerate(t, dir, Options{LibraryImport: "@acme/widgets"})

	barrel := readFile(t, filepath.Join(dir, PublicAPIFileName))

	assert.Contains(t, barrel, "import { WcMyBadgeComponent } from './wc-my-badge.component';")
	assert.Contains(t, barrel, "export * from './wc-my-card.component';")
	assert.Contains(t, barrel, "export const GENERATED_COMPONENTS = [\n  WcMyBadgeComponent,\n  WcMyCardComponent,\n] as const;")
	assert.Less(t,
		strings.Index(barrel, "WcMyBadgeComponent"),
		strings.Index(barrel, "WcMyCardComponent"),
		"barrel entries keep tag order")
}

func TestGenerateRegisterHelper(t *testing.T) {
	dir := t.TempDir()
	testGenerate(t, dir, Options{LibraryImport: "@acme/widgets"})

	register := readFile(t, filepath.Join(dir, RegisterFileName))

	assert.Contains(t, register, "let registered = false;")
	assert.Contains(t, register, "export function registerCustomElements(): void {")
	assert.Contains(t, register, "if (registered) {")
	assert.Contains(t, register, "typeof window === 'undefined'")
	assert.Contains(t, register, "void import('@acme/widgets');")
}

func TestGenerateModuleOnlyWhenNotStandalone(t *testing.T) {
	dir := t.TempDir()
	testGenerate(t, dir, Options{LibraryImport: "@acme/widgets"})
	module := readFile(t, filepath.Join(dir, ModuleFileName))
	assert.Contains(t, module, "export class WrapperComponentsModule {}")
	assert.Contains(t, module, "declarations: [\n    WcMyBadgeComponent,\n    WcMyCardComponent,\n  ],")
	assert.Contains(t, module, "schemas: [CUSTOM_ELEMENTS_SCHEMA],")

	standaloneDir := t.TempDir()
	testGenerate(t, standaloneDir, Options{LibraryImport: "@acme/widgets", Standalone: true})
	_, err := os.Stat(filepath.Join(standaloneDir, ModuleFileName))
	assert.True(t, os.IsNotExist(err), "standalone mode must not write the NgModule")
}

func TestGenerateScaffoldPreservesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	custom := []byte(`{"name": "hand-edited"}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), custom, 0o644))

	testGenerate(t, dir, Options{LibraryImport: "@acme/widgets", PackageName: "widgets-angular", Version: "1.2.3", Scaffold: true})

	assert.Equal(t, string(custom), readFile(t, filepath.Join(dir, "package.json")))

	pkg := readFile(t, filepath.Join(dir, "tsconfig.json"))
	assert.Contains(t, pkg, `"experimentalDecorators": true`)
}

func TestGenerateScaffoldContent(t *testing.T) {
	dir := t.TempDir()
	testGenerate(t, dir, Options{LibraryImport: "@acme/widgets", PackageName: "widgets-angular", Version: "1.2.3", Scaffold: true})

	pkg := readFile(t, filepath.Join(dir, "package.json"))
	assert.Contains(t, pkg, `"name": "widgets-angular"`)
	assert.Contains(t, pkg, `"version": "1.2.3"`)
	assert.Contains(t, pkg, `"@acme/widgets": "*"`)

	readme := readFile(t, filepath.Join(dir, "README.md"))
	assert.Contains(t, readme, "# widgets-angular")
	assert.Contains(t, readme, "`@acme/widgets`")
}
