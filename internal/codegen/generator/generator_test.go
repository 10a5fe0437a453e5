package generator

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lit-migrators/cem-angular-generator/internal/codegen/angular"
)

const twoComponentManifest = `{
	"schemaVersion": "1.0.0",
	"modules": [
		{
			"path": "src/my-badge.ts",
			"declarations": [{
				"kind": "class",
				"tagName": "my-badge",
				"members": [{"kind": "field", "name": "label", "type": {"text": "string"}}]
			}]
		},
		{
			"path": "src/my-card.ts",
			"declarations": [{
				"kind": "class",
				"tagName": "my-card",
				"events": [{"name": "card-opened"}]
			}]
		}
	]
}`

const oneComponentManifest = `{
	"modules": [{
		"path": "src/my-badge.ts",
		"declarations": [{"kind": "class", "tagName": "my-badge"}]
	}]
}`

func testOptions(manifestPath string) Options {
	return Options{
		ManifestPath:   manifestPath,
		SelectorPrefix: "wc-",
		LibraryImport:  "@acme/widgets",
	}
}

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "custom-elements.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func snapshotDir(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	snapshot := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		snapshot[e.Name()] = string(data)
	}
	return snapshot
}

func TestRegenerateWritesEverything(t *testing.T) {
	work := t.TempDir()
	outDir := filepath.Join(work, "generated")
	manifestPath := writeManifest(t, work, twoComponentManifest)

	g := New(outDir, slog.New(slog.DiscardHandler))
	result, err := g.Regenerate(testOptions(manifestPath))
	require.NoError(t, err)

	require.Len(t, result.Components, 2)
	assert.Equal(t, "my-badge", result.Components[0].TagName)
	assert.Equal(t, "my-card", result.Components[1].TagName)
	assert.Empty(t, result.Deleted)

	for _, name := range []string{
		"wc-my-badge.component.ts",
		"wc-my-card.component.ts",
		angular.PublicAPIFileName,
		angular.RegisterFileName,
		angular.ModuleFileName,
	} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, "expected %s", name)
	}
}

func TestRegenerateIsAFixpoint(t *testing.T) {
	work := t.TempDir()
	outDir := filepath.Join(work, "generated")
	manifestPath := writeManifest(t, work, twoComponentManifest)

	g := New(outDir, slog.New(slog.DiscardHandler))
	_, err := g.Regenerate(testOptions(manifestPath))
	require.NoError(t, err)
	before := snapshotDir(t, outDir)

	result, err := g.Regenerate(testOptions(manifestPath))
	require.NoError(t, err)

	assert.Empty(t, result.Deleted)
	assert.Equal(t, before, snapshotDir(t, outDir), "rerunning on the same manifest must not change any file")
}

func TestRegenerateRemovesStaleComponents(t *testing.T) {
	work := t.TempDir()
	outDir := filepath.Join(work, "generated")
	manifestPath := writeManifest(t, work, `{"modules": [{"declarations": [
		{"kind": "class", "tagName": "my-badge"},
		{"kind": "class", "tagName": "my-card"},
		{"kind": "class", "tagName": "my-tooltip"}
	]}]}`)

	g := New(outDir, slog.New(slog.DiscardHandler))
	_, err := g.Regenerate(testOptions(manifestPath))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(work, "custom-elements.json"), []byte(oneComponentManifest), 0o644))
	result, err := g.Regenerate(testOptions(manifestPath))
	require.NoError(t, err)

	sort.Strings(result.Deleted)
	assert.Equal(t, []string{"wc-my-card.component.ts", "wc-my-tooltip.component.ts"}, result.Deleted)
	for _, gone := range result.Deleted {
		_, statErr := os.Stat(filepath.Join(outDir, gone))
		assert.True(t, os.IsNotExist(statErr), "%s must be deleted", gone)
	}
	_, err = os.Stat(filepath.Join(outDir, "wc-my-badge.component.ts"))
	assert.NoError(t, err, "the surviving component's file must remain")

	barrel, err := os.ReadFile(filepath.Join(outDir, angular.PublicAPIFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(barrel), "WcMyCardComponent")
	assert.NotContains(t, string(barrel), "WcMyTooltipComponent")
}

func TestRegenerateCleanupConventions(t *testing.T) {
	work := t.TempDir()
	outDir := filepath.Join(work, "generated")
	require.NoError(t, os.MkdirAll(outDir, 0o755))
	manifestPath := writeManifest(t, work, oneComponentManifest)

	stale := filepath.Join(outDir, "wc-removed.component.ts")
	foreignComponent := filepath.Join(outDir, "app-thing.component.ts")
	notes := filepath.Join(outDir, "wc-notes.txt")
	for _, p := range []string{stale, foreignComponent, notes} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	g := New(outDir, slog.New(slog.DiscardHandler))
	result, err := g.Regenerate(testOptions(manifestPath))
	require.NoError(t, err)

	sort.Strings(result.Deleted)
	assert.Equal(t, []string{"wc-removed.component.ts"}, result.Deleted)

	_, err = os.Stat(foreignComponent)
	assert.NoError(t, err, "files outside the selector prefix must survive")
	_, err = os.Stat(notes)
	assert.NoError(t, err, "non-component files must survive")
}

func TestRegenerateEmptyManifestPath(t *testing.T) {
	g := New(t.TempDir(), slog.New(slog.DiscardHandler))
	_, err := g.Regenerate(testOptions(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest path")

	_, err = g.Regenerate(testOptions("   "))
	require.Error(t, err)
}

func TestRegenerateParseFailureWritesNothing(t *testing.T) {
	work := t.TempDir()
	outDir := filepath.Join(work, "generated")
	manifestPath := writeManifest(t, work, `{"modules": [`)

	g := New(outDir, slog.New(slog.DiscardHandler))
	_, err := g.Regenerate(testOptions(manifestPath))
	require.Error(t, err)

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr), "output directory must not be created on parse failure")
}

func TestRegenerateZeroComponents(t *testing.T) {
	work := t.TempDir()
	outDir := filepath.Join(work, "generated")
	require.NoError(t, os.MkdirAll(outDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "wc-gone.component.ts"), []byte("x"), 0o644))
	manifestPath := writeManifest(t, work, `{"modules": []}`)

	g := New(outDir, slog.New(slog.DiscardHandler))
	result, err := g.Regenerate(testOptions(manifestPath))
	require.NoError(t, err)

	assert.Empty(t, result.Components)
	assert.Equal(t, []string{"wc-gone.component.ts"}, result.Deleted)

	barrel, err := os.ReadFile(filepath.Join(outDir, angular.PublicAPIFileName))
	require.NoError(t, err)
	assert.Contains(t, string(barrel), "export const GENERATED_COMPONENTS = [")
}

func TestRegenerateNodeModulesLink(t *testing.T) {
	work := t.TempDir()
	outDir := filepath.Join(work, "generated")
	manifestPath := writeManifest(t, work, oneComponentManifest)
	shared := filepath.Join(work, "node_modules")
	require.NoError(t, os.MkdirAll(shared, 0o755))

	opts := testOptions(manifestPath)
	opts.NodeModulesLink = shared

	g := New(outDir, slog.New(slog.DiscardHandler))
	_, err := g.Regenerate(opts)
	require.NoError(t, err)

	target, err := os.Readlink(filepath.Join(outDir, "node_modules"))
	require.NoError(t, err)
	assert.Equal(t, shared, target)
}

func TestRegenerateEndToEnd(t *testing.T) {
	work := t.TempDir()
	outDir := filepath.Join(work, "generated")
	manifestPath := writeManifest(t, work, `{"modules": [{
		"path": "src/my-button.ts",
		"declarations": [{
			"kind": "class",
			"tagName": "my-button",
			"members": [{"kind": "field", "name": "label", "type": {"text": "string"}, "optional": false}],
			"events": [{"name": "button-click", "type": {"text": "CustomEvent<void>"}}]
		}]
	}]}`)

	g := New(outDir, slog.New(slog.DiscardHandler))
	result, err := g.Regenerate(testOptions(manifestPath))
	require.NoError(t, err)
	assert.Equal(t, manifestPath, result.ManifestPath)
	assert.Equal(t, outDir, result.OutputDir)

	data, err := os.ReadFile(filepath.Join(outDir, "wc-my-button.component.ts"))
	require.NoError(t, err)
	ts := string(data)

	assert.Contains(t, ts, "selector: 'wc-my-button',")
	assert.Contains(t, ts, "export class WcMyButtonComponent")
	assert.Contains(t, ts, "label: string;")
	assert.NotContains(t, ts, "label?:")
	assert.Contains(t, ts, "@Output('button-click')")
	assert.Contains(t, ts, "buttonClick = new EventEmitter<CustomEvent<void>>();")
}

func TestDerivePackageName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"@acme/widgets", "widgets-angular"},
		{"widgets", "widgets-angular"},
		{"@acme/ui/base", "base-angular"},
		{"", "wrapper-components"},
	}
	for _, tt := range tests {
		if got := derivePackageName(tt.in); got != tt.want {
			t.Errorf("derivePackageName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
