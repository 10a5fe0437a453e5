package angular

import (
	"fmt"
	"strings"

	"github.com/lit-migrators/cem-angular-generator/internal/codegen/common"
	"github.com/lit-migrators/cem-angular-generator/internal/codegen/manifest"
)

// Options carries the per-run settings the emitters need.
type Options struct {
	// LibraryImport is the module specifier of the wrapped component
	// library, used for type imports and element registration.
	LibraryImport string
	// Standalone switches the emitted components to standalone mode.
	Standalone bool
	// PackageName names the generated package in scaffolded files.
	PackageName string
	// Version is stamped into scaffolded files.
	Version string
	// Scaffold enables write-if-absent project scaffolding.
	Scaffold bool
}

// Render produces the complete TypeScript source for one wrapper component.
// The file is assembled from independent fragments so each piece stays
// testable on its own.
func Render(c manifest.Component, opts Options) string {
	var b strings.Builder
	b.WriteString(renderHeader(c))
	b.WriteString(renderImports(c, opts))
	b.WriteString("\n")
	b.WriteString(renderDecorator(c, opts))
	b.WriteString(renderClass(c))
	return b.String()
}

// renderHeader emits the file doc block: description (or a synthesized
// fallback), source module and the generated-file notice.
func renderHeader(c manifest.Component) string {
	desc := strings.TrimSpace(c.Description)
	if desc == "" {
		desc = fmt.Sprintf("Angular wrapper component for the `<%s>` custom element.", c.TagName)
	}

	var b strings.Builder
	b.WriteString("/**\n")
	for _, line := range strings.Split(sanitizeDocText(desc), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			b.WriteString(" *\n")
			continue
		}
		b.WriteString(" * " + line + "\n")
	}
	source := c.SourceModule
	if source == "" {
		source = "n/a"
	}
	b.WriteString(" *\n")
	b.WriteString(" * Source module: " + source + "\n")
	b.WriteString(" *\n")
	b.WriteString(" * " + generatedNotice + "\n")
	b.WriteString(" */\n")
	return b.String()
}

// renderImports emits the @angular/core import block plus, when custom type
// names survive resolution, a type-only import from the component library.
func renderImports(c manifest.Component, opts Options) string {
	var b strings.Builder
	b.WriteString("import {\n")
	for _, symbol := range angularCoreImports(c, opts.Standalone) {
		b.WriteString("  " + symbol + ",\n")
	}
	b.WriteString("} from '@angular/core';\n")

	if refs := CollectTypeRefs(c); len(refs) > 0 {
		b.WriteString(fmt.Sprintf("import type { %s } from '%s';\n", strings.Join(refs, ", "), opts.LibraryImport))
	}
	return b.String()
}

func renderDecorator(c manifest.Component, opts Options) string {
	var b strings.Builder
	b.WriteString("@Component({\n")
	b.WriteString(fmt.Sprintf("  selector: '%s',\n", c.Selector))
	b.WriteString(fmt.Sprintf("  template: '<%s #element><ng-content></ng-content></%s>',\n", c.TagName, c.TagName))
	b.WriteString("  changeDetection: ChangeDetectionStrategy.OnPush,\n")
	b.WriteString(fmt.Sprintf("  standalone: %t,\n", opts.Standalone))
	if !opts.Standalone && len(c.Members) > 0 {
		names := make([]string, len(c.Members))
		for i, m := range c.Members {
			names[i] = "'" + m.Name + "'"
		}
		b.WriteString(fmt.Sprintf("  inputs: [%s],\n", strings.Join(names, ", ")))
	}
	if opts.Standalone {
		b.WriteString("  schemas: [CUSTOM_ELEMENTS_SCHEMA],\n")
	}
	b.WriteString("})\n")
	return b.String()
}

func renderClass(c manifest.Component) string {
	blocks := []string{renderViewChild()}
	for _, m := range c.Members {
		blocks = append(blocks, renderInput(m))
	}
	for _, e := range c.Events {
		blocks = append(blocks, renderOutput(e))
	}
	blocks = append(blocks, "  private element?: HTMLElement;")
	if len(c.Events) > 0 {
		blocks = append(blocks,
			"  private readonly listenerRemovers: Array<() => void> = [];",
			"  constructor(private readonly ngZone: NgZone) {}",
		)
	}
	blocks = append(blocks, renderAfterViewInit(c))
	if len(c.Members) > 0 {
		blocks = append(blocks, renderOnChanges())
	}
	if len(c.Events) > 0 {
		blocks = append(blocks, renderOnDestroy())
	}
	if len(c.Members) > 0 {
		blocks = append(blocks, renderSyncProperties(c.Members))
	}
	if len(c.Events) > 0 {
		blocks = append(blocks, renderAttachListeners(c.Events))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("export class %s implements %s {\n", c.ClassName, strings.Join(implementsList(c), ", ")))
	b.WriteString(strings.Join(blocks, "\n\n"))
	b.WriteString("\n}\n")
	return b.String()
}

func implementsList(c manifest.Component) []string {
	list := []string{"AfterViewInit"}
	if len(c.Members) > 0 {
		list = append(list, "OnChanges")
	}
	if len(c.Events) > 0 {
		list = append(list, "OnDestroy")
	}
	return list
}

func renderViewChild() string {
	return "  @ViewChild('element', { static: true })\n" +
		"  elementRef!: ElementRef<HTMLElement>;"
}

func renderInput(m manifest.ComponentMember) string {
	var b strings.Builder
	if doc := docLine(m.Description); doc != "" {
		b.WriteString("  /** " + doc + " */\n")
	}
	b.WriteString("  @Input()\n")
	optional := ""
	if m.Optional {
		optional = "?"
	}
	b.WriteString(fmt.Sprintf("  %s%s: %s;", m.Name, optional, m.Type))
	return b.String()
}

func renderOutput(e manifest.ComponentEvent) string {
	var b strings.Builder
	if doc := docLine(e.Description); doc != "" {
		b.WriteString("  /** " + doc + " */\n")
	}
	if e.OutputName == e.EventName {
		b.WriteString("  @Output()\n")
	} else {
		b.WriteString(fmt.Sprintf("  @Output('%s')\n", e.EventName))
	}
	b.WriteString(fmt.Sprintf("  %s = new EventEmitter<%s>();", e.OutputName, e.Type))
	return b.String()
}

func renderAfterViewInit(c manifest.Component) string {
	var b strings.Builder
	b.WriteString("  ngAfterViewInit(): void {\n")
	b.WriteString("    this.element = this.elementRef.nativeElement;\n")
	if len(c.Events) > 0 {
		b.WriteString("    this.attachListeners();\n")
	}
	if len(c.Members) > 0 {
		b.WriteString("    this.syncProperties();\n")
	}
	b.WriteString("  }")
	return b.String()
}

func renderOnChanges() string {
	return "  ngOnChanges(): void {\n" +
		"    this.syncProperties();\n" +
		"  }"
}

func renderOnDestroy() string {
	return "  ngOnDestroy(): void {\n" +
		"    for (const remove of this.listenerRemovers) {\n" +
		"      remove();\n" +
		"    }\n" +
		"    this.listenerRemovers.length = 0;\n" +
		"  }"
}

// renderSyncProperties assigns every input onto the element through an
// indexed record so arbitrary property names survive the transfer.
func renderSyncProperties(members []manifest.ComponentMember) string {
	var b strings.Builder
	b.WriteString("  private syncProperties(): void {\n")
	b.WriteString("    if (!this.element) {\n")
	b.WriteString("      return;\n")
	b.WriteString("    }\n")
	b.WriteString("    const element = this.element as unknown as Record<string, unknown>;\n")
	for _, m := range members {
		b.WriteString(fmt.Sprintf("    element['%s'] = this.%s;\n", m.Name, m.Name))
	}
	b.WriteString("  }")
	return b.String()
}

// renderAttachListeners wires one listener per event. Emission runs inside
// ngZone.run so change detection picks the event up, and every listener
// stores its removal callback for teardown.
func renderAttachListeners(events []manifest.ComponentEvent) string {
	var b strings.Builder
	b.WriteString("  private attachListeners(): void {\n")
	b.WriteString("    const element = this.element;\n")
	b.WriteString("    if (!element) {\n")
	b.WriteString("      return;\n")
	b.WriteString("    }\n")
	for _, e := range events {
		handler := "on" + common.UpperFirst(e.OutputName)
		b.WriteString(fmt.Sprintf("    const %s = (event: %s): void => {\n", handler, e.Type))
		b.WriteString(fmt.Sprintf("      this.ngZone.run(() => this.%s.emit(event));\n", e.OutputName))
		b.WriteString("    };\n")
		b.WriteString(fmt.Sprintf("    element.addEventListener('%s', %s as EventListener);\n", e.EventName, handler))
		b.WriteString(fmt.Sprintf("    this.listenerRemovers.push(() => element.removeEventListener('%s', %s as EventListener));\n", e.EventName, handler))
	}
	b.WriteString("  }")
	return b.String()
}

// docLine flattens a description to its first non-empty line for the
// single-line member docs.
func docLine(description string) string {
	for _, line := range strings.Split(sanitizeDocText(description), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// sanitizeDocText keeps descriptions from terminating the surrounding
// comment block early.
func sanitizeDocText(s string) string {
	return strings.ReplaceAll(s, "*/", "*\\/")
}
