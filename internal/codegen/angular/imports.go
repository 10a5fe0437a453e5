package angular

import (
	"regexp"
	"sort"

	"github.com/lit-migrators/cem-angular-generator/internal/codegen/manifest"
)

// typeTokenRe matches candidate type names inside a type expression: an
// upper-case letter followed by at least one more identifier character.
// Unions, generics and array suffixes all decompose into such tokens.
var typeTokenRe = regexp.MustCompile(`[A-Z][A-Za-z0-9_]+`)

// builtinTypeNames are type names that never resolve to the wrapped
// component library: primitive wrappers, TypeScript utility types, standard
// event types and common DOM interfaces.
var builtinTypeNames = map[string]struct{}{
	"AbortController":     {},
	"AbortSignal":         {},
	"AnimationEvent":      {},
	"Array":               {},
	"ArrayBuffer":         {},
	"BigInt":              {},
	"Blob":                {},
	"Boolean":             {},
	"CSSStyleDeclaration": {},
	"CustomEvent":         {},
	"DOMRect":             {},
	"DataView":            {},
	"Date":                {},
	"Document":            {},
	"DocumentFragment":    {},
	"DragEvent":           {},
	"Element":             {},
	"Error":               {},
	"ErrorEvent":          {},
	"Event":               {},
	"EventTarget":         {},
	"Exclude":             {},
	"Extract":             {},
	"File":                {},
	"FileList":            {},
	"FocusEvent":          {},
	"FormData":            {},
	"Function":            {},
	"HTMLCollection":      {},
	"HTMLElement":         {},
	"Headers":             {},
	"InputEvent":          {},
	"InstanceType":        {},
	"Iterable":            {},
	"IterableIterator":    {},
	"Iterator":            {},
	"JSON":                {},
	"KeyboardEvent":       {},
	"Map":                 {},
	"Math":                {},
	"MessageEvent":        {},
	"MouseEvent":          {},
	"NaN":                 {},
	"Node":                {},
	"NodeList":            {},
	"NonNullable":         {},
	"Number":              {},
	"Object":              {},
	"Omit":                {},
	"Partial":             {},
	"Pick":                {},
	"PointerEvent":        {},
	"ProgressEvent":       {},
	"Promise":             {},
	"Readonly":            {},
	"ReadonlyArray":       {},
	"Record":              {},
	"RegExp":              {},
	"Required":            {},
	"ReturnType":          {},
	"Set":                 {},
	"ShadowRoot":          {},
	"String":              {},
	"Symbol":              {},
	"Text":                {},
	"TouchEvent":          {},
	"TransitionEvent":     {},
	"UIEvent":             {},
	"URL":                 {},
	"URLSearchParams":     {},
	"Uint16Array":         {},
	"Uint32Array":         {},
	"Uint8Array":          {},
	"WeakMap":             {},
	"WeakSet":             {},
	"WheelEvent":          {},
	"Window":              {},
}

// CollectTypeRefs scans every member and event type expression of a
// component and returns the set of type names that must be imported from
// the component library, sorted alphabetically.
func CollectTypeRefs(c manifest.Component) []string {
	seen := make(map[string]struct{})
	scan := func(typeText string) {
		for _, tok := range typeTokenRe.FindAllString(typeText, -1) {
			if _, builtin := builtinTypeNames[tok]; builtin {
				continue
			}
			seen[tok] = struct{}{}
		}
	}
	for _, m := range c.Members {
		scan(m.Type)
	}
	for _, e := range c.Events {
		scan(e.Type)
	}

	refs := make([]string, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}

// angularCoreImports returns the sorted @angular/core symbols a component
// file needs. The base set serves the element handle; members and events
// add their binding machinery on top.
func angularCoreImports(c manifest.Component, standalone bool) []string {
	symbols := []string{"AfterViewInit", "ChangeDetectionStrategy", "Component", "ElementRef", "ViewChild"}
	if len(c.Members) > 0 {
		symbols = append(symbols, "Input", "OnChanges")
	}
	if len(c.Events) > 0 {
		symbols = append(symbols, "EventEmitter", "NgZone", "OnDestroy", "Output")
	}
	if standalone {
		symbols = append(symbols, "CUSTOM_ELEMENTS_SCHEMA")
	}
	sort.Strings(symbols)
	return symbols
}
