package manifest

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/lit-migrators/cem-angular-generator/internal/codegen/common"
)

const (
	// DefaultMemberType is used when a member carries no type annotation.
	DefaultMemberType = "any"
	// DefaultEventType is used when an event carries no type annotation.
	DefaultEventType = "CustomEvent<unknown>"
	// DefaultMemberOptional applies when a member omits the optional flag.
	// Manifests rarely state it, and `?` is the safer typing for wrappers.
	DefaultMemberOptional = true

	componentFileSuffix = ".component.ts"
)

// ComponentMember is a bindable public property of a custom element.
type ComponentMember struct {
	Name        string
	Type        string
	Optional    bool
	Description string
}

// ComponentEvent is a custom event re-emitted through an Angular output.
type ComponentEvent struct {
	EventName   string
	OutputName  string
	Type        string
	Description string
}

// Component aggregates everything needed to emit one wrapper component.
type Component struct {
	TagName      string
	Selector     string
	ClassName    string
	FileName     string
	SourceModule string
	Description  string
	Members      []ComponentMember
	Events       []ComponentEvent
}

// ComponentFileSuffix returns the suffix shared by all generated component
// files.
func ComponentFileSuffix() string { return componentFileSuffix }

// FileNameFor returns the component file name used for a given selector.
func FileNameFor(selector string) string { return selector + componentFileSuffix }

// Extract walks the manifest and builds the component list, sorted by tag
// name. Only class declarations with a tag name qualify; when two
// declarations share a tag the later one wins.
func Extract(logger *slog.Logger, m *Manifest, selectorPrefix string) []Component {
	byTag := make(map[string]Component)
	for _, mod := range m.Modules {
		for _, decl := range mod.Declarations {
			if decl.Kind != "class" || decl.TagName == "" {
				continue
			}
			if _, ok := byTag[decl.TagName]; ok {
				logger.Debug("Duplicate tag name, later declaration wins", "tag", decl.TagName, "module", mod.Path)
			}
			byTag[decl.TagName] = newComponent(decl, mod.Path, selectorPrefix)
		}
	}

	tags := make([]string, 0, len(byTag))
	for tag := range byTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	components := make([]Component, 0, len(tags))
	for _, tag := range tags {
		components = append(components, byTag[tag])
	}
	return components
}

func newComponent(decl Declaration, modulePath, selectorPrefix string) Component {
	selector := selectorPrefix + decl.TagName
	c := Component{
		TagName:      decl.TagName,
		Selector:     selector,
		ClassName:    "Wc" + common.ToTitleCase(decl.TagName) + "Component",
		FileName:     FileNameFor(selector),
		SourceModule: modulePath,
		Description:  decl.Description,
	}
	for _, m := range decl.Members {
		if !isBindableMember(m) {
			continue
		}
		optional := DefaultMemberOptional
		if m.Optional != nil {
			optional = *m.Optional
		}
		c.Members = append(c.Members, ComponentMember{
			Name:        m.Name,
			Type:        memberType(m),
			Optional:    optional,
			Description: m.Description,
		})
	}
	for _, e := range decl.Events {
		if e.Name == "" {
			continue
		}
		c.Events = append(c.Events, ComponentEvent{
			EventName:   e.Name,
			OutputName:  common.ToSafeIdentifier(e.Name),
			Type:        eventType(e),
			Description: e.Description,
		})
	}
	return c
}

// isBindableMember keeps public fields and properties only. Accessor pairs
// show up as kind "field" in analyzer output, methods never qualify.
func isBindableMember(m Member) bool {
	if m.Kind != "field" && m.Kind != "property" {
		return false
	}
	if m.Name == "" || strings.HasPrefix(m.Name, "_") || strings.HasPrefix(m.Name, "#") {
		return false
	}
	if m.Privacy == "private" || m.Privacy == "protected" {
		return false
	}
	for _, mod := range m.Modifiers {
		if mod == "private" || mod == "protected" {
			return false
		}
	}
	return true
}

func memberType(m Member) string {
	if t := strings.TrimSpace(m.Type.Text); t != "" {
		return t
	}
	return DefaultMemberType
}

func eventType(e Event) string {
	if t := strings.TrimSpace(e.Type.Text); t != "" {
		return t
	}
	return DefaultEventType
}
