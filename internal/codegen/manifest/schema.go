// Package manifest reads custom elements manifest files and distills them
// into the component model the Angular generators consume.
package manifest

import "encoding/json"

// Manifest mirrors the subset of the custom elements manifest format the
// generator consumes. Unknown fields are ignored.
type Manifest struct {
	SchemaVersion string       `json:"schemaVersion"`
	Modules       List[Module] `json:"modules"`
}

// Module is one JavaScript module entry of the manifest.
type Module struct {
	Kind         string            `json:"kind"`
	Path         string            `json:"path"`
	Declarations List[Declaration] `json:"declarations"`
}

// Declaration is a single declaration inside a module. Only class
// declarations carrying a tag name describe custom elements.
type Declaration struct {
	Kind        string       `json:"kind"`
	Name        string       `json:"name"`
	TagName     string       `json:"tagName"`
	Description string       `json:"description"`
	Members     List[Member] `json:"members"`
	Events      List[Event]  `json:"events"`
}

// Member is a class member declaration.
type Member struct {
	Kind        string   `json:"kind"`
	Name        string   `json:"name"`
	Type        TypeText `json:"type"`
	Optional    *bool    `json:"optional"`
	Description string   `json:"description"`
	Privacy     string   `json:"privacy"`
	Modifiers   []string `json:"modifiers"`
}

// Event is a custom event declaration.
type Event struct {
	Name        string   `json:"name"`
	Type        TypeText `json:"type"`
	Description string   `json:"description"`
}

// List unmarshals like a plain slice but tolerates malformed input instead
// of failing: a non-array value decodes to empty, and elements that do not
// decode into T are skipped one by one. Real-world manifests are loose
// about these fields.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = nil
		return nil
	}
	items := make([]T, 0, len(raw))
	for _, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	*l = items
	return nil
}

// TypeText holds a type annotation. Manifests usually carry it as an object
// with a "text" field; a bare string is tolerated as well.
type TypeText struct {
	Text string `json:"text"`
}

func (t *TypeText) UnmarshalJSON(data []byte) error {
	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		t.Text = obj.Text
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.Text = s
		return nil
	}
	t.Text = ""
	return nil
}
