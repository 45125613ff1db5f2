// Package gallery holds per-view selection state and derives render frames from it.
package gallery

import "github.com/shayne-snap/llmscape/internal/catalog"

// Hover is the emphasised entry, or none. The zero value is none.
type Hover struct {
	id  string
	set bool
}

// Enter moves the hover target to id. The last call wins.
func (h Hover) Enter(id string) Hover {
	return Hover{id: id, set: true}
}

// Exit clears the hover target.
func (h Hover) Exit() Hover {
	return Hover{}
}

// ID returns the hovered id and whether anything is hovered.
func (h Hover) ID() (string, bool) {
	return h.id, h.set
}

// Is reports whether id is the hover target.
func (h Hover) Is(id string) bool {
	return h.set && h.id == id
}

// Tab is the active category of a categorised view.
type Tab struct {
	active catalog.Category
}

// NewTab starts on def, or on the first category if def is not valid.
func NewTab(def catalog.Category) Tab {
	if !def.Valid() {
		def = catalog.CategoryLLM
	}
	return Tab{active: def}
}

// Select makes c the active category.
func (t Tab) Select(c catalog.Category) Tab {
	return Tab{active: c}
}

func (t Tab) Active() catalog.Category {
	return t.active
}
