// Package catalog holds the built-in model landscapes and the pure functions
// that project them for display.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrDuplicateID     = errors.New("duplicate entry id")
	ErrEmptyID         = errors.New("empty entry id")
)

// Category partitions the small-model landscape for tab filtering.
type Category int

const (
	CategoryLLM Category = iota
	CategoryVision
	CategoryRAG
	CategoryAudio
	CategoryGenAI
)

// Categories lists every category in tab order.
var Categories = []Category{CategoryLLM, CategoryVision, CategoryRAG, CategoryAudio, CategoryGenAI}

func (c Category) String() string {
	switch c {
	case CategoryLLM:
		return "llm"
	case CategoryVision:
		return "vision"
	case CategoryRAG:
		return "rag"
	case CategoryAudio:
		return "audio"
	case CategoryGenAI:
		return "genai"
	default:
		return "unknown"
	}
}

// Label is the tab caption.
func (c Category) Label() string {
	switch c {
	case CategoryLLM:
		return "Language"
	case CategoryVision:
		return "Vision"
	case CategoryRAG:
		return "RAG & Embeddings"
	case CategoryAudio:
		return "Audio"
	case CategoryGenAI:
		return "Generative"
	default:
		return "Other"
	}
}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	return c >= CategoryLLM && c <= CategoryGenAI
}

// Next returns the following tab, wrapping to the first.
func (c Category) Next() Category {
	if !c.Valid() || c == CategoryGenAI {
		return CategoryLLM
	}
	return c + 1
}

// Prev returns the preceding tab, wrapping to the last.
func (c Category) Prev() Category {
	if !c.Valid() || c == CategoryLLM {
		return CategoryGenAI
	}
	return c - 1
}

// ParseCategory maps "llm", "vision", "rag", "audio" or "genai" (any case) to a Category.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if c.String() == key {
			return c, nil
		}
	}
	return CategoryLLM, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Metrics are display strings shown in a card's metrics block. Empty fields are not shown.
type Metrics struct {
	Context string `json:"context,omitempty"`
	Params  string `json:"params,omitempty"`
	Memory  string `json:"memory,omitempty"`
	Rank    string `json:"rank,omitempty"`
}

// Pairs returns the non-empty metrics as label/value pairs in a fixed order.
func (m Metrics) Pairs() [][2]string {
	var out [][2]string
	if m.Params != "" {
		out = append(out, [2]string{"Params", m.Params})
	}
	if m.Context != "" {
		out = append(out, [2]string{"Context", m.Context})
	}
	if m.Memory != "" {
		out = append(out, [2]string{"Memory", m.Memory})
	}
	if m.Rank != "" {
		out = append(out, [2]string{"Rank", m.Rank})
	}
	return out
}

// Entry is one model in a landscape.
type Entry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Organization string   `json:"organization"`
	Tags         []string `json:"tags"`
	Description  string   `json:"description"`
	Metrics      Metrics  `json:"metrics"`
	Category     Category `json:"-"`
	Color        string   `json:"color"`
	// FootprintGB is the approximate RAM needed to run the model locally; 0 when unknown.
	FootprintGB float64 `json:"footprint_gb,omitempty"`
}

func (e Entry) clone() Entry {
	e.Tags = append([]string(nil), e.Tags...)
	return e
}

// Catalog is an ordered, read-only list of entries.
type Catalog struct {
	name        string
	categorised bool
	entries     []Entry
	byID        map[string]int
}

func newCatalog(name string, categorised bool, entries []Entry) *Catalog {
	c := &Catalog{
		name:        name,
		categorised: categorised,
		entries:     entries,
		byID:        make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if _, ok := c.byID[e.ID]; !ok {
			c.byID[e.ID] = i
		}
	}
	return c
}

// Name is the catalog key ("llm" or "slm").
func (c *Catalog) Name() string { return c.name }

// Categorised reports whether entries are partitioned by Category.
func (c *Catalog) Categorised() bool { return c.categorised }

func (c *Catalog) Len() int { return len(c.entries) }

// At returns a copy of the i-th entry. It panics if i is out of range, like a slice index.
func (c *Catalog) At(i int) Entry {
	return c.entries[i].clone()
}

// All returns a copy of every entry in catalog order.
func (c *Catalog) All() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.clone()
	}
	return out
}

// Get looks up an entry by id.
func (c *Catalog) Get(id string) (Entry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i].clone(), true
}

// Validate checks catalog integrity: non-empty unique ids and, for categorised
// catalogs, a known category on every entry.
func (c *Catalog) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(c.entries))
	for i, e := range c.entries {
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("%s[%d]: %w", c.name, i, ErrEmptyID))
			continue
		}
		if seen[e.ID] {
			errs = append(errs, fmt.Errorf("%s[%d]: %w: %s", c.name, i, ErrDuplicateID, e.ID))
		}
		seen[e.ID] = true
		if c.categorised && !e.Category.Valid() {
			errs = append(errs, fmt.Errorf("%s/%s: %w: %d", c.name, e.ID, ErrUnknownCategory, int(e.Category)))
		}
	}
	return errors.Join(errs...)
}
