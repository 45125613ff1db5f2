package catalog

import "strings"

// ProjectAll is the identity projection: every entry, in catalog order.
func ProjectAll(c *Catalog) []Entry {
	return c.All()
}

// Project returns the entries whose category is cat, preserving catalog order.
// The result is empty, never nil, when nothing matches.
func Project(c *Catalog, cat Category) []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Category == cat {
			out = append(out, e.clone())
		}
	}
	return out
}

// Counts returns the number of entries per category.
func Counts(c *Catalog) map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, e := range c.entries {
		counts[e.Category]++
	}
	return counts
}

// Search keeps entries whose id, name, organization or any tag contains query
// (case-insensitive). An empty query keeps everything. The result never aliases
// entries.
func Search(entries []Entry, query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]Entry, len(entries))
		copy(out, entries)
		return out
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if matches(e, q) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e Entry, q string) bool {
	if strings.Contains(strings.ToLower(e.ID), q) ||
		strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Organization), q) {
		return true
	}
	for _, t := range e.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
