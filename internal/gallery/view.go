package gallery

import "github.com/shayne-snap/llmscape/internal/catalog"

// Frame is an immutable snapshot of what a view shows. Visible and Tips are
// always derived from the same Active category.
type Frame struct {
	Catalog     string
	Categorised bool
	Active      catalog.Category
	Visible     []catalog.Entry
	Tips        catalog.Tips
	HoveredID   string
	Counts      map[catalog.Category]int
	Query       string
	Total       int
}

// Hovered reports whether id is the emphasised entry of this frame.
func (f Frame) Hovered(id string) bool {
	return f.HoveredID != "" && f.HoveredID == id
}

// HoverIndex is the position of the hovered entry in Visible, or -1.
func (f Frame) HoverIndex() int {
	if f.HoveredID == "" {
		return -1
	}
	for i, e := range f.Visible {
		if e.ID == f.HoveredID {
			return i
		}
	}
	return -1
}

// View owns the selection state of one landscape.
type View struct {
	cat   *catalog.Catalog
	hover Hover
	tab   Tab
	query string
}

// NewView creates a view over c. def is the initial tab for categorised catalogs.
func NewView(c *catalog.Catalog, def catalog.Category) *View {
	return &View{cat: c, tab: NewTab(def)}
}

func (v *View) Catalog() *catalog.Catalog { return v.cat }

func (v *View) Hover() Hover { return v.hover }

func (v *View) Tab() Tab { return v.tab }

func (v *View) Query() string { return v.query }

// visible projects the catalog for the current tab and query.
func (v *View) visible() []catalog.Entry {
	var entries []catalog.Entry
	if v.cat.Categorised() {
		entries = catalog.Project(v.cat, v.tab.Active())
	} else {
		entries = catalog.ProjectAll(v.cat)
	}
	return catalog.Search(entries, v.query)
}

// Frame derives the current render snapshot.
func (v *View) Frame() Frame {
	f := Frame{
		Catalog:     v.cat.Name(),
		Categorised: v.cat.Categorised(),
		Active:      v.tab.Active(),
		Visible:     v.visible(),
		Query:       v.query,
		Total:       v.cat.Len(),
	}
	if f.Categorised {
		f.Tips = catalog.TipsFor(f.Active)
		f.Counts = catalog.Counts(v.cat)
	}
	if id, ok := v.hover.ID(); ok {
		f.HoveredID = id
	}
	return f
}

// EnterHover emphasises id. Ids that are not currently visible are ignored.
func (v *View) EnterHover(id string) {
	if indexOf(v.visible(), id) < 0 {
		return
	}
	v.hover = v.hover.Enter(id)
}

// ExitHover clears the emphasis.
func (v *View) ExitHover() {
	v.hover = v.hover.Exit()
}

// SelectTab switches the active category. A hover target that drops out of
// the visible set is cleared in the same step.
func (v *View) SelectTab(c catalog.Category) {
	v.tab = v.tab.Select(c)
	v.dropStaleHover()
}

func (v *View) NextTab() { v.SelectTab(v.tab.Active().Next()) }

func (v *View) PrevTab() { v.SelectTab(v.tab.Active().Prev()) }

// SetQuery narrows the visible entries by a search string.
func (v *View) SetQuery(q string) {
	v.query = q
	v.dropStaleHover()
}

// HoverNext moves emphasis to the following visible entry, starting at the first.
func (v *View) HoverNext() {
	v.HoverBy(1)
}

// HoverPrev moves emphasis to the preceding visible entry, starting at the last.
func (v *View) HoverPrev() {
	v.HoverBy(-1)
}

// HoverFirst emphasises the first visible entry.
func (v *View) HoverFirst() {
	vis := v.visible()
	if len(vis) > 0 {
		v.hover = v.hover.Enter(vis[0].ID)
	}
}

// HoverLast emphasises the last visible entry.
func (v *View) HoverLast() {
	vis := v.visible()
	if len(vis) > 0 {
		v.hover = v.hover.Enter(vis[len(vis)-1].ID)
	}
}

// HoverBy moves emphasis by delta positions, clamped to the visible range.
func (v *View) HoverBy(delta int) {
	vis := v.visible()
	if len(vis) == 0 {
		return
	}
	id, ok := v.hover.ID()
	i := indexOf(vis, id)
	if !ok || i < 0 {
		i = 0
		if delta < 0 {
			i = len(vis) - 1
		}
	} else {
		i += delta
	}
	if i < 0 {
		i = 0
	}
	if i >= len(vis) {
		i = len(vis) - 1
	}
	v.hover = v.hover.Enter(vis[i].ID)
}

func (v *View) dropStaleHover() {
	if id, ok := v.hover.ID(); ok && indexOf(v.visible(), id) < 0 {
		v.hover = v.hover.Exit()
	}
}

func indexOf(entries []catalog.Entry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
