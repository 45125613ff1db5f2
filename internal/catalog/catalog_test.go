package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuiltinCatalogs_Validate(t *testing.T) {
	for _, c := range []*Catalog{Large(), Small()} {
		if err := c.Validate(); err != nil {
			t.Errorf("%s.Validate() = %v", c.Name(), err)
		}
		if c.Len() == 0 {
			t.Errorf("%s is empty", c.Name())
		}
	}
}

func TestValidate_Errors(t *testing.T) {
	c := newCatalog("test", true, []Entry{
		{ID: "a", Category: CategoryLLM},
		{ID: "a", Category: CategoryAudio},
		{ID: "", Category: CategoryRAG},
		{ID: "b", Category: Category(42)},
	})
	err := c.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []error{ErrDuplicateID, ErrEmptyID, ErrUnknownCategory} {
		if !errors.Is(err, want) {
			t.Errorf("Validate() error %v does not wrap %v", err, want)
		}
	}
}

func TestValidate_UncategorisedIgnoresCategory(t *testing.T) {
	c := newCatalog("test", false, []Entry{{ID: "a", Category: Category(-1)}})
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestProject_OnlyMatchingInOrder(t *testing.T) {
	c := Small()
	all := c.All()
	for _, cat := range Categories {
		got := Project(c, cat)
		var want []string
		for _, e := range all {
			if e.Category == cat {
				want = append(want, e.ID)
			}
		}
		if len(got) != len(want) {
			t.Fatalf("Project(%s) len = %d, want %d", cat, len(got), len(want))
		}
		for i, e := range got {
			if e.Category != cat {
				t.Errorf("Project(%s)[%d].Category = %s", cat, i, e.Category)
			}
			if e.ID != want[i] {
				t.Errorf("Project(%s)[%d].ID = %s, want %s", cat, i, e.ID, want[i])
			}
		}
	}
}

func TestProject_Pure(t *testing.T) {
	c := Small()
	for _, cat := range Categories {
		a := Project(c, cat)
		b := Project(c, cat)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Project(%s) not deterministic", cat)
		}
	}
}

func TestProject_ScenarioCounts(t *testing.T) {
	tests := []struct {
		cat  Category
		want int
	}{
		{CategoryLLM, 4},
		{CategoryVision, 3},
		{CategoryRAG, 3},
		{CategoryAudio, 3},
		{CategoryGenAI, 3},
	}
	for _, tt := range tests {
		if got := len(Project(Small(), tt.cat)); got != tt.want {
			t.Errorf("len(Project(%s)) = %d, want %d", tt.cat, got, tt.want)
		}
	}
}

func TestProject_NoMatchIsEmpty(t *testing.T) {
	c := newCatalog("test", true, []Entry{{ID: "a", Category: CategoryLLM}})
	got := Project(c, CategoryAudio)
	if got == nil || len(got) != 0 {
		t.Errorf("Project(no match) = %#v, want empty non-nil slice", got)
	}
}

func TestProjectAll_Identity(t *testing.T) {
	c := Large()
	got := ProjectAll(c)
	if len(got) != c.Len() {
		t.Fatalf("len(ProjectAll) = %d, want %d", len(got), c.Len())
	}
	for i := range got {
		if got[i].ID != c.At(i).ID {
			t.Errorf("ProjectAll[%d] = %s, want %s", i, got[i].ID, c.At(i).ID)
		}
	}
}

func TestCatalog_ReadsAreCopies(t *testing.T) {
	c := Large()
	e := c.At(0)
	e.Tags[0] = "mutated"
	e.Name = "mutated"
	all := c.All()
	all[0].Tags[1] = "mutated"
	again := c.At(0)
	if again.Name == "mutated" || again.Tags[0] == "mutated" || again.Tags[1] == "mutated" {
		t.Errorf("catalog entry was mutated through a read: %+v", again)
	}
}

func TestCatalog_Get(t *testing.T) {
	e, ok := Large().Get("deepseek")
	if !ok {
		t.Fatal("Get(deepseek) not found")
	}
	if e.Organization != "DeepSeek AI" {
		t.Errorf("Organization = %q", e.Organization)
	}
	if _, ok := Large().Get("nope"); ok {
		t.Error("Get(nope) found an entry")
	}
}

func TestSearch(t *testing.T) {
	entries := Small().All()
	tests := []struct {
		query string
		want  []string
	}{
		{"", nil},
		{"BAAI", []string{"bge-small", "bge-reranker"}},
		{"speech-to-text", []string{"whisper", "moonshine"}},
		{"  MOONDREAM ", []string{"moondream"}},
		{"no-such-model", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Search(entries, tt.query)
			if tt.want == nil {
				if len(got) != len(entries) {
					t.Errorf("Search(%q) len = %d, want all %d", tt.query, len(got), len(entries))
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) len = %d, want %d", tt.query, len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("Search(%q)[%d] = %s, want %s", tt.query, i, got[i].ID, id)
				}
			}
		})
	}
}

func TestSearch_EmptyQueryCopies(t *testing.T) {
	entries := Small().All()
	got := Search(entries, "")
	got[0].ID = "changed"
	if entries[0].ID == "changed" {
		t.Error("Search with an empty query returned the caller's slice")
	}
	if got := Search([]Entry{}, ""); got == nil {
		t.Error("Search on an empty slice should return an empty, non-nil slice")
	}
}

func TestCounts(t *testing.T) {
	counts := Counts(Small())
	total := 0
	for _, cat := range Categories {
		total += counts[cat]
	}
	if total != Small().Len() {
		t.Errorf("sum(Counts) = %d, want %d", total, Small().Len())
	}
	if counts[CategoryLLM] != 4 || counts[CategoryAudio] != 3 {
		t.Errorf("Counts = %v", counts)
	}
}

func TestCategory_NextPrevCycle(t *testing.T) {
	c := CategoryLLM
	for range Categories {
		c = c.Next()
	}
	if c != CategoryLLM {
		t.Errorf("Next cycle ended at %s, want llm", c)
	}
	if CategoryLLM.Prev() != CategoryGenAI {
		t.Errorf("llm.Prev() = %s, want genai", CategoryLLM.Prev())
	}
	if Category(99).Next() != CategoryLLM {
		t.Error("invalid.Next() should reset to llm")
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"llm", CategoryLLM, false},
		{"Vision", CategoryVision, false},
		{" rag ", CategoryRAG, false},
		{"AUDIO", CategoryAudio, false},
		{"genai", CategoryGenAI, false},
		{"video", CategoryLLM, true},
		{"", CategoryLLM, true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCategory(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownCategory) {
			t.Errorf("ParseCategory(%q) err = %v, want ErrUnknownCategory", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTipsFor_FailsClosed(t *testing.T) {
	for _, cat := range Categories {
		tp := TipsFor(cat)
		if tp.Heading == "" || tp.Heading == DefaultTips.Heading {
			t.Errorf("TipsFor(%s) has no own heading", cat)
		}
		for i, l := range tp.Lines {
			if l == "" {
				t.Errorf("TipsFor(%s).Lines[%d] empty", cat, i)
			}
		}
	}
	if got := TipsFor(Category(99)); got != DefaultTips {
		t.Errorf("TipsFor(unknown) = %+v, want DefaultTips", got)
	}
}

func TestIcons_FailClosed(t *testing.T) {
	if EntryIcon("deepseek") != "whale" {
		t.Errorf("EntryIcon(deepseek) = %q", EntryIcon("deepseek"))
	}
	if EntryIcon("unknown") != DefaultIcon {
		t.Errorf("EntryIcon(unknown) = %q, want %q", EntryIcon("unknown"), DefaultIcon)
	}
	if CategoryIcon(Category(-3)) != DefaultIcon {
		t.Errorf("CategoryIcon(invalid) = %q", CategoryIcon(Category(-3)))
	}
	whisper, _ := Small().Get("whisper")
	if IconFor(Small(), whisper) != "mic" {
		t.Errorf("IconFor(whisper) = %q, want mic", IconFor(Small(), whisper))
	}
	for _, e := range Large().All() {
		if IconFor(Large(), e) == DefaultIcon {
			t.Errorf("large entry %s has no icon", e.ID)
		}
	}
}

func TestMetrics_Pairs(t *testing.T) {
	m := Metrics{Params: "1B", Rank: "Tier 2"}
	got := m.Pairs()
	want := [][2]string{{"Params", "1B"}, {"Rank", "Tier 2"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Pairs() = %v, want %v", got, want)
	}
}
