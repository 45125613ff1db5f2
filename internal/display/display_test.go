package display

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shayne-snap/llmscape/internal/catalog"
	"github.com/shayne-snap/llmscape/internal/hardware"
)

func testSpecs() *hardware.SystemSpecs {
	return &hardware.SystemSpecs{
		TotalRAMGB:     8,
		AvailableRAMGB: 4,
		TotalCPUCores:  4,
		CPUName:        "Test CPU",
		Arch:           "amd64",
	}
}

func smallLandscape(cat catalog.Category, specs *hardware.SystemSpecs) Landscape {
	return Landscape{
		Catalog: catalog.Small(),
		Entries: catalog.Project(catalog.Small(), cat),
		Specs:   specs,
	}
}

func TestSystem_Table(t *testing.T) {
	var buf bytes.Buffer
	System(&buf, testSpecs(), false)
	s := buf.String()
	if !strings.Contains(s, "System Specifications") {
		t.Error("output should contain 'System Specifications'")
	}
	if !strings.Contains(s, "Test CPU (4 cores, amd64)") {
		t.Errorf("output should contain CPU line: %s", s)
	}
	if !strings.Contains(s, "Total RAM: 8.00 GB") {
		t.Errorf("output should contain total RAM: %s", s)
	}
}

func TestSystem_JSON(t *testing.T) {
	var buf bytes.Buffer
	System(&buf, testSpecs(), true)
	var out struct {
		System map[string]interface{} `json:"system"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.System["cpu_name"] != "Test CPU" {
		t.Errorf("system.cpu_name = %v", out.System["cpu_name"])
	}
}

func TestList_Large(t *testing.T) {
	l := Landscape{Catalog: catalog.Large(), Entries: catalog.ProjectAll(catalog.Large())}
	var buf bytes.Buffer
	List(&buf, l, false)
	s := buf.String()
	if !strings.Contains(s, "Large Language Model Landscape") {
		t.Error("output should contain section title")
	}
	if !strings.Contains(s, "Showing 8 of 8 entries") {
		t.Errorf("expected entry count, got: %s", s)
	}
	for _, id := range []string{"deepseek", "qwen", "DeepSeek AI"} {
		if !strings.Contains(s, id) {
			t.Errorf("output should contain %q", id)
		}
	}
	if strings.Contains(s, "FIT") || strings.Contains(s, "CATEGORY") {
		t.Error("large landscape table should not have category or fit columns")
	}
}

func TestList_SmallWithFit(t *testing.T) {
	var buf bytes.Buffer
	List(&buf, smallLandscape(catalog.CategoryAudio, testSpecs()), false)
	s := buf.String()
	if !strings.Contains(s, "Showing 3 of") {
		t.Errorf("expected 3 audio entries: %s", s)
	}
	for _, id := range []string{"whisper", "moonshine", "kokoro"} {
		if !strings.Contains(s, id) {
			t.Errorf("output should contain %q", id)
		}
	}
	if strings.Contains(s, "phi") {
		t.Error("audio list should not contain llm entries")
	}
	if !strings.Contains(s, "fits") {
		t.Error("fit column should mark small audio models as fitting in 4 GB")
	}
}

func TestList_Empty(t *testing.T) {
	l := Landscape{Catalog: catalog.Small(), Entries: []catalog.Entry{}}
	var buf bytes.Buffer
	List(&buf, l, false)
	if !strings.Contains(buf.String(), "No entries in this view.") {
		t.Errorf("expected empty message, got: %s", buf.String())
	}
}

func TestList_JSON(t *testing.T) {
	var buf bytes.Buffer
	List(&buf, smallLandscape(catalog.CategoryLLM, testSpecs()), true)
	var out struct {
		Landscape string                   `json:"landscape"`
		Entries   []map[string]interface{} `json:"entries"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Landscape != "slm" {
		t.Errorf("landscape = %q", out.Landscape)
	}
	if len(out.Entries) != 4 {
		t.Fatalf("len(entries) = %d, want 4", len(out.Entries))
	}
	e := out.Entries[0]
	if e["category"] != "llm" {
		t.Errorf("category = %v", e["category"])
	}
	if e["icon"] != "chat" {
		t.Errorf("icon = %v", e["icon"])
	}
	if e["fit"] != "fits" {
		t.Errorf("fit = %v", e["fit"])
	}
}

func TestSearch_Empty(t *testing.T) {
	l := Landscape{Catalog: catalog.Large()}
	var buf bytes.Buffer
	Search(&buf, l, "nonexistent", false)
	if !strings.Contains(buf.String(), "No entries found matching 'nonexistent'") {
		t.Errorf("expected no-results message, got: %s", buf.String())
	}
}

func TestSearch_NonEmpty(t *testing.T) {
	l := Landscape{Catalog: catalog.Large(), Entries: catalog.Search(catalog.Large().All(), "qwen")}
	var buf bytes.Buffer
	Search(&buf, l, "qwen", false)
	s := buf.String()
	if !strings.Contains(s, "Search Results for 'qwen'") || !strings.Contains(s, "Found 1 entry") {
		t.Errorf("unexpected search output: %s", s)
	}
	if !strings.Contains(s, "Alibaba Cloud") {
		t.Error("output should contain the organization")
	}
}

func TestInfo_Table(t *testing.T) {
	e, _ := catalog.Small().Get("whisper")
	var buf bytes.Buffer
	Info(&buf, catalog.Small(), e, testSpecs(), false)
	s := buf.String()
	for _, want := range []string{"=== Whisper small ===", "Category: Audio", "Params: 244M", "Memory: ~1 GB", "Local Fit: fits"} {
		if !strings.Contains(s, want) {
			t.Errorf("output should contain %q:\n%s", want, s)
		}
	}
}

func TestInfo_LargeNoCategory(t *testing.T) {
	e, _ := catalog.Large().Get("deepseek")
	var buf bytes.Buffer
	Info(&buf, catalog.Large(), e, nil, false)
	s := buf.String()
	if strings.Contains(s, "Category:") || strings.Contains(s, "Local Fit") {
		t.Errorf("large entries have no category or fit:\n%s", s)
	}
	if !strings.Contains(s, "Rank: Tier 1") {
		t.Errorf("output should contain rank:\n%s", s)
	}
}

func TestInfo_JSON(t *testing.T) {
	e, _ := catalog.Large().Get("qwen")
	var buf bytes.Buffer
	Info(&buf, catalog.Large(), e, nil, true)
	var out struct {
		Landscape string                 `json:"landscape"`
		Entry     map[string]interface{} `json:"entry"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Landscape != "llm" || out.Entry["id"] != "qwen" {
		t.Errorf("got %+v", out)
	}
	if _, ok := out.Entry["category"]; ok {
		t.Error("large entries should not carry a category")
	}
}

func TestTips(t *testing.T) {
	var buf bytes.Buffer
	Tips(&buf, []catalog.Category{catalog.CategoryAudio}, false)
	s := buf.String()
	tp := catalog.TipsFor(catalog.CategoryAudio)
	if !strings.Contains(s, tp.Heading) {
		t.Errorf("output should contain heading %q", tp.Heading)
	}
	for _, l := range tp.Lines {
		if !strings.Contains(s, l) {
			t.Errorf("output should contain line %q", l)
		}
	}
}

func TestTips_JSON(t *testing.T) {
	var buf bytes.Buffer
	Tips(&buf, catalog.Categories, true)
	var out struct {
		Tips []struct {
			Category string   `json:"category"`
			Heading  string   `json:"heading"`
			Lines    []string `json:"lines"`
		} `json:"tips"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out.Tips) != len(catalog.Categories) {
		t.Fatalf("len(tips) = %d", len(out.Tips))
	}
	for _, tp := range out.Tips {
		if len(tp.Lines) != 3 {
			t.Errorf("%s: %d lines, want 3", tp.Category, len(tp.Lines))
		}
	}
}
