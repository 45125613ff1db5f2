// Package display handles CLI table and JSON output for catalogs, entries, tips and host specs.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/shayne-snap/llmscape/internal/catalog"
	"github.com/shayne-snap/llmscape/internal/hardware"
)

var (
	Brand  = color.New(color.FgHiGreen, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

var (
	systemTpl *template.Template
	infoTpl   *template.Template
)

func init() {
	systemTpl = template.Must(template.New("system").Parse(
		`
=== System Specifications ===
CPU: {{.CPUName}} ({{.TotalCPUCores}} cores, {{.Arch}})
Total RAM: {{.TotalRAMGB}}
Available RAM: {{.AvailableRAMGB}}

`))
	infoTpl = template.Must(template.New("info").Parse(
		`
=== {{.Name}} ===

ID: {{.ID}}
Organization: {{.Organization}}
Landscape: {{.Landscape}}
{{- if .Category}}
Category: {{.Category}}{{end}}
{{- if .Tags}}
Tags: {{.Tags}}{{end}}

{{.Description}}
{{if .Metrics}}
Metrics:
{{.Metrics}}
{{end}}
{{- if .Fit}}
Local Fit: {{.Fit}}
{{end}}
`))
}

// Landscape is one catalog as shown by the CLI: its entries plus optional host specs
// for the fit column.
type Landscape struct {
	Catalog *catalog.Catalog
	Entries []catalog.Entry
	Specs   *hardware.SystemSpecs
}

// Title is the section heading for the landscape.
func (l Landscape) Title() string {
	if l.Catalog.Categorised() {
		return "Small Model Landscape"
	}
	return "Large Language Model Landscape"
}

// System prints host specs to out (text or JSON).
func System(out io.Writer, specs *hardware.SystemSpecs, useJSON bool) {
	if useJSON {
		writeJSON(out, map[string]interface{}{"system": systemJSON(specs)})
		return
	}
	wsl := ""
	if hardware.IsRunningInWSL() {
		wsl = " (WSL)"
	}
	data := struct {
		CPUName, Arch              string
		TotalCPUCores              int
		TotalRAMGB, AvailableRAMGB string
	}{
		CPUName:        specs.CPUName,
		Arch:           specs.Arch,
		TotalCPUCores:  specs.TotalCPUCores,
		TotalRAMGB:     fmt.Sprintf("%.2f GB", specs.TotalRAMGB),
		AvailableRAMGB: fmt.Sprintf("%.2f GB%s", specs.AvailableRAMGB, wsl),
	}
	_ = systemTpl.Execute(out, data)
}

func systemJSON(specs *hardware.SystemSpecs) map[string]interface{} {
	return map[string]interface{}{
		"total_ram_gb":     round2(specs.TotalRAMGB),
		"available_ram_gb": round2(specs.AvailableRAMGB),
		"cpu_cores":        specs.TotalCPUCores,
		"cpu_name":         specs.CPUName,
		"arch":             specs.Arch,
	}
}

// List prints a landscape as a table (or JSON).
func List(out io.Writer, l Landscape, useJSON bool) {
	if useJSON {
		writeJSON(out, map[string]interface{}{
			"landscape": l.Catalog.Name(),
			"entries":   entriesToJSON(l),
		})
		return
	}
	fmt.Fprintf(out, "\n=== %s ===\n", Brand.Sprint(l.Title()))
	fmt.Fprintf(out, "Showing %d of %d entries\n\n", len(l.Entries), l.Catalog.Len())
	if len(l.Entries) == 0 {
		fmt.Fprintln(out, Subtle.Sprint("No entries in this view."))
		return
	}
	writeTable(out, l)
}

// Search prints search results for query.
func Search(out io.Writer, l Landscape, query string, useJSON bool) {
	if useJSON {
		writeJSON(out, map[string]interface{}{
			"landscape": l.Catalog.Name(),
			"query":     query,
			"entries":   entriesToJSON(l),
		})
		return
	}
	if len(l.Entries) == 0 {
		fmt.Fprintf(out, "\nNo entries found matching '%s'\n", query)
		return
	}
	fmt.Fprintf(out, "\n=== Search Results for '%s' (%s) ===\n", query, l.Catalog.Name())
	fmt.Fprintf(out, "Found %d entr%s\n\n", len(l.Entries), plural(len(l.Entries), "y", "ies"))
	writeTable(out, l)
}

func writeTable(out io.Writer, l Landscape) {
	categorised := l.Catalog.Categorised()
	withFit := categorised && l.Specs != nil
	header := []string{"ID", "Name", "Organization"}
	if categorised {
		header = append(header, "Category")
	}
	header = append(header, "Params", "Context", "Memory", "Rank")
	if withFit {
		header = append(header, "Fit")
	}
	header = append(header, "Tags")

	tbl := tablewriter.NewWriter(out)
	tbl.Header(toAny(header)...)
	for _, e := range l.Entries {
		row := []string{e.ID, e.Name, e.Organization}
		if categorised {
			row = append(row, e.Category.String())
		}
		row = append(row, dash(e.Metrics.Params), dash(e.Metrics.Context), dash(e.Metrics.Memory), dash(e.Metrics.Rank))
		if withFit {
			row = append(row, fitText(l.Specs.Classify(e.FootprintGB)))
		}
		row = append(row, strings.Join(e.Tags, ", "))
		tbl.Append(row)
	}
	_ = tbl.Render()
}

// infoData holds template data for the Info view.
type infoData struct {
	ID, Name, Organization, Landscape, Category string
	Tags, Description, Metrics, Fit             string
}

// Info prints one entry in detail (text or JSON).
func Info(out io.Writer, c *catalog.Catalog, e catalog.Entry, specs *hardware.SystemSpecs, useJSON bool) {
	l := Landscape{Catalog: c, Entries: []catalog.Entry{e}, Specs: specs}
	if useJSON {
		writeJSON(out, map[string]interface{}{
			"landscape": c.Name(),
			"entry":     entryToJSON(l, e),
		})
		return
	}
	data := infoData{
		ID:           e.ID,
		Name:         e.Name,
		Organization: e.Organization,
		Landscape:    l.Title(),
		Tags:         strings.Join(e.Tags, ", "),
		Description:  e.Description,
		Metrics:      metricsBlock(e.Metrics),
	}
	if c.Categorised() {
		data.Category = e.Category.Label()
		if specs != nil {
			data.Fit = fitText(specs.Classify(e.FootprintGB))
		}
	}
	_ = infoTpl.Execute(out, data)
}

// Tips prints the tips panel for each category in cats.
func Tips(out io.Writer, cats []catalog.Category, useJSON bool) {
	if useJSON {
		list := make([]map[string]interface{}, 0, len(cats))
		for _, c := range cats {
			tp := catalog.TipsFor(c)
			list = append(list, map[string]interface{}{
				"category": c.String(),
				"heading":  tp.Heading,
				"icon":     tp.Icon,
				"lines":    tp.Lines[:],
			})
		}
		writeJSON(out, map[string]interface{}{"tips": list})
		return
	}
	for _, c := range cats {
		tp := catalog.TipsFor(c)
		fmt.Fprintf(out, "\n%s %s\n", Brand.Sprint(tp.Heading), Subtle.Sprintf("[%s]", c))
		for _, line := range tp.Lines {
			fmt.Fprintf(out, "  • %s\n", line)
		}
	}
	fmt.Fprintln(out)
}

func metricsBlock(m catalog.Metrics) string {
	var lines []string
	for _, p := range m.Pairs() {
		lines = append(lines, fmt.Sprintf("  %s: %s", p[0], p[1]))
	}
	return strings.Join(lines, "\n")
}

func fitText(f hardware.Fit) string {
	switch f {
	case hardware.FitComfortable:
		return Good.Sprint(f.String())
	case hardware.FitTight:
		return Warn.Sprint(f.String())
	case hardware.FitTooLarge:
		return Bad.Sprint(f.String())
	default:
		return Subtle.Sprint("-")
	}
}

func entriesToJSON(l Landscape) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(l.Entries))
	for _, e := range l.Entries {
		out = append(out, entryToJSON(l, e))
	}
	return out
}

func entryToJSON(l Landscape, e catalog.Entry) map[string]interface{} {
	obj := map[string]interface{}{
		"id":           e.ID,
		"name":         e.Name,
		"organization": e.Organization,
		"tags":         e.Tags,
		"description":  e.Description,
		"metrics":      e.Metrics,
		"color":        e.Color,
		"icon":         catalog.IconFor(l.Catalog, e),
	}
	if l.Catalog.Categorised() {
		obj["category"] = e.Category.String()
		if e.FootprintGB > 0 {
			obj["footprint_gb"] = round2(e.FootprintGB)
		}
		if l.Specs != nil {
			obj["fit"] = l.Specs.Classify(e.FootprintGB).String()
		}
	}
	return obj
}

func writeJSON(out io.Writer, v interface{}) {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
