package render

import "github.com/kdi-analyzer/server/internal/report"

// AreaRow is one formatted table row.
type AreaRow struct {
	Name  string
	Value string
}

// AreaTable is one summary table, plan or alternative. An empty sequence
// renders a single "no data" row; the total row is still shown and reads zero.
type AreaTable struct {
	Title string
	Rows  []AreaRow
	Total string
	Empty bool
}

// BuildAreaTable formats one area sequence for display. The total row equals
// the arithmetic sum of the sequence values.
func BuildAreaTable(title string, entries []report.AreaEntry) AreaTable {
	t := AreaTable{
		Title: title,
		Total: FormatNumber(report.TotalArea(entries)),
		Empty: len(entries) == 0,
	}
	for _, e := range entries {
		t.Rows = append(t.Rows, AreaRow{Name: e.Name, Value: FormatNumber(e.Value)})
	}
	return t
}
