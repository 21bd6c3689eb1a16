package render

import (
	"testing"

	"github.com/kdi-analyzer/server/internal/report"
)

func TestBuildAreaTable(t *testing.T) {
	entries := []report.AreaEntry{
		{Name: "Office", Value: 100, Type: "Plan"},
		{Name: "Lobby", Value: 1250.5, Type: "Plan"},
	}
	table := BuildAreaTable("실별 면적 (계획안)", entries)

	if table.Empty {
		t.Error("table with entries marked empty")
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	if table.Rows[0] != (AreaRow{Name: "Office", Value: "100"}) {
		t.Errorf("row 0 = %+v", table.Rows[0])
	}
	if table.Rows[1] != (AreaRow{Name: "Lobby", Value: "1,250.5"}) {
		t.Errorf("row 1 = %+v", table.Rows[1])
	}
	if table.Total != "1,350.5" {
		t.Errorf("total = %q, want the arithmetic sum", table.Total)
	}
}

func TestBuildAreaTableEmpty(t *testing.T) {
	table := BuildAreaTable("실별 면적 (검토안)", nil)
	if !table.Empty {
		t.Error("empty sequence not marked empty")
	}
	if len(table.Rows) != 0 {
		t.Errorf("rows = %d, want 0", len(table.Rows))
	}
	if table.Total != "0" {
		t.Errorf("total = %q, want zero", table.Total)
	}
}
