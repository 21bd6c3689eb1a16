package session

import (
	"errors"
	"testing"

	"github.com/kdi-analyzer/server/internal/report"
)

func testDoc() report.Document {
	return report.Document{Name: "report.pdf", MIMEType: report.MIMEPDF, Data: []byte("%PDF-")}
}

func testResult() *report.AnalysisResult {
	return &report.AnalysisResult{
		MarkdownReport: "# Title",
		Charts: report.ChartBundle{
			SimilarFacilities: []report.SimilarFacility{},
			PlanAreas:         []report.AreaEntry{},
			AlternativeAreas:  []report.AreaEntry{},
		},
	}
}

func TestLifecycle(t *testing.T) {
	m := NewManager()

	if st, _ := m.Snapshot(); st.Name() != "idle" {
		t.Fatalf("initial state = %q, want idle", st.Name())
	}

	id, err := m.BeginAnalysis(testDoc())
	if err != nil {
		t.Fatalf("BeginAnalysis() error = %v", err)
	}
	if id == "" {
		t.Fatal("BeginAnalysis() returned empty session ID")
	}
	if st, _ := m.Snapshot(); st.Name() != "analyzing" {
		t.Fatalf("state = %q, want analyzing", st.Name())
	}

	if err := m.CompleteAnalysis(id, testResult()); err != nil {
		t.Fatalf("CompleteAnalysis() error = %v", err)
	}
	st, gotID := m.Snapshot()
	ready, ok := st.(Ready)
	if !ok {
		t.Fatalf("state = %q, want ready", st.Name())
	}
	if ready.Tab != TabReport {
		t.Errorf("tab = %q, want report by default", ready.Tab)
	}
	if gotID != id {
		t.Errorf("session ID changed on completion: %q -> %q", id, gotID)
	}
}

func TestSingleFlight(t *testing.T) {
	m := NewManager()
	if _, err := m.BeginAnalysis(testDoc()); err != nil {
		t.Fatalf("BeginAnalysis() error = %v", err)
	}
	if _, err := m.BeginAnalysis(testDoc()); !errors.Is(err, ErrBusy) {
		t.Errorf("second BeginAnalysis() error = %v, want ErrBusy", err)
	}
}

func TestFailureClearsEverything(t *testing.T) {
	m := NewManager()
	id, err := m.BeginAnalysis(testDoc())
	if err != nil {
		t.Fatalf("BeginAnalysis() error = %v", err)
	}
	if err := m.FailAnalysis(id); err != nil {
		t.Fatalf("FailAnalysis() error = %v", err)
	}

	st, gotID := m.Snapshot()
	if st.Name() != "idle" {
		t.Errorf("state after failure = %q, want idle", st.Name())
	}
	if gotID != "" {
		t.Errorf("session ID after failure = %q, want empty", gotID)
	}
	if _, ok := m.Document(); ok {
		t.Error("document survived failure")
	}
	if _, _, ok := m.Result(); ok {
		t.Error("result present after failure")
	}
	if m.Active(id) {
		t.Error("failed session still reported active")
	}
}

func TestNewUploadDiscardsPriorResult(t *testing.T) {
	m := NewManager()
	first, _ := m.BeginAnalysis(testDoc())
	if err := m.CompleteAnalysis(first, testResult()); err != nil {
		t.Fatalf("CompleteAnalysis() error = %v", err)
	}

	second, err := m.BeginAnalysis(report.Document{Name: "other.pdf", MIMEType: report.MIMEPDF})
	if err != nil {
		t.Fatalf("BeginAnalysis() after ready error = %v", err)
	}
	if second == first {
		t.Error("new upload reused the previous session ID")
	}
	if m.Active(first) {
		t.Error("previous session still active after new upload")
	}
	if _, _, ok := m.Result(); ok {
		t.Error("prior result survived a new upload")
	}
}

func TestSelectTab(t *testing.T) {
	m := NewManager()

	if err := m.SelectTab(TabCharts); !errors.Is(err, ErrNotReady) {
		t.Errorf("SelectTab() while idle error = %v, want ErrNotReady", err)
	}

	id, _ := m.BeginAnalysis(testDoc())
	if err := m.SelectTab(TabCharts); !errors.Is(err, ErrNotReady) {
		t.Errorf("SelectTab() while analyzing error = %v, want ErrNotReady", err)
	}

	if err := m.CompleteAnalysis(id, testResult()); err != nil {
		t.Fatalf("CompleteAnalysis() error = %v", err)
	}
	if err := m.SelectTab(TabCharts); err != nil {
		t.Fatalf("SelectTab() error = %v", err)
	}
	if _, tab, _ := m.Result(); tab != TabCharts {
		t.Errorf("tab = %q, want charts", tab)
	}
	// tab switches stay within ready
	if st, _ := m.Snapshot(); st.Name() != "ready" {
		t.Errorf("state after tab switch = %q, want ready", st.Name())
	}
}

func TestTabSurvivesReupload(t *testing.T) {
	m := NewManager()
	first, _ := m.BeginAnalysis(testDoc())
	if err := m.CompleteAnalysis(first, testResult()); err != nil {
		t.Fatalf("CompleteAnalysis() error = %v", err)
	}
	if err := m.SelectTab(TabCharts); err != nil {
		t.Fatalf("SelectTab() error = %v", err)
	}

	second, err := m.BeginAnalysis(testDoc())
	if err != nil {
		t.Fatalf("BeginAnalysis() after ready error = %v", err)
	}
	if err := m.CompleteAnalysis(second, testResult()); err != nil {
		t.Fatalf("CompleteAnalysis() error = %v", err)
	}
	if _, tab, _ := m.Result(); tab != TabCharts {
		t.Errorf("tab after re-upload = %q, want charts to persist", tab)
	}

	// a failure in between does not erase the remembered tab either
	third, _ := m.BeginAnalysis(testDoc())
	if err := m.FailAnalysis(third); err != nil {
		t.Fatalf("FailAnalysis() error = %v", err)
	}
	fourth, _ := m.BeginAnalysis(testDoc())
	if err := m.CompleteAnalysis(fourth, testResult()); err != nil {
		t.Fatalf("CompleteAnalysis() error = %v", err)
	}
	if _, tab, _ := m.Result(); tab != TabCharts {
		t.Errorf("tab after failed upload = %q, want charts to persist", tab)
	}
}

func TestParseTab(t *testing.T) {
	tests := []struct {
		in      string
		want    Tab
		wantErr bool
	}{
		{"report", TabReport, false},
		{"charts", TabCharts, false},
		{"", "", true},
		{"print", "", true},
		{"Report", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTab(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTab(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTab(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompletionRequiresMatchingSession(t *testing.T) {
	m := NewManager()
	if _, err := m.BeginAnalysis(testDoc()); err != nil {
		t.Fatalf("BeginAnalysis() error = %v", err)
	}
	if err := m.CompleteAnalysis("someone-else", testResult()); !errors.Is(err, ErrNotAnalyzing) {
		t.Errorf("CompleteAnalysis() with wrong ID error = %v, want ErrNotAnalyzing", err)
	}
	if err := m.FailAnalysis("someone-else"); !errors.Is(err, ErrNotAnalyzing) {
		t.Errorf("FailAnalysis() with wrong ID error = %v, want ErrNotAnalyzing", err)
	}
}
