package report

import (
	"errors"
	"testing"

	"github.com/kdi-analyzer/server/internal/core/errx"
)

const conformingReply = `{
  "markdownReport": "# Title\n\nBody.",
  "charts": {
    "similarFacilities": [{"name": "A", "costPerArea": 1500, "category": "Facility"}],
    "planAreas": [{"name": "Office", "value": 100, "type": "Plan"}],
    "alternativeAreas": []
  }
}`

func TestParseAnalysisResult(t *testing.T) {
	result, err := ParseAnalysisResult([]byte(conformingReply))
	if err != nil {
		t.Fatalf("ParseAnalysisResult() error = %v, want nil", err)
	}
	if result.MarkdownReport != "# Title\n\nBody." {
		t.Errorf("MarkdownReport = %q", result.MarkdownReport)
	}
	if got := len(result.Charts.SimilarFacilities); got != 1 {
		t.Fatalf("len(SimilarFacilities) = %d, want 1", got)
	}
	f := result.Charts.SimilarFacilities[0]
	if f.Name != "A" || f.CostPerArea != 1500 || f.Category != CategoryFacility {
		t.Errorf("SimilarFacilities[0] = %+v", f)
	}
	if got := len(result.Charts.AlternativeAreas); got != 0 {
		t.Errorf("len(AlternativeAreas) = %d, want 0", got)
	}
	if result.Charts.AlternativeAreas == nil {
		t.Error("AlternativeAreas should be an empty slice, not nil")
	}
}

func TestParseAnalysisResultFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind errx.Kind
	}{
		{
			name: "not JSON",
			body: "I cannot analyze this document.",
			kind: errx.KindBadJSON,
		},
		{
			name: "missing markdownReport",
			body: `{"charts": {"similarFacilities": [], "planAreas": [], "alternativeAreas": []}}`,
			kind: errx.KindSchema,
		},
		{
			name: "missing charts",
			body: `{"markdownReport": "# T"}`,
			kind: errx.KindSchema,
		},
		{
			name: "missing planAreas",
			body: `{"markdownReport": "# T", "charts": {"similarFacilities": [], "alternativeAreas": []}}`,
			kind: errx.KindSchema,
		},
		{
			name: "facility without category",
			body: `{"markdownReport": "# T", "charts": {"similarFacilities": [{"name": "A", "costPerArea": 1}], "planAreas": [], "alternativeAreas": []}}`,
			kind: errx.KindSchema,
		},
		{
			name: "negative cost",
			body: `{"markdownReport": "# T", "charts": {"similarFacilities": [{"name": "A", "costPerArea": -5, "category": "Review"}], "planAreas": [], "alternativeAreas": []}}`,
			kind: errx.KindSchema,
		},
		{
			name: "area without name",
			body: `{"markdownReport": "# T", "charts": {"similarFacilities": [], "planAreas": [{"value": 10}], "alternativeAreas": []}}`,
			kind: errx.KindSchema,
		},
		{
			name: "negative area",
			body: `{"markdownReport": "# T", "charts": {"similarFacilities": [], "planAreas": [], "alternativeAreas": [{"name": "B1", "value": -1}]}}`,
			kind: errx.KindSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseAnalysisResult([]byte(tt.body))
			if err == nil {
				t.Fatalf("ParseAnalysisResult() = %+v, want error", result)
			}
			if got := errx.KindOf(err); got != tt.kind {
				t.Errorf("kind = %q, want %q", got, tt.kind)
			}
			var ae *errx.AppError
			if !errors.As(err, &ae) {
				t.Errorf("error %v is not an AppError", err)
			}
		})
	}
}

func TestFacilityCategoryKnown(t *testing.T) {
	tests := []struct {
		category FacilityCategory
		known    bool
	}{
		{CategoryFacility, true},
		{CategoryAverage, true},
		{CategoryReview, true},
		{FacilityCategory(""), false},
		{FacilityCategory("Plan"), false},
		{FacilityCategory("facility"), false},
	}
	for _, tt := range tests {
		if got := tt.category.Known(); got != tt.known {
			t.Errorf("Known(%q) = %v, want %v", tt.category, got, tt.known)
		}
	}
}

func TestTotalArea(t *testing.T) {
	tests := []struct {
		name    string
		entries []AreaEntry
		want    float64
	}{
		{"empty sums to zero", nil, 0},
		{"single entry", []AreaEntry{{Name: "Office", Value: 100}}, 100},
		{
			"multiple entries",
			[]AreaEntry{{Name: "Office", Value: 120.5}, {Name: "Lobby", Value: 79.5}, {Name: "Storage", Value: 50}},
			250,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalArea(tt.entries); got != tt.want {
				t.Errorf("TotalArea() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDocumentIsPDF(t *testing.T) {
	if !(Document{MIMEType: "application/pdf"}).IsPDF() {
		t.Error("application/pdf should be accepted")
	}
	for _, mime := range []string{"", "application/msword", "application/pdf; charset=binary", "text/pdf"} {
		if (Document{MIMEType: mime}).IsPDF() {
			t.Errorf("%q should be rejected", mime)
		}
	}
}
