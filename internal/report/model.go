package report

// MIMEPDF is the only document type the analyzer accepts.
const MIMEPDF = "application/pdf"

// Document is an uploaded report, immutable once selected. Every consumer
// reads it; nothing mutates it.
type Document struct {
	Name     string
	MIMEType string
	Data     []byte
}

// IsPDF reports whether the document carries the exact PDF MIME type.
func (d Document) IsPDF() bool {
	return d.MIMEType == MIMEPDF
}

// FacilityCategory tags a comparable facility for display grouping. The set is
// closed on the provider side via the response schema enum; values outside it
// still render with a fallback color, never an error.
type FacilityCategory string

const (
	CategoryFacility FacilityCategory = "Facility"
	CategoryAverage  FacilityCategory = "Average"
	CategoryReview   FacilityCategory = "Review"
)

// Known reports whether the category is one of the three schema values.
func (c FacilityCategory) Known() bool {
	switch c {
	case CategoryFacility, CategoryAverage, CategoryReview:
		return true
	default:
		return false
	}
}

// SimilarFacility is one comparable-facility unit cost, in thousand KRW per m2.
type SimilarFacility struct {
	Name        string           `json:"name"`
	CostPerArea float64          `json:"costPerArea"`
	Category    FacilityCategory `json:"category"`
}

// AreaEntry is one labeled room/space with its area in m2. Type is free-form
// and informational only.
type AreaEntry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Type  string  `json:"type,omitempty"`
}

// ChartBundle holds the structured chart data of one analysis. The three
// sequences carry no cross references; each is independently ordered and
// independently summed for display totals.
type ChartBundle struct {
	SimilarFacilities []SimilarFacility `json:"similarFacilities"`
	PlanAreas         []AreaEntry       `json:"planAreas"`
	AlternativeAreas  []AreaEntry       `json:"alternativeAreas"`
}

// AnalysisResult is the complete artifact of one analysis call. The report and
// the chart data are atomic: neither is ever returned or rendered without the
// other.
type AnalysisResult struct {
	MarkdownReport string      `json:"markdownReport"`
	Charts         ChartBundle `json:"charts"`
}

// TotalArea sums the values of an area sequence. An empty sequence sums to
// zero, which is what the corresponding table renders as its total.
func TotalArea(entries []AreaEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Value
	}
	return total
}
