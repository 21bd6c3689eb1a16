package report

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kdi-analyzer/server/internal/core/errx"
)

// ParseAnalysisResult decodes a provider reply into an AnalysisResult and
// validates it against the response contract. Any deviation is a hard failure;
// there is no best-effort partial parse.
func ParseAnalysisResult(data []byte) (*AnalysisResult, error) {
	var result AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, errx.NewKind(err, http.StatusBadGateway, "provider reply is not valid JSON", errx.KindBadJSON)
	}
	if err := result.Validate(); err != nil {
		return nil, errx.NewKind(err, http.StatusBadGateway, "provider reply does not match the response schema", errx.KindSchema)
	}
	return &result, nil
}

// Validate checks the schema contract: required fields present, numbers
// non-negative, all three chart sequences materialized (empty is fine, absent
// is not).
func (r *AnalysisResult) Validate() error {
	if r.MarkdownReport == "" {
		return fmt.Errorf("missing required field markdownReport")
	}
	if r.Charts.SimilarFacilities == nil {
		return fmt.Errorf("missing required field charts.similarFacilities")
	}
	if r.Charts.PlanAreas == nil {
		return fmt.Errorf("missing required field charts.planAreas")
	}
	if r.Charts.AlternativeAreas == nil {
		return fmt.Errorf("missing required field charts.alternativeAreas")
	}
	for i, f := range r.Charts.SimilarFacilities {
		if f.Name == "" {
			return fmt.Errorf("similarFacilities[%d]: missing name", i)
		}
		if f.CostPerArea < 0 {
			return fmt.Errorf("similarFacilities[%d] %q: negative costPerArea %v", i, f.Name, f.CostPerArea)
		}
		if f.Category == "" {
			return fmt.Errorf("similarFacilities[%d] %q: missing category", i, f.Name)
		}
	}
	if err := validateAreas("planAreas", r.Charts.PlanAreas); err != nil {
		return err
	}
	return validateAreas("alternativeAreas", r.Charts.AlternativeAreas)
}

func validateAreas(field string, entries []AreaEntry) error {
	for i, e := range entries {
		if e.Name == "" {
			return fmt.Errorf("%s[%d]: missing name", field, i)
		}
		if e.Value < 0 {
			return fmt.Errorf("%s[%d] %q: negative value %v", field, i, e.Name, e.Value)
		}
	}
	return nil
}
