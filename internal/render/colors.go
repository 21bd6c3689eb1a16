package render

import "github.com/kdi-analyzer/server/internal/report"

// Donut wedge palette, assigned cyclically by sequence position. Two entries
// with the same name in different sequences may receive different colors.
var areaPalette = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444",
	"#8B5CF6", "#6366F1", "#EC4899", "#14B8A6",
}

const categoryFallbackColor = "#94A3B8"

var categoryColors = map[report.FacilityCategory]string{
	report.CategoryFacility: "#CBD5E1",
	report.CategoryAverage:  "#3B82F6",
	report.CategoryReview:   "#F97316",
}

// CategoryColor returns the bar color for a facility category. Unrecognized
// categories get the fallback color, never an error.
func CategoryColor(c report.FacilityCategory) string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return categoryFallbackColor
}

// AreaColor returns the wedge color for the entry at the given position.
func AreaColor(i int) string {
	return areaPalette[i%len(areaPalette)]
}
