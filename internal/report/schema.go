package report

import "google.golang.org/genai"

// ResponseSchema constrains the analysis reply to the exact shape of
// AnalysisResult. The provider enforces field names, types and the closed
// category enum; Validate re-checks the same contract on our side.
func ResponseSchema() *genai.Schema {
	areaItems := func() *genai.Schema {
		return &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":  {Type: genai.TypeString},
				"value": {Type: genai.TypeNumber, Description: "Area in m2"},
				"type":  {Type: genai.TypeString},
			},
			Required: []string{"name", "value"},
		}
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"markdownReport": {
				Type:        genai.TypeString,
				Description: "The full markdown report text",
			},
			"charts": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"similarFacilities": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"name":        {Type: genai.TypeString},
								"costPerArea": {Type: genai.TypeNumber, Description: "Unit cost in 1000 KRW / m2"},
								"category": {
									Type: genai.TypeString,
									Enum: []string{string(CategoryFacility), string(CategoryAverage), string(CategoryReview)},
								},
							},
							Required: []string{"name", "costPerArea", "category"},
						},
					},
					"planAreas":        {Type: genai.TypeArray, Items: areaItems()},
					"alternativeAreas": {Type: genai.TypeArray, Items: areaItems()},
				},
				Required: []string{"similarFacilities", "planAreas", "alternativeAreas"},
			},
		},
		Required: []string{"markdownReport", "charts"},
	}
}
