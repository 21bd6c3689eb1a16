package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/kdi-analyzer/server/internal/report"
)

//go:embed template/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "template/*.html"))

// EChartsAssetURL is the script the chart fragments depend on. The shell and
// print pages load it once in their head.
const EChartsAssetURL = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"

// ChartsView is everything the chart tab shows: the cost comparison bar, the
// two area donuts and the two summary tables.
type ChartsView struct {
	BarElement       template.HTML
	BarScript        template.HTML
	PlanElement      template.HTML
	PlanScript       template.HTML
	AltElement       template.HTML
	AltScript        template.HTML
	PlanTable        AreaTable
	AlternativeTable AreaTable
}

// BuildChartsView renders the three charts and formats the two tables from a
// chart bundle.
func BuildChartsView(b report.ChartBundle) (*ChartsView, error) {
	bar, err := FacilityBarChart(b.SimilarFacilities, DefaultBarSize)
	if err != nil {
		return nil, err
	}
	plan, err := AreaDonutChart("세부면적 구성 (계획안)", b.PlanAreas, DefaultDonutSize)
	if err != nil {
		return nil, err
	}
	alt, err := AreaDonutChart("세부면적 구성 (검토안)", b.AlternativeAreas, DefaultDonutSize)
	if err != nil {
		return nil, err
	}

	return &ChartsView{
		BarElement:       template.HTML(bar.Element),
		BarScript:        template.HTML(bar.Script),
		PlanElement:      template.HTML(plan.Element),
		PlanScript:       template.HTML(plan.Script),
		AltElement:       template.HTML(alt.Element),
		AltScript:        template.HTML(alt.Script),
		PlanTable:        BuildAreaTable("실별 면적 (계획안)", b.PlanAreas),
		AlternativeTable: BuildAreaTable("실별 면적 (검토안)", b.AlternativeAreas),
	}, nil
}

// ChartsHTML renders the chart tab fragment.
func ChartsHTML(view *ChartsView) (string, error) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, "charts.html", view); err != nil {
		return "", fmt.Errorf("render charts view: %w", err)
	}
	return buf.String(), nil
}

type printView struct {
	Report    template.HTML
	Charts    *ChartsView
	AssetURL  string
	FileTitle string
}

// PrintHTML composes the combined report-then-charts document for the
// browser's native print pipeline. The document is complete when the response
// is written; no settle delay is needed.
func PrintHTML(result *report.AnalysisResult, fileName string) (string, error) {
	reportHTML, err := ReportHTML(result.MarkdownReport)
	if err != nil {
		return "", err
	}
	charts, err := BuildChartsView(result.Charts)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = pages.ExecuteTemplate(&buf, "print.html", printView{
		Report:    template.HTML(reportHTML),
		Charts:    charts,
		AssetURL:  EChartsAssetURL,
		FileTitle: fileName,
	})
	if err != nil {
		return "", fmt.Errorf("render print document: %w", err)
	}
	return buf.String(), nil
}

// IndexHTML renders the shell page.
func IndexHTML() (string, error) {
	var buf bytes.Buffer
	err := pages.ExecuteTemplate(&buf, "index.html", map[string]any{
		"AssetURL": EChartsAssetURL,
	})
	if err != nil {
		return "", fmt.Errorf("render index page: %w", err)
	}
	return buf.String(), nil
}
