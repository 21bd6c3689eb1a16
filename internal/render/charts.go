package render

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	echartsrender "github.com/go-echarts/go-echarts/v2/render"

	"github.com/kdi-analyzer/server/internal/report"
)

// ChartSize is the pixel container each chart renders into. Rendering into a
// container without measurable dimensions is refused.
type ChartSize struct {
	Width  int
	Height int
}

var DefaultBarSize = ChartSize{Width: 860, Height: 420}
var DefaultDonutSize = ChartSize{Width: 420, Height: 340}

func (s ChartSize) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("chart container has no measurable dimensions: %dx%d", s.Width, s.Height)
	}
	return nil
}

func (s ChartSize) initOpts() opts.Initialization {
	return opts.Initialization{
		Width:  fmt.Sprintf("%dpx", s.Width),
		Height: fmt.Sprintf("%dpx", s.Height),
	}
}

// ChartFragment is one rendered chart: a container element plus its script.
type ChartFragment struct {
	Element string
	Script  string
}

// FacilityBarChart renders the comparable-facility unit cost comparison, one
// bar per entry, colored by category.
func FacilityBarChart(facilities []report.SimilarFacility, size ChartSize) (ChartFragment, error) {
	if err := size.validate(); err != nil {
		return ChartFragment{}, err
	}

	names := make([]string, 0, len(facilities))
	data := make([]opts.BarData, 0, len(facilities))
	for _, f := range facilities {
		names = append(names, f.Name)
		data = append(data, opts.BarData{
			Value:     f.CostPerArea,
			ItemStyle: &opts.ItemStyle{Color: CategoryColor(f.Category)},
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(size.initOpts()),
		charts.WithTitleOpts(opts.Title{
			Title:    "유사시설 공사비 비교",
			Subtitle: "단위: 천원/㎡",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: "{b}: {c} 천원/㎡",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			AxisLabel: &opts.AxisLabel{
				Show:      opts.Bool(true),
				Formatter: opts.FuncOpts("function (value) { return value.toLocaleString(); }"),
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)
	bar.SetXAxis(names).AddSeries("공사비", data)

	return snippet(bar.RenderSnippet()), nil
}

// AreaDonutChart renders one room-by-room area breakdown as a donut, wedge
// colors assigned cyclically by position.
func AreaDonutChart(title string, entries []report.AreaEntry, size ChartSize) (ChartFragment, error) {
	if err := size.validate(); err != nil {
		return ChartFragment{}, err
	}

	data := make([]opts.PieData, 0, len(entries))
	for i, e := range entries {
		data = append(data, opts.PieData{
			Name:      e.Name,
			Value:     e.Value,
			ItemStyle: &opts.ItemStyle{Color: AreaColor(i)},
		})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(size.initOpts()),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: "{b}: {c} m²",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Bottom: "0",
		}),
	)
	pie.AddSeries("면적", data).SetSeriesOptions(
		charts.WithPieChartOpts(opts.PieChart{
			Radius: []string{"50%", "75%"},
		}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
	)

	return snippet(pie.RenderSnippet()), nil
}

func snippet(s echartsrender.ChartSnippet) ChartFragment {
	return ChartFragment{
		Element: string(s.Element),
		Script:  string(s.Script),
	}
}
