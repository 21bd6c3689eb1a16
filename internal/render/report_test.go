package render

import (
	"strings"
	"testing"
)

func TestReportHTML(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		contains []string
	}{
		{
			name:     "headings",
			markdown: "# 사업 개요\n\n## 경제성 분석",
			contains: []string{"<h1", "사업 개요", "<h2", "경제성 분석"},
		},
		{
			name:     "gfm table with header and body",
			markdown: "| 항목 | 값 |\n| --- | --- |\n| B/C | 0.95 |",
			contains: []string{"<table>", "<thead>", "<tbody>", "<th>항목</th>", "<td>0.95</td>"},
		},
		{
			name:     "emphasis and rule",
			markdown: "**강조** 텍스트\n\n---\n",
			contains: []string{"<strong>강조</strong>", "<hr>"},
		},
		{
			name:     "lists",
			markdown: "1. 첫째\n2. 둘째\n\n- 항목\n",
			contains: []string{"<ol>", "<li>첫째</li>", "<ul>", "<li>항목</li>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReportHTML(tt.markdown)
			if err != nil {
				t.Fatalf("ReportHTML() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestReportHTMLIsPure(t *testing.T) {
	const md = "# Title\n\n| a | b |\n| - | - |\n| 1 | 2 |\n"
	first, err := ReportHTML(md)
	if err != nil {
		t.Fatalf("first render error = %v", err)
	}
	second, err := ReportHTML(md)
	if err != nil {
		t.Fatalf("second render error = %v", err)
	}
	if first != second {
		t.Error("rendering the same markdown twice produced different output")
	}
}
