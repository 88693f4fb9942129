package reporting

import (
	"fmt"
	"html/template"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/ducanhdangcode/visualize-pylint/internal/pylint"
	"github.com/ducanhdangcode/visualize-pylint/internal/results"
)

// Score thresholds shared by the renderers: green at 8 and above, yellow at
// 5 and above, red below.
const (
	scoreGoodThreshold = 8.0
	scoreWarnThreshold = 5.0
)

const (
	colorGood = "#2ecc71"
	colorWarn = "#f1c40f"
	colorBad  = "#e74c3c"
)

// scoreColor returns the display color for a health score.
func scoreColor(score float64) string {
	switch {
	case score >= scoreGoodThreshold:
		return colorGood
	case score >= scoreWarnThreshold:
		return colorWarn
	default:
		return colorBad
	}
}

// Highlight backgrounds for non-zero count cells in the per-file table.
var countBackgrounds = map[pylint.Kind]string{
	pylint.KindFatal:      "#f8d7da",
	pylint.KindError:      "#f8d7da",
	pylint.KindWarning:    "#fff3cd",
	pylint.KindRefactor:   "#d1ecf1",
	pylint.KindConvention: "#d1ecf1",
}

// htmlReporter renders the self-contained HTML document: overall score,
// per-file summary table, and the prioritized, filterable issue log.
type htmlReporter struct {
	writer io.WriteCloser
	opts   Options
	// sourceLine is swappable in tests.
	sourceLine func(path string, line int) string
}

// NewHTMLReporter creates the HTML reporter. It takes ownership of the
// writer.
func NewHTMLReporter(writer io.WriteCloser, opts Options) Reporter {
	return &htmlReporter{
		writer:     writer,
		opts:       opts,
		sourceLine: SourceLine,
	}
}

// View model handed to the template. Everything is resolved up front so the
// template stays free of logic.

type htmlView struct {
	Target      string
	GeneratedAt string
	Score       string
	ScoreColor  string
	Background  string
	CardBg      string
	Text        string
	Files       []string
	Summaries   []summaryRow
	Issues      []issueRow
	IssueCount  int
	Chart       chartView
}

// chartView feeds the dashboard charts: a gauge indicator for the overall
// score and a sunburst over kind, symbol, and file. The slices are parallel
// arrays in plotly's id/label/parent form; repeated labels (the same symbol
// under two kinds, say) stay distinct through their ids. Serialized into the
// page as JSON by the template engine.
type chartView struct {
	Score   float64  `json:"score"`
	IDs     []string `json:"ids"`
	Labels  []string `json:"labels"`
	Parents []string `json:"parents"`
	Values  []int    `json:"values"`
	Colors  []string `json:"colors"`
}

type summaryRow struct {
	File       string
	Score      string
	ScoreColor string
	Cells      []countCell
	Total      int
}

type countCell struct {
	Value      string
	Background string
}

type issueRow struct {
	Kind    string
	Color   string
	Symbol  string
	Message string
	Path    string
	Line    int
	Snippet string
}

func (r *htmlReporter) Write(report *results.Report) error {
	view := r.buildView(report)
	if err := reportTemplate.Execute(r.writer, view); err != nil {
		return fmt.Errorf("failed to render html report: %w", err)
	}
	return nil
}

func (r *htmlReporter) Close() error {
	return r.writer.Close()
}

func (r *htmlReporter) buildView(report *results.Report) htmlView {
	view := htmlView{
		Target:      report.Target,
		GeneratedAt: report.GeneratedAt.Format(time.RFC1123),
		Score:       fmt.Sprintf("%.2f", report.OverallScore),
		ScoreColor:  scoreColor(report.OverallScore),
		Background:  r.color("background", "#f4f6f8"),
		CardBg:      r.color("card_bg", "#ffffff"),
		Text:        r.color("text", "#2c3e50"),
		IssueCount:  len(report.Findings),
		Chart:       r.buildChart(report),
	}

	seen := make(map[string]struct{})
	for _, f := range report.Findings {
		if _, ok := seen[f.Path]; !ok {
			seen[f.Path] = struct{}{}
			view.Files = append(view.Files, f.Path)
		}
	}
	sort.Strings(view.Files)

	for _, s := range report.FileSummaries {
		row := summaryRow{
			File:       s.File,
			Score:      fmt.Sprintf("%.1f", s.Score),
			ScoreColor: scoreColor(s.Score),
			Total:      s.Total,
		}
		for _, k := range pylint.Kinds() {
			cell := countCell{Value: "-", Background: "transparent"}
			if n := s.Counts[k]; n > 0 {
				cell.Value = fmt.Sprintf("%d", n)
				cell.Background = countBackgrounds[k]
			}
			row.Cells = append(row.Cells, cell)
		}
		view.Summaries = append(view.Summaries, row)
	}

	for _, f := range report.Findings {
		view.Issues = append(view.Issues, issueRow{
			Kind:    string(f.Kind),
			Color:   r.color(string(f.Kind), "#95a5a6"),
			Symbol:  f.Symbol,
			Message: f.Message,
			Path:    f.Path,
			Line:    f.Line,
			Snippet: r.sourceLine(f.Path, f.Line),
		})
	}

	return view
}

// buildChart aggregates the findings into the kind > symbol > file hierarchy
// the sunburst renders. With branchvalues "total" every parent must carry the
// sum of its children, so counts are bumped on all three levels per finding.
func (r *htmlReporter) buildChart(report *results.Report) chartView {
	// Slices start empty, not nil, so an issue-free report serializes as
	// [] rather than null and the page script can test ids.length.
	chart := chartView{
		Score:   report.OverallScore,
		IDs:     []string{},
		Labels:  []string{},
		Parents: []string{},
		Values:  []int{},
		Colors:  []string{},
	}

	index := make(map[string]int)
	node := func(id, label, parent, color string) int {
		if i, ok := index[id]; ok {
			return i
		}
		index[id] = len(chart.IDs)
		chart.IDs = append(chart.IDs, id)
		chart.Labels = append(chart.Labels, label)
		chart.Parents = append(chart.Parents, parent)
		chart.Colors = append(chart.Colors, color)
		chart.Values = append(chart.Values, 0)
		return index[id]
	}

	for _, f := range report.Findings {
		kind := string(f.Kind)
		color := r.color(kind, "#95a5a6")
		symbolID := kind + "/" + f.Symbol
		leafID := symbolID + "/" + f.Path

		chart.Values[node(kind, capitalize(kind), "", color)]++
		chart.Values[node(symbolID, f.Symbol, kind, color)]++
		chart.Values[node(leafID, f.Path, symbolID, color)]++
	}

	return chart
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (r *htmlReporter) color(key, fallback string) string {
	if c, ok := r.opts.Colors[key]; ok && c != "" {
		return c
	}
	return fallback
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Code Quality Report</title>
<script src="https://cdn.plot.ly/plotly-2.32.0.min.js" charset="utf-8"></script>
<style>
body { font-family: 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; background-color: {{.Background}}; color: {{.Text}}; margin: 0; padding: 20px; }
.container { max-width: 1400px; margin: 0 auto; }
.header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 20px; }
.header h1 { margin: 0; font-size: 24px; }
.meta { color: #7f8c8d; font-size: 14px; }
.card { background: {{.CardBg}}; border-radius: 8px; box-shadow: 0 2px 5px rgba(0,0,0,0.05); padding: 20px; margin-bottom: 20px; }
.filter-bar { display: flex; gap: 15px; align-items: center; margin-bottom: 15px; flex-wrap: wrap; }
.filter-group { display: flex; align-items: center; gap: 8px; }
.filter-group label { font-weight: 600; font-size: 14px; color: #7f8c8d; }
.filter-select { padding: 8px 12px; border: 1px solid #bdc3c7; border-radius: 4px; background: white; font-size: 14px; cursor: pointer; }
.filter-btn { padding: 8px 16px; border: none; border-radius: 4px; background: #3498db; color: white; font-size: 14px; cursor: pointer; font-weight: 600; }
.issue-count { font-size: 14px; color: #7f8c8d; padding: 8px 12px; background: #ecf0f1; border-radius: 4px; }
table { width: 100%; border-collapse: collapse; margin-top: 10px; }
th { text-align: left; padding: 12px; background-color: #ecf0f1; border-bottom: 2px solid #bdc3c7; color: #7f8c8d; font-size: 12px; text-transform: uppercase; }
td { padding: 12px; border-bottom: 1px solid #ecf0f1; vertical-align: top; }
tr:hover { background-color: #f9f9f9; }
.issue-row.hidden { display: none; }
.badge { color: white; padding: 4px 8px; border-radius: 4px; font-size: 11px; font-weight: bold; text-transform: uppercase; }
.file-loc { font-family: monospace; color: #7f8c8d; font-size: 12px; margin-bottom: 4px; }
.code-snippet { display: block; background: {{.Background}}; padding: 8px; border-radius: 4px; font-family: 'Consolas', monospace; color: #d63031; border-left: 3px solid #fab1a0; font-size: 13px; }
.center { text-align: center; }
.charts-row { display: flex; gap: 20px; flex-wrap: wrap; }
.chart-box { flex: 1; min-width: 320px; height: 400px; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <div>
      <h1>Pylint Analysis Report</h1>
      <div class="meta">Target: {{.Target}} &middot; Generated: {{.GeneratedAt}}</div>
    </div>
    <div style="text-align: right;">
      <div style="font-size: 32px; font-weight: bold; color: {{.ScoreColor}}">{{.Score}}/10</div>
      <div class="meta">Overall Code Health Score</div>
    </div>
  </div>

  <div class="card">
    <div class="charts-row">
      <div id="scoreGauge" class="chart-box"></div>
      <div id="typeSunburst" class="chart-box"></div>
    </div>
  </div>

  {{if .Summaries}}
  <div class="card">
    <h3>Per-File Summary</h3>
    <table>
      <thead>
        <tr>
          <th>File</th>
          <th class="center">Score</th>
          <th class="center">Fatal</th>
          <th class="center">Error</th>
          <th class="center">Warning</th>
          <th class="center">Refactor</th>
          <th class="center">Convention</th>
          <th class="center">Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Summaries}}
        <tr>
          <td><div class="file-loc">{{.File}}</div></td>
          <td class="center" style="font-weight: bold; color: {{.ScoreColor}}">{{.Score}}</td>
          {{range .Cells}}<td class="center" style="background-color: {{.Background}}">{{.Value}}</td>{{end}}
          <td class="center" style="font-weight: bold;">{{.Total}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
  </div>
  {{end}}

  <div class="card">
    <h3>Issue Log (Sorted by Priority)</h3>
    <div class="filter-bar">
      <div class="filter-group">
        <label for="fileFilter">File:</label>
        <select id="fileFilter" class="filter-select">
          <option value="">All Files</option>
          {{range .Files}}<option value="{{.}}">{{.}}</option>{{end}}
        </select>
      </div>
      <div class="filter-group">
        <label for="typeFilter">Type:</label>
        <select id="typeFilter" class="filter-select">
          <option value="">All Types</option>
          <option value="fatal">Fatal</option>
          <option value="error">Error</option>
          <option value="warning">Warning</option>
          <option value="refactor">Refactor</option>
          <option value="convention">Convention</option>
        </select>
      </div>
      <button class="filter-btn" onclick="resetFilters()">Reset Filters</button>
      <div class="issue-count" id="issueCount">Showing: <strong>{{.IssueCount}}</strong> issues</div>
    </div>
    <table>
      <thead>
        <tr>
          <th style="width: 100px;">Type</th>
          <th style="width: 150px;">Code</th>
          <th>Message</th>
          <th>Location &amp; Context</th>
        </tr>
      </thead>
      <tbody id="issueTableBody">
        {{range .Issues}}
        <tr class="issue-row" data-file="{{.Path}}" data-type="{{.Kind}}">
          <td style="border-left: 5px solid {{.Color}};">
            <span class="badge" style="background-color: {{.Color}}">{{.Kind}}</span>
          </td>
          <td><strong>{{.Symbol}}</strong></td>
          <td>{{.Message}}</td>
          <td>
            <div class="file-loc">{{.Path}}:{{.Line}}</div>
            <code class="code-snippet">{{.Snippet}}</code>
          </td>
        </tr>
        {{else}}
        <tr><td colspan="4" class="center">No issues found. Great job!</td></tr>
        {{end}}
      </tbody>
    </table>
  </div>
</div>
<script>
var chart = {{.Chart}};

Plotly.newPlot('scoreGauge', [{
  type: 'indicator',
  mode: 'gauge+number',
  value: chart.score,
  title: { text: 'Overall Quality Score', font: { size: 16 } },
  gauge: {
    axis: { range: [0, 10] },
    bar: { color: '#2c3e50' },
    steps: [
      { range: [0, 5], color: '#e74c3c' },
      { range: [5, 8], color: '#f1c40f' },
      { range: [8, 10], color: '#2ecc71' }
    ]
  }
}], { margin: { t: 40, l: 40, r: 40, b: 10 }, paper_bgcolor: 'rgba(0,0,0,0)' }, { displayModeBar: false });

if (chart.ids.length > 0) {
  Plotly.newPlot('typeSunburst', [{
    type: 'sunburst',
    ids: chart.ids,
    labels: chart.labels,
    parents: chart.parents,
    values: chart.values,
    branchvalues: 'total',
    marker: { colors: chart.colors }
  }], { margin: { t: 10, l: 10, r: 10, b: 10 }, paper_bgcolor: 'rgba(0,0,0,0)' }, { displayModeBar: false });
} else {
  document.getElementById('typeSunburst').innerHTML =
    '<div class="center" style="padding-top: 160px; color: #7f8c8d;">No issues to break down.</div>';
}

var fileFilter = document.getElementById('fileFilter');
var typeFilter = document.getElementById('typeFilter');
var issueCount = document.getElementById('issueCount');

function applyFilters() {
  var selectedFile = fileFilter.value;
  var selectedType = typeFilter.value;
  var rows = document.querySelectorAll('.issue-row');
  var visibleCount = 0;

  rows.forEach(function (row) {
    var fileMatch = !selectedFile || row.getAttribute('data-file') === selectedFile;
    var typeMatch = !selectedType || row.getAttribute('data-type') === selectedType;
    if (fileMatch && typeMatch) {
      row.classList.remove('hidden');
      visibleCount++;
    } else {
      row.classList.add('hidden');
    }
  });

  issueCount.innerHTML = 'Showing: <strong>' + visibleCount + '</strong> of <strong>' + rows.length + '</strong> issues';
}

function resetFilters() {
  fileFilter.value = '';
  typeFilter.value = '';
  applyFilters();
}

fileFilter.addEventListener('change', applyFilters);
typeFilter.addEventListener('change', applyFilters);
</script>
</body>
</html>
`))
