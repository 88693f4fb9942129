package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ducanhdangcode/visualize-pylint/internal/pylint"
	"github.com/ducanhdangcode/visualize-pylint/internal/results"
)

// consoleReporter prints a compact terminal summary: the overall score, the
// per-file table in triage order, and the top of the prioritized issue log.
type consoleReporter struct {
	writer io.WriteCloser
	opts   Options
}

// maxConsoleIssues caps the issue log on the terminal; the full list
// belongs in the html and json artifacts.
const maxConsoleIssues = 25

// NewConsoleReporter creates the terminal reporter. It takes ownership of
// the writer.
func NewConsoleReporter(writer io.WriteCloser, opts Options) Reporter {
	return &consoleReporter{writer: writer, opts: opts}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	metaStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func (r *consoleReporter) Write(report *results.Report) error {
	var b strings.Builder

	score := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(scoreColor(report.OverallScore))).
		Render(fmt.Sprintf("%.2f/10", report.OverallScore))

	b.WriteString(titleStyle.Render("Pylint Analysis Report"))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render("Target: " + report.Target))
	b.WriteString("\n\n")
	b.WriteString("Overall Code Health Score: " + score + "\n")

	if len(report.FileSummaries) > 0 {
		b.WriteString("\n" + headerStyle.Render("Per-File Summary") + "\n")
		fmt.Fprintf(&b, "%-50s %6s %6s %6s %6s %6s %6s %6s\n",
			"FILE", "SCORE", "FATAL", "ERROR", "WARN", "REFAC", "CONV", "TOTAL")
		for _, s := range report.FileSummaries {
			scoreCell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(scoreColor(s.Score))).
				Render(fmt.Sprintf("%6.1f", s.Score))
			fmt.Fprintf(&b, "%-50s %s %6d %6d %6d %6d %6d %6d\n",
				s.File, scoreCell,
				s.Counts[pylint.KindFatal],
				s.Counts[pylint.KindError],
				s.Counts[pylint.KindWarning],
				s.Counts[pylint.KindRefactor],
				s.Counts[pylint.KindConvention],
				s.Total,
			)
		}
	}

	if len(report.Findings) > 0 {
		b.WriteString("\n" + headerStyle.Render("Top Issues") + "\n")
		for i, f := range report.Findings {
			if i == maxConsoleIssues {
				fmt.Fprintf(&b, "... and %d more\n", len(report.Findings)-maxConsoleIssues)
				break
			}
			badge := lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color(r.kindColor(f.Kind))).
				Render(strings.ToUpper(string(f.Kind)))
			fmt.Fprintf(&b, "%s %s %s:%d  %s\n", badge, f.Symbol, f.Path, f.Line, f.Message)
		}
	} else {
		b.WriteString("\nNo issues found.\n")
	}

	_, err := io.WriteString(r.writer, b.String())
	if err != nil {
		return fmt.Errorf("failed to write console report: %w", err)
	}
	return nil
}

func (r *consoleReporter) Close() error {
	return r.writer.Close()
}

func (r *consoleReporter) kindColor(k pylint.Kind) string {
	if c, ok := r.opts.Colors[string(k)]; ok && c != "" {
		return c
	}
	return "#95a5a6"
}
