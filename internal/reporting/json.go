package reporting

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/ducanhdangcode/visualize-pylint/internal/results"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonReporter serializes the report model verbatim.
type jsonReporter struct {
	writer io.WriteCloser
}

// NewJSONReporter creates a reporter emitting the report as indented JSON.
// It takes ownership of the writer.
func NewJSONReporter(writer io.WriteCloser) Reporter {
	return &jsonReporter{writer: writer}
}

func (r *jsonReporter) Write(report *results.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if _, err := r.writer.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (r *jsonReporter) Close() error {
	return r.writer.Close()
}
