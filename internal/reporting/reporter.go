// Package reporting renders an assembled report into an output artifact.
// Every ordering and aggregation decision is made upstream in results; this
// package only formats.
package reporting

import (
	"fmt"
	"io"
	"os"

	"github.com/ducanhdangcode/visualize-pylint/internal/results"
)

// Reporter writes a fully resolved report to an output.
type Reporter interface {
	// Write renders the report.
	Write(report *results.Report) error
	// Close finalizes the artifact and releases any underlying resources.
	Close() error
}

// Options carries presentation configuration shared by the renderers.
type Options struct {
	// Colors maps finding kinds (plus "background", "card_bg", "text") to
	// hex colors.
	Colors map[string]string
}

// nopWriteCloser wraps an io.Writer with a no-op Close.
type nopWriteCloser struct {
	io.Writer
}

func (nwc *nopWriteCloser) Close() error {
	return nil
}

// New creates a reporter for the given format writing to outputPath. An
// empty path or "stdout" writes to standard output.
func New(format, outputPath string, opts Options) (Reporter, error) {
	var writer io.WriteCloser
	isStdout := outputPath == "" || outputPath == "stdout"

	if isStdout {
		writer = &nopWriteCloser{os.Stdout}
	} else {
		f, err := os.Create(outputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file %s: %w", outputPath, err)
		}
		writer = f
	}

	cleanup := func() {
		if !isStdout {
			writer.Close()
		}
	}

	switch format {
	case "html":
		return NewHTMLReporter(writer, opts), nil
	case "json":
		return NewJSONReporter(writer), nil
	case "console":
		return NewConsoleReporter(writer, opts), nil
	default:
		cleanup()
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
