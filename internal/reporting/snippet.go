package reporting

import (
	"bufio"
	"os"
	"strings"
)

// Placeholder strings shown in place of a source line that could not be
// read. A missing line is cosmetic and never aborts report generation.
const (
	snippetFileMissing = "File not found (path issue)"
	snippetUnreadable  = "Could not read source code."
)

// SourceLine returns the trimmed source line at the 1-based lineNo of path,
// or a placeholder when the file or line is unavailable.
func SourceLine(path string, lineNo int) string {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return snippetFileMissing
		}
		return snippetUnreadable
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if line == lineNo {
			return strings.TrimSpace(scanner.Text())
		}
	}
	if err := scanner.Err(); err != nil {
		return snippetUnreadable
	}
	return ""
}
