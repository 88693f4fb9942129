package reporting

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenArtifact opens the produced report in the platform's default viewer.
// Best-effort: callers treat a failure as cosmetic.
func OpenArtifact(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	// Detach; the viewer outlives us.
	return cmd.Process.Release()
}
