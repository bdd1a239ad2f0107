// Package report persists rendered reports to the output directory.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
)

// ErrAborted indicates the user declined to overwrite an existing report.
var ErrAborted = errors.New("report: write aborted")

// Writer writes rendered reports beneath one output directory.
type Writer struct {
	// OutputDir is created on first write if it does not exist.
	OutputDir string
	// AssumeYes skips the overwrite confirmation prompt.
	AssumeYes bool
}

// Write stores content under the output directory and returns the full path.
// When the target already exists and AssumeYes is unset, the user is asked
// before it is overwritten.
func (w *Writer) Write(filename, content string) (string, error) {
	if err := os.MkdirAll(w.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(w.OutputDir, filename)
	if _, err := os.Stat(path); err == nil && !w.AssumeYes {
		overwrite := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("%s already exists. Overwrite?", path),
			Default: true,
		}
		if err := survey.AskOne(prompt, &overwrite); err != nil {
			return "", fmt.Errorf("confirming overwrite: %w", err)
		}
		if !overwrite {
			return "", ErrAborted
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
