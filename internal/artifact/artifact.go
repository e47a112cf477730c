// Package artifact records what a generation run produced in a JSON sidecar.
package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RunMetadata describes one generation run.
type RunMetadata struct {
	RunID     string    `json:"run_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Duration  string    `json:"duration"`

	Profile     string `json:"profile,omitempty"`
	Mode        string `json:"mode"`
	Description string `json:"description"`

	Output string `json:"output"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`

	ExitCode int    `json:"exit_code"`
	Error    string `json:"error,omitempty"`
}

// Manifest collects run metadata and writes it next to the output.
type Manifest struct {
	path     string
	metadata *RunMetadata
}

// NewManifest starts a manifest that will be written to path.
func NewManifest(path string) *Manifest {
	now := time.Now()
	return &Manifest{
		path: path,
		metadata: &RunMetadata{
			RunID:     now.Format("20060102-150405"),
			StartTime: now,
		},
	}
}

// Path returns where the manifest will be written.
func (m *Manifest) Path() string {
	return m.path
}

// Metadata returns the collected metadata.
func (m *Manifest) Metadata() RunMetadata {
	return *m.metadata
}

// SetProfile records the config profile the run was based on.
func (m *Manifest) SetProfile(name string) {
	m.metadata.Profile = name
}

// SetRequest records the generation mode and its description.
func (m *Manifest) SetRequest(mode, description string) {
	m.metadata.Mode = mode
	m.metadata.Description = description
}

// SetContent records the output target and a digest of the generated bytes.
func (m *Manifest) SetContent(output string, data []byte) {
	sum := sha256.Sum256(data)
	m.metadata.Output = output
	m.metadata.Size = int64(len(data))
	m.metadata.SHA256 = hex.EncodeToString(sum[:])
}

// Finalize completes the run and writes the manifest.
func (m *Manifest) Finalize(exitCode int, runErr error) error {
	m.metadata.EndTime = time.Now()
	m.metadata.Duration = m.metadata.EndTime.Sub(m.metadata.StartTime).String()
	m.metadata.ExitCode = exitCode
	if runErr != nil {
		m.metadata.Error = runErr.Error()
	}

	if dir := filepath.Dir(m.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create manifest directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(m.metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
