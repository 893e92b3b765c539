package execreport

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alnah/go-execreport/internal/fileutil"
)

// Manifest lists the files a run produced.
type Manifest struct {
	HTML string `json:"html,omitempty"`
	PDF  string `json:"pdf,omitempty"`
}

// Encode returns the manifest as two-space indented JSON. Non-ASCII and
// HTML-significant characters in paths are written as is.
func (m *Manifest) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteManifest encodes m to path, creating parent directories.
func WriteManifest(path string, m *Manifest) error {
	data, err := m.Encode()
	if err != nil {
		return err
	}
	if err := fileutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
