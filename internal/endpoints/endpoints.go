// Package endpoints provides the endpoint-description document served by
// GET /api. The document ships embedded in the binary and may be replaced
// by a file on disk.
package endpoints

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

//go:embed endpoints.json
var embedded []byte

// Default returns the embedded document.
func Default() json.RawMessage {
	out := make(json.RawMessage, len(embedded))
	copy(out, embedded)
	return out
}

// Load returns the document at path, or the embedded one when path is blank.
// The content must be a single JSON object.
func Load(path string) (json.RawMessage, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read endpoints: %w", err)
	}
	if err := validate(b); err != nil {
		return nil, fmt.Errorf("endpoints %s: %w", path, err)
	}
	return json.RawMessage(b), nil
}

func validate(b []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	if doc == nil {
		return errors.New("document must be a JSON object")
	}
	return nil
}
