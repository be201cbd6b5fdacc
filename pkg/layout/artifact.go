package layout

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// Layout Artifact - layout.json Read/Write
// =============================================================================

// WriteResultFile writes a layout result to a JSON file.
// The artifact is the hand-off format between the layout command and the
// render/explore commands.
func WriteResultFile(res Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadResultFile reads a layout.json artifact.
func ReadResultFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return Result{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return res, nil
}
