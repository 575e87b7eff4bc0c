package graphio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
)

// ErrUnsupportedFormat indicates a file extension LoadFile cannot read.
var ErrUnsupportedFormat = errors.New("graphio: unsupported file format")

// LoadFile reads a graph from path, choosing the decoder by extension:
// ".json" or ".hcl".
func LoadFile(path string) (core.Graph, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return core.Graph{}, fmt.Errorf("graphio: %w", err)
		}
		return ParseJSON(data)
	case ".hcl":
		return LoadHCL(path)
	default:
		return core.Graph{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
