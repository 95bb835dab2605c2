// Package output persists section collections as JSON array files,
// splitting oversized collections into budget-bounded part files.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docsect/internal/partition"
	"github.com/dgallion1/docsect/internal/section"
)

// Write serializes sections to path as an indented JSON array. When the
// serialized form exceeds the alarm threshold, the collection is
// partitioned into batches within the byte budget and written as
// numbered part files instead, and the oversized original is removed.
// Returns the paths actually written.
func Write(path string, sections []section.Section, budget, alarm int) ([]string, error) {
	data, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sections: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	if len(data) <= alarm {
		return []string{path}, nil
	}

	parts, err := writeParts(path, partition.Partition(sections, budget))
	if err != nil {
		return nil, err
	}
	if err := os.Remove(path); err != nil {
		return nil, fmt.Errorf("remove oversized %s: %w", path, err)
	}
	return parts, nil
}

// writeParts writes each batch as <base>_part<N>.json, numbered from 1.
func writeParts(path string, batches [][]section.Section) ([]string, error) {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	paths := make([]string, 0, len(batches))
	for i, batch := range batches {
		partPath := fmt.Sprintf("%s_part%d%s", base, i+1, ext)
		data, err := json.MarshalIndent(batch, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal part %d: %w", i+1, err)
		}
		if err := os.WriteFile(partPath, data, 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", partPath, err)
		}
		paths = append(paths, partPath)
	}
	return paths, nil
}
