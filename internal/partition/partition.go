// Package partition groups a finished section list into size-bounded
// batches for bulk ingestion.
package partition

import (
	"encoding/json"

	"github.com/dgallion1/docsect/internal/section"
)

const (
	// DefaultBudget is the per-batch serialized-size budget (3.5 MiB).
	DefaultBudget = 3584 * 1024
	// DefaultAlarm is the size at which an unpartitioned collection is
	// considered too large for a single transfer (4 MiB).
	DefaultAlarm = 4 * 1024 * 1024
)

// SectionSize returns the compact serialized size of one section in bytes.
func SectionSize(s section.Section) int {
	b, err := json.Marshal(s)
	if err != nil {
		return 0
	}
	return len(b)
}

// Partition splits sections into ordered batches whose combined
// per-section serialized size stays within budget. A section that alone
// exceeds the budget is still placed, by itself, in its own batch:
// retrieval units are never split. Concatenating the batches in order
// reproduces the input exactly.
func Partition(sections []section.Section, budget int) [][]section.Section {
	if budget <= 0 {
		budget = DefaultBudget
	}

	var batches [][]section.Section
	var current []section.Section
	currentSize := 0

	for _, s := range sections {
		size := SectionSize(s)
		if currentSize+size > budget && len(current) > 0 {
			batches = append(batches, current)
			current = []section.Section{s}
			currentSize = size
		} else {
			current = append(current, s)
			currentSize += size
		}
	}
	if len(current) > 0 {
		batches = append(batches, current)
	}
	return batches
}
