// Package reorder implements permutation parsing and application for
// directive tokens, plus the interactive console prompter.
package reorder

import (
	"fmt"
	"strconv"
	"strings"
)

// Apply returns items rearranged so that result[i] = items[indices[i]].
// indices must be a valid permutation of 0..len(items)-1 (see
// ParsePermutation); Apply itself does not re-validate.
func Apply(items []string, indices []int) []string {
	result := make([]string, len(indices))
	for i, idx := range indices {
		result[i] = items[idx]
	}
	return result
}

// ParsePermutation parses a user response like "3 1 2" into zero-based
// indices and validates that it is an exact permutation of 0..n-1:
// every position exactly once, nothing out of range, nothing missing.
func ParsePermutation(response string, n int) ([]int, error) {
	fields := strings.Fields(response)
	indices := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", field)
		}
		indices = append(indices, v-1)
	}

	if len(indices) != n {
		return nil, fmt.Errorf("expected %d positions, got %d", n, len(indices))
	}
	seen := make([]bool, n)
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("position %d is out of range 1-%d", idx+1, n)
		}
		if seen[idx] {
			return nil, fmt.Errorf("position %d appears more than once", idx+1)
		}
		seen[idx] = true
	}
	return indices, nil
}
