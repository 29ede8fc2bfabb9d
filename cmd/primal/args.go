package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseNumbers converts decimal arguments to uint32. Digit separators ("_")
// are accepted, so 132_062_205 is valid.
func parseNumbers(args []string) ([]uint32, error) {
	numbers := make([]uint32, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseUint(strings.ReplaceAll(arg, "_", ""), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", arg, err)
		}
		numbers = append(numbers, uint32(v))
	}

	return numbers, nil
}

func formatNumbers(numbers []uint32) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.FormatUint(uint64(n), 10)
	}

	return strings.Join(parts, ", ")
}
