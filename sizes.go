package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseSizes parses a comma-separated size list ("16,32,64") into a
// deduplicated slice, preserving order.
func parseSizes(s string) ([]int, error) {
	var sizes []int
	seen := map[int]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid size %q", part)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}
