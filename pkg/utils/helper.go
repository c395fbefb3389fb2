package utils

import (
	"strconv"
)

// ParseID parses a positive integer path or query value.
func ParseID(value string) (int, bool) {
	id, err := strconv.Atoi(value)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
