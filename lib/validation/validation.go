package validation

import (
	"fmt"
	"regexp"
	"strconv"
)

// idRegex matches a plain decimal show id.
var idRegex = regexp.MustCompile(`^\d+$`)

// ValidateShowID parses a show id path parameter. Returns an error for
// anything that is not a positive decimal integer.
func ValidateShowID(raw string) (int, error) {
	if !idRegex.MatchString(raw) {
		return 0, fmt.Errorf("invalid show id: %q", raw)
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid show id: %w", err)
	}
	if id < 1 {
		return 0, fmt.Errorf("show id must be positive, got %d", id)
	}

	return id, nil
}
