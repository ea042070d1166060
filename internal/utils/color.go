package utils

import (
	"fmt"
	"strings"
)

// NormalizeHexColor validates a "#RRGGBB" color string and returns it
// lowercased. Shorthand "#RGB" is expanded to the full form.
func NormalizeHexColor(color string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(color))
	if !strings.HasPrefix(c, "#") {
		return "", fmt.Errorf("color %q must start with '#'", color)
	}

	digits := c[1:]
	if len(digits) == 3 {
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = digits[i]
			expanded[2*i+1] = digits[i]
		}
		digits = string(expanded)
	}
	if len(digits) != 6 {
		return "", fmt.Errorf("color %q must have 3 or 6 hex digits", color)
	}

	for _, r := range digits {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return "", fmt.Errorf("color %q contains non-hex characters", color)
		}
	}

	return "#" + digits, nil
}
