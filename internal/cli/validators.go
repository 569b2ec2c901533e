package cli

import (
	"fmt"
	"strings"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string, allowed ...OutputFormat) error {
	if len(allowed) == 0 {
		allowed = []OutputFormat{FormatText, FormatJSON, FormatYAML}
	}
	names := make([]string, 0, len(allowed))
	for _, valid := range allowed {
		if OutputFormat(format) == valid {
			return nil
		}
		names = append(names, string(valid))
	}
	return fmt.Errorf("invalid output format: %s (must be: %s)", format, strings.Join(names, ", "))
}

// ParseAttributeArg splits a "key=value" argument. An argument without "="
// is a boolean attribute with an empty value.
func ParseAttributeArg(arg string) (key, value string) {
	key, value, _ = strings.Cut(arg, "=")
	return key, value
}
