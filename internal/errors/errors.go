// Package errors holds the CLI-facing error helpers. Only policy-level
// failures (capacity, authentication, unavailable capability) reach these;
// data-shape defects are absorbed at the normalization boundary and never
// surface.
package errors

import (
	"fmt"
	"os"

	"github.com/nousjournal/nous/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
