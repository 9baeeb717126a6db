package errors

import (
	"fmt"
	"os"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Action formats a failed menu action, e.g. "Error cancelling appointment: appointment not found: 7"
func Action(action string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error %s: %v", action, err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
