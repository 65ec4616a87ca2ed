package cli

import "github.com/fatih/color"

// statusLabel colors a status string for list and report output. Unknown
// statuses pass through uncolored so new states never break rendering.
func statusLabel(status string) string {
	switch status {
	case "available", "paid", "completed", "played":
		return color.New(color.FgHiGreen).Sprint(status)
	case "pending", "scheduled", "enrolled", "approved":
		return color.New(color.FgYellow).Sprint(status)
	case "occupied", "checked_in", "active":
		return color.New(color.FgHiBlue).Sprint(status)
	case "cancelled", "withdrawn", "rejected", "defaulted":
		return color.New(color.FgRed).Sprint(status)
	case "maintenance":
		return color.New(color.FgHiBlack).Sprint(status)
	default:
		return status
	}
}
