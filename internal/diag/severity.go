package diag

// Severity of a front-end diagnostic. Findings of the rules have their own
// two-level severity in package rules.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	// SevError stops analysis of the file.
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// AtLeast reports whether s is as severe as other or more.
func (s Severity) AtLeast(other Severity) bool { return s >= other }
