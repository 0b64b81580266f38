package models

import (
	"fmt"
	"time"
)

// Severity levels, weakest first.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Severities lists the valid levels in ascending order.
var Severities = []string{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// Status labels for closed notables.
const (
	StatusClosedWithoutEscalation = "closed without escalation"
	StatusClosedWithEscalation    = "closed with escalation"
)

// StatusLabels lists the valid outcome strings.
var StatusLabels = []string{StatusClosedWithoutEscalation, StatusClosedWithEscalation}

// Notable is one EDR passthrough notable event.
type Notable struct {
	Time        time.Time `json:"_time"`
	Src         string    `json:"src"`
	Dest        string    `json:"dest"`
	Signature   string    `json:"signature"`
	Category    string    `json:"category"`
	FileName    string    `json:"file_name"`
	Severity    string    `json:"severity"`
	User        string    `json:"user"`
	StatusLabel string    `json:"status_label"`
}

var csvColumns = []string{
	"_time", "src", "dest", "signature", "category",
	"file_name", "severity", "user", "status_label",
}

// CSVHeader returns the column names in write order.
func CSVHeader() []string {
	out := make([]string, len(csvColumns))
	copy(out, csvColumns)
	return out
}

// Record renders the notable as one CSV record in header order.
func (n Notable) Record() []string {
	return []string{
		n.Time.Format(time.RFC3339),
		n.Src,
		n.Dest,
		n.Signature,
		n.Category,
		n.FileName,
		n.Severity,
		n.User,
		n.StatusLabel,
	}
}

var eventTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseEventTime parses an ISO-8601 timestamp string, with or without
// a zone offset. Offset-less timestamps are taken as local time.
func ParseEventTime(s string) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// SeverityRank maps a severity level to its order, low=1 .. critical=4.
// Unknown levels rank 0.
func SeverityRank(level string) int {
	switch level {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// ValidSeverity reports whether level is one of the four known levels.
func ValidSeverity(level string) bool {
	return SeverityRank(level) > 0
}

// ValidStatus reports whether label is a known outcome string.
func ValidStatus(label string) bool {
	for _, s := range StatusLabels {
		if s == label {
			return true
		}
	}
	return false
}
