package analyzer

import (
	"sort"
	"time"

	"notables/pkg/models"
)

// Config controls cluster summarization.
type Config struct {
	LookbackDays int
	MinCluster   int
}

// Cluster is one group of identical non-escalated notables, keyed by
// the repetitive dimensions that make a suppression rule.
type Cluster struct {
	Src        string `json:"src"`
	Dest       string `json:"dest"`
	User       string `json:"user"`
	Signature  string `json:"signature"`
	Severity   string `json:"severity"`
	AlertCount int    `json:"alert_count"`
}

type groupKey struct {
	src       string
	dest      string
	user      string
	signature string
	severity  string
}

// FilterFocus keeps rows inside the lookback window (lower bound
// inclusive, no upper bound) that were closed without escalation.
func FilterFocus(rows []models.Notable, lookbackDays int, now time.Time) []models.Notable {
	cutoff := now.AddDate(0, 0, -lookbackDays)
	focus := make([]models.Notable, 0, len(rows))
	for _, r := range rows {
		if r.Time.Before(cutoff) {
			continue
		}
		if r.StatusLabel != models.StatusClosedWithoutEscalation {
			continue
		}
		focus = append(focus, r)
	}
	return focus
}

// Clusters groups rows by the five suppression dimensions, counts each
// group, drops groups below minCluster, and sorts by count descending.
// Equal counts order by the grouping fields, so output is deterministic.
func Clusters(rows []models.Notable, minCluster int) []Cluster {
	counts := make(map[groupKey]int, len(rows))
	for _, r := range rows {
		counts[groupKey{
			src:       r.Src,
			dest:      r.Dest,
			user:      r.User,
			signature: r.Signature,
			severity:  r.Severity,
		}]++
	}

	out := make([]Cluster, 0, len(counts))
	for k, n := range counts {
		if n < minCluster {
			continue
		}
		out = append(out, Cluster{
			Src:        k.src,
			Dest:       k.dest,
			User:       k.user,
			Signature:  k.signature,
			Severity:   k.severity,
			AlertCount: n,
		})
	}

	// Map iteration order is randomized, so ties need a full secondary
	// key to keep repeated runs over the same file byte-identical.
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.AlertCount != b.AlertCount {
			return a.AlertCount > b.AlertCount
		}
		if a.Src != b.Src {
			return a.Src < b.Src
		}
		if a.Dest != b.Dest {
			return a.Dest < b.Dest
		}
		if a.User != b.User {
			return a.User < b.User
		}
		if a.Signature != b.Signature {
			return a.Signature < b.Signature
		}
		return a.Severity < b.Severity
	})
	return out
}

// Summarize runs the full pipeline and also reports how many rows
// survived the focus filter, so callers can tell "no data in window"
// apart from "no cluster met the threshold".
func Summarize(rows []models.Notable, cfg Config, now time.Time) (clusters []Cluster, focused int) {
	focus := FilterFocus(rows, cfg.LookbackDays, now)
	if len(focus) == 0 {
		return nil, 0
	}
	return Clusters(focus, cfg.MinCluster), len(focus)
}
