// Package history defines the learner's study-session log and the small
// helpers the analytics read it through.
package history

import (
	"sort"
	"time"
)

// StudyHistory is an ordered log of sessions, oldest first.
type StudyHistory []SessionRecord

// SortedByDate returns a copy of h stably sorted by date.
func (h StudyHistory) SortedByDate() StudyHistory {
	out := make(StudyHistory, len(h))
	copy(out, h)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// Last returns the trailing n records (all of them if fewer exist).
func (h StudyHistory) Last(n int) StudyHistory {
	if n >= len(h) {
		return h
	}
	return h[len(h)-n:]
}

// Completed returns only the completed sessions, in order.
func (h StudyHistory) Completed() StudyHistory {
	var out StudyHistory
	for _, r := range h {
		if r.Completed {
			out = append(out, r)
		}
	}
	return out
}

// ActiveDays returns the number of distinct non-empty dates in h.
func (h StudyHistory) ActiveDays() int {
	seen := make(map[string]struct{})
	for _, r := range h {
		if r.Date != "" {
			seen[r.Date] = struct{}{}
		}
	}
	return len(seen)
}

const dateLayout = "2006-01-02"

// Streak counts consecutive calendar days with at least one session,
// ending at the latest recorded date. Unparseable dates are ignored.
func Streak(h StudyHistory) int {
	days := make(map[time.Time]struct{})
	var latest time.Time
	for _, r := range h {
		d, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			continue
		}
		days[d] = struct{}{}
		if d.After(latest) {
			latest = d
		}
	}
	if len(days) == 0 {
		return 0
	}

	streak := 0
	for d := latest; ; d = d.AddDate(0, 0, -1) {
		if _, ok := days[d]; !ok {
			break
		}
		streak++
	}
	return streak
}
