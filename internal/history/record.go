package history

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Difficulty is the learner's self-reported difficulty for a session.
type Difficulty string

const (
	DifficultyWeak    Difficulty = "weak"
	DifficultyAverage Difficulty = "average"
	DifficultyStrong  Difficulty = "strong"
)

// ParseDifficulty maps a raw label onto a Difficulty. Unknown or empty
// labels resolve to DifficultyAverage; ok reports whether the label was
// recognized.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyWeak:
		return DifficultyWeak, true
	case DifficultyAverage:
		return DifficultyAverage, true
	case DifficultyStrong:
		return DifficultyStrong, true
	default:
		return DifficultyAverage, false
	}
}

// Weight returns the difficulty weight used for weakness scoring
// (weak=3, average=2, strong=1).
func (d Difficulty) Weight() float64 {
	switch d {
	case DifficultyWeak:
		return 3
	case DifficultyStrong:
		return 1
	default:
		return 2
	}
}

// SessionRecord is one study session as reported by the learner.
type SessionRecord struct {
	Subject    string     `json:"subject"`
	Date       string     `json:"date"`                // YYYY-MM-DD
	Timestamp  string     `json:"timestamp,omitempty"` // ISO-8601 date-time
	Minutes    int        `json:"minutes"`
	Completed  bool       `json:"completed"`
	Difficulty Difficulty `json:"difficulty"`
}

// UnmarshalJSON decodes a record, applying defaults for missing fields
// and normalizing the difficulty label.
func (r *SessionRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		Subject    string          `json:"subject"`
		Date       string          `json:"date"`
		Timestamp  json.RawMessage `json:"timestamp"`
		Minutes    float64         `json:"minutes"`
		Completed  bool            `json:"completed"`
		Difficulty string          `json:"difficulty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	minutes := int(raw.Minutes)
	if minutes < 0 {
		minutes = 0
	}
	// A timestamp that is not a string is treated as absent.
	var ts string
	if len(raw.Timestamp) > 0 {
		_ = json.Unmarshal(raw.Timestamp, &ts)
	}
	diff, _ := ParseDifficulty(raw.Difficulty)
	*r = SessionRecord{
		Subject:    raw.Subject,
		Date:       raw.Date,
		Timestamp:  ts,
		Minutes:    minutes,
		Completed:  raw.Completed,
		Difficulty: diff,
	}
	return nil
}

// Hour extracts the hour of day from the record's timestamp. It reads the
// digits between the 'T' separator and the first ':' and reports false
// when the timestamp is absent or malformed.
func (r SessionRecord) Hour() (int, bool) {
	if r.Timestamp == "" {
		return 0, false
	}
	_, clock, found := strings.Cut(r.Timestamp, "T")
	if !found {
		return 0, false
	}
	hh, _, _ := strings.Cut(clock, ":")
	h, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return 0, false
	}
	return h, true
}
