package planner

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/abhisek/studyhub/internal/history"
)

// Subject is a subject name paired with the learner's difficulty rating.
type Subject struct {
	Name       string
	Difficulty history.Difficulty
}

// Subjects is the caller's subject list. It is either unweighted (plain
// names, every subject rated average) or weighted (name->difficulty).
// Both forms keep the caller's ordering.
type Subjects struct {
	weighted bool
	entries  []Subject
}

// Unweighted builds a subject list where every subject is average.
func Unweighted(names ...string) Subjects {
	entries := make([]Subject, 0, len(names))
	for _, n := range names {
		entries = append(entries, Subject{Name: n, Difficulty: history.DifficultyAverage})
	}
	return Subjects{entries: dedupe(entries)}
}

// Weighted builds a subject list from explicit difficulty ratings.
func Weighted(entries ...Subject) Subjects {
	return Subjects{weighted: true, entries: dedupe(entries)}
}

// IsWeighted reports whether the list carries explicit difficulties.
func (s Subjects) IsWeighted() bool { return s.weighted }

// Entries returns the normalized name->difficulty list in caller order.
func (s Subjects) Entries() []Subject { return s.entries }

// Len returns the number of distinct subjects.
func (s Subjects) Len() int { return len(s.entries) }

// Names returns the subject names in caller order.
func (s Subjects) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// dedupe keeps the first position of a repeated name and its last rating.
func dedupe(entries []Subject) []Subject {
	index := make(map[string]int, len(entries))
	out := make([]Subject, 0, len(entries))
	for _, e := range entries {
		if i, ok := index[e.Name]; ok {
			out[i].Difficulty = e.Difficulty
			continue
		}
		index[e.Name] = len(out)
		out = append(out, e)
	}
	return out
}

// UnmarshalJSON accepts either ["Math", ...] or {"Math": "weak", ...}.
// Object key order is preserved.
func (s *Subjects) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = Subjects{}
		return nil
	}

	switch data[0] {
	case '[':
		var names []string
		if err := json.Unmarshal(data, &names); err != nil {
			return fmt.Errorf("decode subject list: %w", err)
		}
		*s = Unweighted(names...)
		return nil
	case '{':
		entries, err := decodeOrderedObject(data)
		if err != nil {
			return fmt.Errorf("decode subject map: %w", err)
		}
		*s = Weighted(entries...)
		return nil
	default:
		return fmt.Errorf("subjects must be a list or an object")
	}
}

// MarshalJSON writes the form the list was built from.
func (s Subjects) MarshalJSON() ([]byte, error) {
	if !s.weighted {
		return json.Marshal(s.Names())
	}
	var b bytes.Buffer
	b.WriteByte('{')
	for i, e := range s.entries {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(string(e.Difficulty))
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func decodeOrderedObject(data []byte) ([]Subject, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var entries []Subject
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key %v", tok)
		}
		var level string
		if err := dec.Decode(&level); err != nil {
			return nil, fmt.Errorf("difficulty for %q: %w", name, err)
		}
		diff, _ := history.ParseDifficulty(level)
		entries = append(entries, Subject{Name: name, Difficulty: diff})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}
