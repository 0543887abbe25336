package analytics

import "github.com/abhisek/studyhub/internal/history"

// Persona is a learner's study style.
type Persona string

const (
	PersonaUniversal Persona = "Universal Learner"
	PersonaSprinter  Persona = "Focus Sprinter"
	PersonaMarathon  Persona = "Marathon Learner"
	PersonaMorning   Persona = "Morning Starter"
	PersonaNightOwl  Persona = "Night Owl"
)

// AllPersonas returns every persona in display order.
func AllPersonas() []Persona {
	return []Persona{PersonaUniversal, PersonaSprinter, PersonaMarathon, PersonaMorning, PersonaNightOwl}
}

// ParsePersona maps a label onto a Persona. Unknown labels resolve to
// PersonaUniversal with ok=false.
func ParsePersona(s string) (Persona, bool) {
	for _, p := range AllPersonas() {
		if string(p) == s {
			return p, true
		}
	}
	return PersonaUniversal, false
}

const (
	profileMinHistory   = 2
	minTimedSessions    = 3
	timeOfDayShare      = 0.6
	sprintMaxMinutes    = 35
	marathonMinMinutes  = 50
	profileHighSessions = 5
)

// StudyProfile classifies the learner into a persona from when and for
// how long they complete sessions.
func StudyProfile(h history.StudyHistory) Outcome[Persona] {
	if len(h) < profileMinHistory {
		return Outcome[Persona]{
			Value:      PersonaUniversal,
			Rationale:  "Collecting data to reveal your unique study style.",
			Confidence: ConfidenceLow,
		}
	}

	done := h.Completed()
	if len(done) == 0 {
		return Outcome[Persona]{
			Value:      PersonaUniversal,
			Rationale:  "Complete a session to reveal your style.",
			Confidence: ConfidenceLow,
		}
	}

	var minutes []float64
	var hours []int
	for _, r := range done {
		minutes = append(minutes, float64(r.Minutes))
		if hr, ok := r.Hour(); ok {
			hours = append(hours, hr)
		}
	}
	avgSession := mean(minutes)

	persona := PersonaUniversal
	rationale := "You have a balanced and adaptable approach to studying."

	if len(hours) >= minTimedSessions {
		morning, night := 0, 0
		for _, hr := range hours {
			if hr >= 5 && hr <= 11 {
				morning++
			}
			if hr >= 20 || hr <= 4 {
				night++
			}
		}
		total := float64(len(hours))
		switch {
		case float64(morning)/total > timeOfDayShare:
			persona = PersonaMorning
			rationale = "Most of your progress happens in the AM, you're an early bird focus master."
		case float64(night)/total > timeOfDayShare:
			persona = PersonaNightOwl
			rationale = "You do your best work when the world sleeps. A true midnight genius."
		}
	}

	if persona == PersonaUniversal {
		switch {
		case avgSession < sprintMaxMinutes:
			persona = PersonaSprinter
			rationale = "You excel in high-intensity, short duration bursts."
		case avgSession > marathonMinMinutes:
			persona = PersonaMarathon
			rationale = "You have the stamina for deep, extended flow-state sessions."
		}
	}

	conf := ConfidenceMedium
	if len(done) >= profileHighSessions {
		conf = ConfidenceHigh
	}

	return Outcome[Persona]{Value: persona, Rationale: rationale, Confidence: conf}
}
