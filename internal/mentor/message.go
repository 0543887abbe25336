// Package mentor produces the learner-facing coaching output: the daily
// motivational message and the mentor dashboard summary.
package mentor

import (
	"fmt"

	"github.com/abhisek/studyhub/internal/analytics"
	"github.com/abhisek/studyhub/internal/planner"
)

// Fixed messages.
const (
	MessageHighRisk = "I've analyzed your recent pace and noticed some friction. Today, let's prioritize consistency over intensity. " +
		"Even a 10-minute session is a strategic win. I'm here to help you sustain your momentum, not drain it. 🛡️"
	MessageFinalSession = "One final session remains. You're 90% of the way to a perfect day. Let's close this loop with excellence. 💪"
	MessageDayOne       = "Day One of the new streak. The initial push is always the hardest part of the architecture. Let's lay the first stone together. 🌱"

	genericIntro     = "Stay focused! 🚀"
	trajectory       = " You're on a %d-day trajectory. This level of consistency is rare and powerful. Stay the course."
	momentumFallback = " Your plan is optimized for today's time window. Stay disciplined with your check-ins, and let's keep the momentum moving."
	allDone          = "Strategic objectives met. You've successfully completed %d sessions and secured your %d-day streak. " +
		"This is high-level discipline. Rest well, your brain needs the recovery phase. 🌌"
)

// LongStreak is the streak length that earns trajectory praise.
const LongStreak = 7

var intros = map[analytics.Persona]string{
	analytics.PersonaSprinter:  "Let's tap into that high-intensity focus. Your profile favors rapid-fire wins. ⚡",
	analytics.PersonaMarathon:  "Ready for a deep-work dive? Your stamina is your greatest asset today. 🐢",
	analytics.PersonaMorning:   "Morning momentum detected. Let's capitalize on your peak energy window. 🌅",
	analytics.PersonaNightOwl:  "Midnight genius active. The quiet hours are yours to command. 🦉",
	analytics.PersonaUniversal: "Great to see you. Let's apply standard discipline to today's goals. 🚀",
}

// Intro returns the persona-specific opening line.
func Intro(p analytics.Persona) string {
	if s, ok := intros[p]; ok {
		return s
	}
	return genericIntro
}

// Input is everything the message rules look at.
type Input struct {
	Subjects  planner.Subjects
	TotalTime int
	// Progress maps a subject to whether today's/last session was completed.
	Progress map[string]bool
	Streak   int
	Persona  analytics.Persona
	Risk     analytics.RiskLevel
}

// Message picks one motivational message. Rules are checked in priority
// order and the first match wins.
func Message(in Input) string {
	if in.Risk == analytics.RiskHigh {
		return MessageHighRisk
	}

	total := len(in.Progress)
	completed := 0
	for _, done := range in.Progress {
		if done {
			completed++
		}
	}

	if total > 0 && completed == total {
		return fmt.Sprintf(allDone, total, in.Streak)
	}

	persona := in.Persona
	if persona == "" {
		persona = analytics.PersonaUniversal
	}
	intro := Intro(persona)

	switch {
	case total > 1 && completed == total-1:
		return MessageFinalSession
	case in.Streak >= LongStreak:
		return intro + fmt.Sprintf(trajectory, in.Streak)
	case in.Streak == 0 && completed == 0:
		return MessageDayOne
	default:
		return intro + momentumFallback
	}
}
