package mentor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/studyhub/internal/analytics"
)

func TestMessage_HighRiskAlwaysWins(t *testing.T) {
	inputs := []Input{
		{Risk: analytics.RiskHigh},
		{Risk: analytics.RiskHigh, Streak: 30, Persona: analytics.PersonaNightOwl},
		{Risk: analytics.RiskHigh, Progress: map[string]bool{"Math": true, "Art": true}},
		{Risk: analytics.RiskHigh, Progress: map[string]bool{"Math": true, "Art": false}},
	}
	for _, in := range inputs {
		assert.Equal(t, MessageHighRisk, Message(in))
	}
}

func TestMessage_AllDone(t *testing.T) {
	got := Message(Input{
		Progress: map[string]bool{"Math": true, "Art": true, "Music": true},
		Streak:   4,
		Risk:     analytics.RiskMedium,
	})
	assert.Contains(t, got, "completed 3 sessions")
	assert.Contains(t, got, "4-day streak")
}

func TestMessage_OneFinalSession(t *testing.T) {
	got := Message(Input{
		Progress: map[string]bool{"Math": true, "Art": false},
		Streak:   10,
		Persona:  analytics.PersonaMarathon,
	})
	assert.Equal(t, MessageFinalSession, got)
}

func TestMessage_SingleIncompleteEntryIsNotFinalSession(t *testing.T) {
	got := Message(Input{Progress: map[string]bool{"Math": false}, Streak: 0})
	assert.Equal(t, MessageDayOne, got)
}

func TestMessage_LongStreak(t *testing.T) {
	got := Message(Input{Streak: 7, Persona: analytics.PersonaMorning})
	assert.True(t, strings.HasPrefix(got, Intro(analytics.PersonaMorning)))
	assert.Contains(t, got, "7-day trajectory")
}

func TestMessage_DayOne(t *testing.T) {
	got := Message(Input{
		Progress: map[string]bool{"Math": false, "Art": false, "Music": false},
		Persona:  analytics.PersonaSprinter,
		Risk:     analytics.RiskMedium,
	})
	assert.Equal(t, MessageDayOne, got)
}

func TestMessage_Fallback(t *testing.T) {
	got := Message(Input{
		Progress: map[string]bool{"Math": true, "Art": false, "Music": false},
		Streak:   3,
		Persona:  analytics.PersonaSprinter,
	})
	assert.Equal(t, Intro(analytics.PersonaSprinter)+momentumFallback, got)

	// Zero completions but a live streak is not Day One.
	got = Message(Input{Streak: 2})
	assert.Equal(t, Intro(analytics.PersonaUniversal)+momentumFallback, got)
}

func TestIntro_UnknownPersona(t *testing.T) {
	assert.Equal(t, genericIntro, Intro(analytics.Persona("Weekend Warrior")))
	for _, p := range analytics.AllPersonas() {
		assert.NotEqual(t, genericIntro, Intro(p), p)
	}
}
