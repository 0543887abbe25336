// Package planner splits a daily time budget into study blocks.
package planner

import (
	"math"

	"github.com/abhisek/studyhub/internal/analytics"
	"github.com/abhisek/studyhub/internal/history"
)

// PlanBlock is a single time-boxed study session in the daily plan.
type PlanBlock struct {
	Subject    string             `json:"subject"`
	Minutes    int                `json:"minutes"`
	SessionID  int                `json:"session_id"`
	Difficulty history.Difficulty `json:"difficulty"`
}

// MinBlockMinutes is the shortest session worth scheduling.
const MinBlockMinutes = 15

// Reinforcement is added to a subject's weight when it was skipped on
// the previous day.
const Reinforcement = 0.1

// Importance returns the share weight for a difficulty rating.
func Importance(d history.Difficulty) float64 {
	switch d {
	case history.DifficultyWeak:
		return 0.5
	case history.DifficultyStrong:
		return 0.2
	default:
		return 0.3
	}
}

// BlockSize returns the longest single session for a persona.
func BlockSize(p analytics.Persona) int {
	switch p {
	case analytics.PersonaSprinter:
		return 25
	case analytics.PersonaMarathon:
		return 60
	default:
		return 40
	}
}

// Generate allocates totalTime minutes across subjects in proportion to
// their importance and splits long allocations into persona-sized blocks.
// lastDay maps a subject to whether it was completed last time; only an
// explicit false counts as skipped. Output order follows subject order.
func Generate(subjects Subjects, totalTime int, lastDay map[string]bool, persona analytics.Persona) []PlanBlock {
	plan := []PlanBlock{}
	entries := subjects.Entries()
	if len(entries) == 0 {
		return plan
	}

	weights := make([]float64, len(entries))
	var totalWeight float64
	for i, e := range entries {
		w := Importance(e.Difficulty)
		if done, ok := lastDay[e.Name]; ok && !done {
			w += Reinforcement
		}
		weights[i] = w
		totalWeight += w
	}
	if totalWeight <= 0 {
		return plan
	}

	blockSize := BlockSize(persona)
	for i, e := range entries {
		minutes := int(math.Floor(weights[i] / totalWeight * float64(totalTime)))
		switch {
		case float64(minutes) > float64(blockSize)*1.5:
			plan = append(plan, split(e, minutes, blockSize)...)
		case minutes >= MinBlockMinutes:
			plan = append(plan, PlanBlock{Subject: e.Name, Minutes: minutes, SessionID: 1, Difficulty: e.Difficulty})
		}
	}
	return plan
}

// split cuts minutes into blockSize chunks. A trailing chunk shorter than
// MinBlockMinutes is folded into the one before it.
func split(e Subject, minutes, blockSize int) []PlanBlock {
	var blocks []PlanBlock
	for minutes > 0 {
		chunk := min(blockSize, minutes)
		if chunk < MinBlockMinutes && len(blocks) > 0 {
			blocks[len(blocks)-1].Minutes += chunk
			break
		}
		blocks = append(blocks, PlanBlock{
			Subject:    e.Name,
			Minutes:    chunk,
			SessionID:  len(blocks) + 1,
			Difficulty: e.Difficulty,
		})
		minutes -= chunk
	}
	return blocks
}

// TotalMinutes sums the minutes of every block in plan.
func TotalMinutes(plan []PlanBlock) int {
	total := 0
	for _, b := range plan {
		total += b.Minutes
	}
	return total
}
