package analytics

import "github.com/abhisek/studyhub/internal/history"

// RiskLevel is the dropout-risk tier.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

const (
	riskWindow          = 5
	riskMinHistory      = 3
	riskHighConfidence  = 10
	lowCompletionRate   = 0.5
	sharpDeclineSlope   = -5
	lowCompletionRisk   = 0.4
	decliningTimeRisk   = 0.3
	brokenStreakRisk    = 0.3
	highRiskThreshold   = 0.6
	mediumRiskThreshold = 0.3
)

// DropoutRisk estimates how likely the learner is to disengage, based on
// the last few sessions and the current streak.
func DropoutRisk(h history.StudyHistory, streak int) Outcome[RiskLevel] {
	if len(h) < riskMinHistory {
		return Outcome[RiskLevel]{
			Value:      RiskLow,
			Rationale:  "Welcome! We're just getting to know your habits.",
			Confidence: ConfidenceLow,
		}
	}

	recent := h.Last(riskWindow)
	completed := 0
	times := make([]float64, 0, len(recent))
	for _, r := range recent {
		if r.Completed {
			completed++
		}
		times = append(times, float64(r.Minutes))
	}
	completionRate := float64(completed) / float64(len(recent))
	minutesSlope := slope(times)

	risk := 0.0
	rationale := "Your study rhythm is healthy and stable."
	if completionRate < lowCompletionRate {
		risk += lowCompletionRisk
		rationale = "Low recent completion rate detected."
	}
	if minutesSlope < sharpDeclineSlope {
		risk += decliningTimeRisk
		rationale += " Study duration is decreasing sharply."
	}
	if streak == 0 {
		risk += brokenStreakRisk
		rationale += " Streak broken, momentum needs a boost."
	}

	level := RiskLow
	switch {
	case risk > highRiskThreshold:
		level = RiskHigh
	case risk > mediumRiskThreshold:
		level = RiskMedium
	}

	conf := ConfidenceMedium
	if len(h) >= riskHighConfidence {
		conf = ConfidenceHigh
	}

	return Outcome[RiskLevel]{Value: level, Rationale: rationale, Confidence: conf}
}
