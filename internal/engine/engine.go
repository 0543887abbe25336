// Package engine runs the full recommendation pipeline for one request:
// the four history analytics feed the plan generator and the mentor
// message, and the results are bundled into a single response.
package engine

import (
	"context"

	"github.com/abhisek/studyhub/internal/analytics"
	"github.com/abhisek/studyhub/internal/history"
	"github.com/abhisek/studyhub/internal/logger"
	"github.com/abhisek/studyhub/internal/mentor"
	"github.com/abhisek/studyhub/internal/planner"
)

// Request is a validated plan request.
type Request struct {
	Subjects         planner.Subjects     `json:"subjects"`
	DailyTimeMinutes int                  `json:"daily_time_minutes"`
	LastDayProgress  map[string]bool      `json:"last_day_progress,omitempty"`
	Streak           int                  `json:"streak"`
	History          history.StudyHistory `json:"history,omitempty"`
}

// Response is everything the learner sees for the day.
type Response struct {
	StudyPlan                 []planner.PlanBlock                `json:"study_plan"`
	MentorMessage             string                             `json:"mentor_message"`
	WeaknessScores            map[string]analytics.WeaknessScore `json:"weakness_scores"`
	DropoutRisk               analytics.RiskLevel                `json:"dropout_risk"`
	DropoutRationale          string                             `json:"dropout_rationale"`
	DropoutConfidence         analytics.Confidence               `json:"dropout_confidence"`
	StudyProfile              analytics.Persona                  `json:"study_profile"`
	StudyProfileRationale     string                             `json:"study_profile_rationale"`
	StudyProfileConfidence    analytics.Confidence               `json:"study_profile_confidence"`
	RecommendedTimeRange      analytics.TimeRange                `json:"recommended_time_range"`
	RecommendedTimeRationale  string                             `json:"recommended_time_rationale"`
	RecommendedTimeConfidence analytics.Confidence               `json:"recommended_time_confidence"`
}

// Engine produces recommendations. It holds no per-request state and is
// safe for concurrent use.
type Engine struct {
	shadow ShadowLogger
	log    *logger.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithShadowLogger records every analytics output through l.
func WithShadowLogger(l ShadowLogger) Option {
	return func(e *Engine) { e.shadow = l }
}

// WithLogger sets the logger used for shadow-log warnings.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an Engine. Without options it records nothing and logs
// nowhere.
func New(opts ...Option) *Engine {
	e := &Engine{shadow: NopShadowLogger{}, log: logger.Nop()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Recommend computes the day's plan, message and insights. It never
// fails; shadow-log errors are logged and dropped.
func (e *Engine) Recommend(ctx context.Context, req Request) Response {
	weakness := analytics.WeaknessScores(req.History)
	risk := analytics.DropoutRisk(req.History, req.Streak)
	profile := analytics.StudyProfile(req.History)
	timeRange := analytics.RecommendTimeRange(req.History)

	e.record(ctx, ModelWeakness, weakness)
	e.record(ctx, ModelDropoutRisk, risk)
	e.record(ctx, ModelStudyProfile, profile)
	e.record(ctx, ModelTimeRange, timeRange)

	plan := planner.Generate(req.Subjects, req.DailyTimeMinutes, req.LastDayProgress, profile.Value)
	msg := mentor.Message(mentor.Input{
		Subjects:  req.Subjects,
		TotalTime: req.DailyTimeMinutes,
		Progress:  req.LastDayProgress,
		Streak:    req.Streak,
		Persona:   profile.Value,
		Risk:      risk.Value,
	})

	return Response{
		StudyPlan:                 plan,
		MentorMessage:             msg,
		WeaknessScores:            weakness,
		DropoutRisk:               risk.Value,
		DropoutRationale:          risk.Rationale,
		DropoutConfidence:         risk.Confidence,
		StudyProfile:              profile.Value,
		StudyProfileRationale:     profile.Rationale,
		StudyProfileConfidence:    profile.Confidence,
		RecommendedTimeRange:      timeRange.Value,
		RecommendedTimeRationale:  timeRange.Rationale,
		RecommendedTimeConfidence: timeRange.Confidence,
	}
}

func (e *Engine) record(ctx context.Context, model string, prediction any) {
	if err := e.shadow.RecordPrediction(ctx, model, prediction); err != nil {
		e.log.Warn("shadow log write failed", "model", model, "error", err)
	}
}
