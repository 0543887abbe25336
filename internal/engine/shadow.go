package engine

import "context"

// Shadow-log model names.
const (
	ModelWeakness     = "weakness"
	ModelDropoutRisk  = "dropout_risk"
	ModelStudyProfile = "study_profile"
	ModelTimeRange    = "time_range"
)

// ShadowLogger keeps an audit trail of analytics predictions. Failures
// are reported to the caller but never affect the recommendation.
type ShadowLogger interface {
	RecordPrediction(ctx context.Context, model string, prediction any) error
}

// NopShadowLogger discards every prediction.
type NopShadowLogger struct{}

func (NopShadowLogger) RecordPrediction(context.Context, string, any) error { return nil }
