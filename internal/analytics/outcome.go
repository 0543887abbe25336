// Package analytics turns a learner's study history into scored,
// explained insights: per-subject weakness, dropout risk, study persona
// and a recommended daily time range.
//
// Every function here is pure and safe for concurrent use.
package analytics

import (
	"math"
	"strconv"
)

// Confidence is a coarse trust tier attached to every insight.
type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// Outcome is an insight value together with the reasoning behind it.
type Outcome[T any] struct {
	Value      T          `json:"value"`
	Rationale  string     `json:"rationale"`
	Confidence Confidence `json:"confidence"`
}

// slope returns the least-squares slope of ys against their indices.
// Fewer than two points yield 0.
func slope(ys []float64) float64 {
	n := len(ys)
	if n < 2 {
		return 0
	}
	meanX := float64(n-1) / 2
	var meanY float64
	for _, y := range ys {
		meanY += y
	}
	meanY /= float64(n)

	var num, den float64
	for i, y := range ys {
		dx := float64(i) - meanX
		num += dx * (y - meanY)
		den += dx * dx
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// round2 rounds the exact binary value of x to two decimals, ties to
// even. Scaling by 100 first can manufacture a tie that is not there.
func round2(x float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return v
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
