// Package clientrisk scores how far a client can be trusted with credit
// terms.
package clientrisk

import (
	"fmt"

	dErrors "pratyaksh/pkg/domain-errors"
)

// Status is the trust band of a score.
type Status string

const (
	StatusHighRisk     Status = "HIGH RISK"
	StatusModerateRisk Status = "MODERATE RISK"
	StatusTrusted      Status = "TRUSTED"
)

const (
	AdvisoryAdvance  = "Collect 100% advance"
	AdvisoryStandard = "Standard Terms"
)

const (
	minScore = 0
	maxScore = 100
)

// Weights are the deductions per event and the band thresholds. A score
// strictly below HighRiskBelow is HIGH RISK, strictly below
// ModerateRiskBelow is MODERATE RISK.
type Weights struct {
	Base              int `yaml:"base"`
	LatePayment       int `yaml:"late_payment"`
	Deviation         int `yaml:"deviation"`
	Litigation        int `yaml:"litigation"`
	HighRiskBelow     int `yaml:"high_risk_below"`
	ModerateRiskBelow int `yaml:"moderate_risk_below"`
}

func DefaultWeights() Weights {
	return Weights{
		Base:              100,
		LatePayment:       5,
		Deviation:         10,
		Litigation:        15,
		HighRiskBelow:     50,
		ModerateRiskBelow: 75,
	}
}

// Validate rejects negative deductions and inverted thresholds.
func (w Weights) Validate() error {
	if w.Base < minScore || w.Base > maxScore {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("client risk base must be within [%d, %d]", minScore, maxScore))
	}
	if w.LatePayment < 0 || w.Deviation < 0 || w.Litigation < 0 {
		return dErrors.New(dErrors.CodeValidation, "client risk deductions must be non-negative")
	}
	if w.HighRiskBelow > w.ModerateRiskBelow {
		return dErrors.New(dErrors.CodeValidation, "high_risk_below must not exceed moderate_risk_below")
	}
	return nil
}

// Report is the scored trust position of a client.
type Report struct {
	Score    int
	Status   Status
	Advisory string
}

type Scorer struct {
	weights Weights
}

func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score deducts weighted counts from the base and clamps to [0, 100]. Counts
// are expected to be non-negative; negative counts deduct nothing.
func (s *Scorer) Score(latePayments, deviations, litigations int) Report {
	w := s.weights
	score := w.Base
	for _, d := range [...]struct{ weight, count int }{
		{w.LatePayment, latePayments},
		{w.Deviation, deviations},
		{w.Litigation, litigations},
	} {
		score = deduct(score, d.weight, d.count)
	}
	score = max(minScore, min(maxScore, score))

	r := Report{Score: score, Advisory: AdvisoryStandard}
	switch {
	case score < w.HighRiskBelow:
		r.Status = StatusHighRisk
		r.Advisory = AdvisoryAdvance
	case score < w.ModerateRiskBelow:
		r.Status = StatusModerateRisk
	default:
		r.Status = StatusTrusted
	}
	return r
}

// deduct subtracts weight*count from score, saturating at minScore so large
// counts cannot overflow.
func deduct(score, weight, count int) int {
	if weight <= 0 || count <= 0 || score <= minScore {
		return score
	}
	if count > (score-minScore)/weight {
		return minScore
	}
	return score - weight*count
}
