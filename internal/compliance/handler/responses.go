package handler

import (
	"time"

	"pratyaksh/internal/compliance"
	"pratyaksh/pkg/platform/httputil"
)

// DueDatesResponse lists the statutory deadlines for a financial year.
type DueDatesResponse struct {
	AGMDeadline string `json:"agm_deadline"`
	AOC4Due     string `json:"aoc_4_due"`
	MGT7Due     string `json:"mgt_7_due"`
}

// StatusResponse is the penalty position of one filing.
type StatusResponse struct {
	DaysDelayed   int    `json:"days_delayed"`
	AdditionalFee int    `json:"additional_fee"`
	RiskLevel     string `json:"risk_level"`
}

// PenaltyResponse is returned by GET /compliance/penalty.
type PenaltyResponse struct {
	DueDate string `json:"due_date"`
	FiledOn string `json:"filed_on"`
	StatusResponse
}

// AssessmentResponse is returned by GET /compliance/calculate.
type AssessmentResponse struct {
	FilingType    string           `json:"filing_type"`
	ActSection    string           `json:"act_section"`
	Deadlines     DueDatesResponse `json:"deadlines"`
	TargetDue     string           `json:"target_due"`
	AsOf          string           `json:"as_of"`
	CurrentStatus StatusResponse   `json:"current_status"`
}

func toDueDatesResponse(d compliance.DueDates) DueDatesResponse {
	return DueDatesResponse{
		AGMDeadline: httputil.FormatDate(d.AGMDeadline),
		AOC4Due:     httputil.FormatDate(d.AOC4Due),
		MGT7Due:     httputil.FormatDate(d.MGT7Due),
	}
}

func toStatus(p compliance.PenaltyAssessment) StatusResponse {
	return StatusResponse{
		DaysDelayed:   p.DaysDelayed,
		AdditionalFee: p.AdditionalFee,
		RiskLevel:     string(p.RiskLevel),
	}
}

func toAssessmentResponse(a compliance.Assessment, asOf time.Time) AssessmentResponse {
	return AssessmentResponse{
		FilingType:    string(a.FilingType),
		ActSection:    a.FilingType.Section(),
		Deadlines:     toDueDatesResponse(a.Deadlines),
		TargetDue:     httputil.FormatDate(a.TargetDue),
		AsOf:          httputil.FormatDate(compliance.Date(asOf)),
		CurrentStatus: toStatus(a.Status),
	}
}
