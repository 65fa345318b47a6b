package handler

import (
	"strings"

	dErrors "pratyaksh/pkg/domain-errors"
)

// AnalyzeResolutionRequest is the body of POST /governance/analyze-resolution.
type AnalyzeResolutionRequest struct {
	AgendaText string `json:"agenda_text"`
}

type RegisterDirectorRequest struct {
	DIN      string `json:"din"`
	FullName string `json:"full_name"`
}

func (r *RegisterDirectorRequest) Validate() error {
	r.DIN = strings.TrimSpace(r.DIN)
	r.FullName = strings.TrimSpace(r.FullName)
	if r.DIN == "" {
		return dErrors.New(dErrors.CodeValidation, "din is required")
	}
	if r.FullName == "" {
		return dErrors.New(dErrors.CodeValidation, "full_name is required")
	}
	return nil
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func (r *ChangeStatusRequest) Validate() error {
	r.Status = strings.TrimSpace(r.Status)
	if r.Status == "" {
		return dErrors.New(dErrors.CodeValidation, "status is required")
	}
	return nil
}

type DisqualificationCheckRequest struct {
	NonFilingYears int `json:"non_filing_years"`
}

func (r *DisqualificationCheckRequest) Validate() error {
	if r.NonFilingYears < 0 {
		return dErrors.New(dErrors.CodeValidation, "non_filing_years must be non-negative")
	}
	return nil
}

type FileResolutionRequest struct {
	Title      string `json:"title"`
	AgendaText string `json:"agenda_text"`
}
