package compliance

import (
	"fmt"
	"strings"
	"time"
)

// FilingType names an annual filing form.
type FilingType string

const (
	FilingAOC4 FilingType = "AOC-4"
	FilingMGT7 FilingType = "MGT-7"
)

// ParseFilingType accepts "AOC-4" and "MGT-7" in any case, with or without
// the hyphen.
func ParseFilingType(s string) (FilingType, error) {
	switch strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "") {
	case "AOC4":
		return FilingAOC4, nil
	case "MGT7":
		return FilingMGT7, nil
	default:
		return "", fmt.Errorf("unsupported filing type %q: expected AOC-4 or MGT-7", s)
	}
}

// Section returns the Companies Act, 2013 section that mandates the form.
func (f FilingType) Section() string {
	if f == FilingMGT7 {
		return "Sec 92"
	}
	return "Sec 137"
}

// Assessment is the deadline set for a year plus the penalty position of one
// form as of a given date.
type Assessment struct {
	FilingType FilingType
	Deadlines  DueDates
	TargetDue  time.Time
	Status     PenaltyAssessment
}

// Assess computes the deadlines for fyEnd and the penalty position of ft if
// it were filed on asOf.
func (c *Calculator) Assess(fyEnd time.Time, ft FilingType, asOf time.Time) Assessment {
	dates := c.DueDates(fyEnd)
	target := dates.MGT7Due
	if ft == FilingAOC4 {
		target = dates.AOC4Due
	}
	return Assessment{
		FilingType: ft,
		Deadlines:  dates,
		TargetDue:  target,
		Status:     c.Penalty(target, asOf),
	}
}
