// Package compliance computes statutory filing deadlines and late-filing
// additional fees for annual returns (AOC-4, MGT-7).
//
// Dates are calendar dates: every input is truncated to its year, month and
// day and reinterpreted at UTC midnight, so the wall-clock zone of the caller
// never shifts a deadline.
package compliance

import (
	"fmt"
	"time"
)

// RiskLevel grades a filing delay.
type RiskLevel string

const (
	RiskSafe     RiskLevel = "SAFE"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
)

// FeeBand multiplies the normal fee for delays up to UpToDays inclusive.
// UpToDays zero marks the unbounded last band.
type FeeBand struct {
	UpToDays int `yaml:"up_to_days"`
	Factor   int `yaml:"factor"`
}

// Schedule holds the offsets and fee table the calculator applies.
type Schedule struct {
	AGMOffsetDays     int       `yaml:"agm_offset_days"`
	AOC4OffsetDays    int       `yaml:"aoc4_offset_days"`
	MGT7OffsetDays    int       `yaml:"mgt7_offset_days"`
	NormalFee         int       `yaml:"normal_fee"`
	FeeBands          []FeeBand `yaml:"fee_bands"`
	HighRiskAfterDays int       `yaml:"high_risk_after_days"`
}

// DefaultSchedule returns the Companies (Registration Offices and Fees)
// Rules, 2014 schedule: AGM within 183 days of year end, AOC-4 30 days and
// MGT-7 60 days after the AGM.
func DefaultSchedule() Schedule {
	return Schedule{
		AGMOffsetDays:  183,
		AOC4OffsetDays: 30,
		MGT7OffsetDays: 60,
		NormalFee:      300,
		FeeBands: []FeeBand{
			{UpToDays: 30, Factor: 2},
			{UpToDays: 60, Factor: 4},
			{UpToDays: 90, Factor: 6},
			{UpToDays: 180, Factor: 10},
			{UpToDays: 0, Factor: 12},
		},
		HighRiskAfterDays: 60,
	}
}

// Validate checks that the fee bands ascend and end with an unbounded band.
func (s Schedule) Validate() error {
	if s.AGMOffsetDays < 0 || s.AOC4OffsetDays < 0 || s.MGT7OffsetDays < 0 {
		return fmt.Errorf("offsets must not be negative")
	}
	if s.NormalFee <= 0 {
		return fmt.Errorf("normal fee must be positive, got %d", s.NormalFee)
	}
	if len(s.FeeBands) == 0 {
		return fmt.Errorf("at least one fee band is required")
	}
	prev := 0
	for i, b := range s.FeeBands {
		last := i == len(s.FeeBands)-1
		if b.Factor <= 0 {
			return fmt.Errorf("fee band %d: factor must be positive", i)
		}
		if last {
			if b.UpToDays != 0 {
				return fmt.Errorf("last fee band must be unbounded (up_to_days 0)")
			}
			break
		}
		if b.UpToDays <= prev {
			return fmt.Errorf("fee band %d: up_to_days %d must exceed %d", i, b.UpToDays, prev)
		}
		prev = b.UpToDays
	}
	return nil
}

// DueDates are the statutory deadlines derived from one financial year end.
type DueDates struct {
	AGMDeadline time.Time
	AOC4Due     time.Time
	MGT7Due     time.Time
}

// PenaltyAssessment is the additional fee owed for filing after the due date.
type PenaltyAssessment struct {
	DaysDelayed   int
	AdditionalFee int
	RiskLevel     RiskLevel
}

// Calculator applies a Schedule. It is immutable and safe for concurrent use.
type Calculator struct {
	schedule Schedule
}

// NewCalculator copies s so later changes by the caller have no effect.
func NewCalculator(s Schedule) *Calculator {
	s.FeeBands = append([]FeeBand(nil), s.FeeBands...)
	return &Calculator{schedule: s}
}

// Schedule returns a copy of the active schedule.
func (c *Calculator) Schedule() Schedule {
	s := c.schedule
	s.FeeBands = append([]FeeBand(nil), s.FeeBands...)
	return s
}

// DueDates derives the AGM, AOC-4 and MGT-7 deadlines for fyEnd.
func (c *Calculator) DueDates(fyEnd time.Time) DueDates {
	agm := Date(fyEnd).AddDate(0, 0, c.schedule.AGMOffsetDays)
	return DueDates{
		AGMDeadline: agm,
		AOC4Due:     agm.AddDate(0, 0, c.schedule.AOC4OffsetDays),
		MGT7Due:     agm.AddDate(0, 0, c.schedule.MGT7OffsetDays),
	}
}

// Penalty assesses a filing made on filed against due.
func (c *Calculator) Penalty(due, filed time.Time) PenaltyAssessment {
	delay := DaysBetween(due, filed)
	if delay <= 0 {
		return PenaltyAssessment{RiskLevel: RiskSafe}
	}

	risk := RiskModerate
	if delay > c.schedule.HighRiskAfterDays {
		risk = RiskHigh
	}
	return PenaltyAssessment{
		DaysDelayed:   delay,
		AdditionalFee: c.schedule.NormalFee * c.factor(delay),
		RiskLevel:     risk,
	}
}

func (c *Calculator) factor(delay int) int {
	for _, b := range c.schedule.FeeBands {
		if b.UpToDays == 0 || delay <= b.UpToDays {
			return b.Factor
		}
	}
	// Unreachable with a validated schedule.
	return c.schedule.FeeBands[len(c.schedule.FeeBands)-1].Factor
}

// Date truncates t to its calendar date at UTC midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from a to b, negative when b
// is earlier.
// Both ends sit on UTC midnight, so Unix seconds divide exactly and stay in
// range where time.Duration would saturate.
func DaysBetween(a, b time.Time) int {
	return int((Date(b).Unix() - Date(a).Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60
