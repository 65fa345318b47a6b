package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDueDates(t *testing.T) {
	calc := NewCalculator(DefaultSchedule())

	got := calc.DueDates(date(2024, time.March, 31))

	assert.Equal(t, date(2024, time.September, 30), got.AGMDeadline)
	assert.Equal(t, date(2024, time.October, 30), got.AOC4Due)
	assert.Equal(t, date(2024, time.November, 29), got.MGT7Due)
}

func TestDueDatesProperties(t *testing.T) {
	calc := NewCalculator(DefaultSchedule())
	ist := time.FixedZone("IST", 5*3600+1800)

	start := date(2019, time.January, 1)
	for i := 0; i < 365*6; i += 7 {
		fyEnd := start.AddDate(0, 0, i)
		got := calc.DueDates(fyEnd)

		require.Equal(t, 30, DaysBetween(got.AOC4Due, got.MGT7Due), "fy end %s", fyEnd)
		require.Equal(t, 183, DaysBetween(fyEnd, got.AGMDeadline), "fy end %s", fyEnd)

		// Late evening in IST is still the same calendar date.
		local := time.Date(fyEnd.Year(), fyEnd.Month(), fyEnd.Day(), 23, 30, 0, 0, ist)
		require.Equal(t, got, calc.DueDates(local))
	}
}

func TestPenalty(t *testing.T) {
	calc := NewCalculator(DefaultSchedule())
	due := date(2024, time.October, 30)

	tests := []struct {
		name  string
		delay int
		want  PenaltyAssessment
	}{
		{name: "filed early", delay: -10, want: PenaltyAssessment{RiskLevel: RiskSafe}},
		{name: "filed on due date", delay: 0, want: PenaltyAssessment{RiskLevel: RiskSafe}},
		{name: "one day late", delay: 1, want: PenaltyAssessment{DaysDelayed: 1, AdditionalFee: 600, RiskLevel: RiskModerate}},
		{name: "30 days is the first band", delay: 30, want: PenaltyAssessment{DaysDelayed: 30, AdditionalFee: 600, RiskLevel: RiskModerate}},
		{name: "31 days moves to factor 4", delay: 31, want: PenaltyAssessment{DaysDelayed: 31, AdditionalFee: 1200, RiskLevel: RiskModerate}},
		{name: "60 days stays moderate", delay: 60, want: PenaltyAssessment{DaysDelayed: 60, AdditionalFee: 1200, RiskLevel: RiskModerate}},
		{name: "61 days is high", delay: 61, want: PenaltyAssessment{DaysDelayed: 61, AdditionalFee: 1800, RiskLevel: RiskHigh}},
		{name: "90 days", delay: 90, want: PenaltyAssessment{DaysDelayed: 90, AdditionalFee: 1800, RiskLevel: RiskHigh}},
		{name: "91 days moves to factor 10", delay: 91, want: PenaltyAssessment{DaysDelayed: 91, AdditionalFee: 3000, RiskLevel: RiskHigh}},
		{name: "180 days", delay: 180, want: PenaltyAssessment{DaysDelayed: 180, AdditionalFee: 3000, RiskLevel: RiskHigh}},
		{name: "181 days is unbounded band", delay: 181, want: PenaltyAssessment{DaysDelayed: 181, AdditionalFee: 3600, RiskLevel: RiskHigh}},
		{name: "years late", delay: 1000, want: PenaltyAssessment{DaysDelayed: 1000, AdditionalFee: 3600, RiskLevel: RiskHigh}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.Penalty(due, due.AddDate(0, 0, tt.delay)))
		})
	}
}

func TestPenaltyIgnoresTimeOfDay(t *testing.T) {
	calc := NewCalculator(DefaultSchedule())
	due := time.Date(2024, time.October, 30, 23, 59, 0, 0, time.UTC)
	filed := time.Date(2024, time.October, 31, 0, 1, 0, 0, time.UTC)

	got := calc.Penalty(due, filed)

	assert.Equal(t, 1, got.DaysDelayed)
}

func TestDaysBetweenAcrossCenturies(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"five centuries", date(1500, time.January, 1), date(2000, time.January, 1), 182621},
		{"reversed", date(2000, time.January, 1), date(1500, time.January, 1), -182621},
		{"three centuries over leap days", date(1724, time.March, 1), date(2024, time.March, 1), 109573},
		{"whole calendar range", date(1, time.January, 1), date(9999, time.December, 31), 3652058},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.a, tt.b))
		})
	}
}

func TestPenaltyCenturiesLate(t *testing.T) {
	got := NewCalculator(DefaultSchedule()).Penalty(date(1500, time.January, 1), date(2000, time.January, 1))

	assert.Equal(t, 182621, got.DaysDelayed)
	assert.EqualValues(t, 3600, got.AdditionalFee)
	assert.Equal(t, RiskHigh, got.RiskLevel)
}

func TestCustomSchedule(t *testing.T) {
	s := DefaultSchedule()
	s.NormalFee = 500
	s.FeeBands = []FeeBand{{UpToDays: 15, Factor: 1}, {Factor: 3}}
	require.NoError(t, s.Validate())

	calc := NewCalculator(s)
	s.NormalFee = 1 // caller mutation must not leak in

	due := date(2025, time.January, 1)
	assert.Equal(t, 500, calc.Penalty(due, due.AddDate(0, 0, 15)).AdditionalFee)
	assert.Equal(t, 1500, calc.Penalty(due, due.AddDate(0, 0, 16)).AdditionalFee)
}

func TestScheduleValidate(t *testing.T) {
	require.NoError(t, DefaultSchedule().Validate())

	tests := []struct {
		name   string
		mutate func(*Schedule)
	}{
		{name: "no bands", mutate: func(s *Schedule) { s.FeeBands = nil }},
		{name: "bounded last band", mutate: func(s *Schedule) { s.FeeBands = []FeeBand{{UpToDays: 30, Factor: 2}} }},
		{name: "descending bands", mutate: func(s *Schedule) {
			s.FeeBands = []FeeBand{{UpToDays: 60, Factor: 2}, {UpToDays: 30, Factor: 4}, {Factor: 6}}
		}},
		{name: "zero factor", mutate: func(s *Schedule) { s.FeeBands[1].Factor = 0 }},
		{name: "zero fee", mutate: func(s *Schedule) { s.NormalFee = 0 }},
		{name: "negative offset", mutate: func(s *Schedule) { s.AGMOffsetDays = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSchedule()
			tt.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}
