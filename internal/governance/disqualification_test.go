package governance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictDisqualification(t *testing.T) {
	tests := []struct {
		years  int
		status DisqualificationStatus
		score  int
	}{
		{years: -1, status: DisqualificationSafe, score: 0},
		{years: 0, status: DisqualificationSafe, score: 0},
		{years: 1, status: DisqualificationSafe, score: 0},
		{years: 2, status: DisqualificationHigh, score: 75},
		{years: 3, status: DisqualificationCritical, score: 100},
		{years: 7, status: DisqualificationCritical, score: 100},
	}
	for _, tt := range tests {
		got := PredictDisqualification(tt.years)
		assert.Equal(t, tt.status, got.Status, "years %d", tt.years)
		assert.Equal(t, tt.score, got.RiskScore, "years %d", tt.years)
		assert.NotEmpty(t, got.Message)
	}
}

func TestPredictDisqualificationMessages(t *testing.T) {
	assert.Contains(t, PredictDisqualification(3).Message, "Sec 164(2)")
	assert.Contains(t, PredictDisqualification(2).Message, "1 more year")
	assert.Equal(t, "Compliance is on track.", PredictDisqualification(0).Message)
}
