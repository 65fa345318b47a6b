package governance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "pratyaksh/pkg/domain-errors"
)

func TestParseDIN(t *testing.T) {
	valid := []string{"12345678", "00000000", "99999999"}
	for _, in := range valid {
		din, err := ParseDIN(in)
		require.NoError(t, err, in)
		assert.Equal(t, in, din.String())
	}

	invalid := []string{
		"",
		"1234567",   // seven digits
		"123456789", // nine digits
		"1234567A",
		" 12345678",
		"12345678\n",
		"١٢٣٤٥٦٧٨", // Arabic-Indic digits are not ASCII
		"1234-678",
	}
	for _, in := range invalid {
		_, err := ParseDIN(in)
		require.Error(t, err, "%q", in)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		de, ok := dErrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "Invalid DIN Format. Must be 8 digits.", de.Message)
	}
}

func TestParseDINStatus(t *testing.T) {
	for in, want := range map[string]DINStatus{
		"APPROVED":     DINApproved,
		"disqualified": DINDisqualified,
		" Deactivated": DINDeactivated,
	} {
		got, err := ParseDINStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseDINStatus("SUSPENDED")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestDINStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to DINStatus
		allowed  bool
	}{
		{DINApproved, DINDisqualified, true},
		{DINApproved, DINDeactivated, true},
		{DINDisqualified, DINApproved, true},
		{DINDisqualified, DINDeactivated, true},
		{DINApproved, DINApproved, false},
		{DINDeactivated, DINApproved, false},
		{DINDeactivated, DINDisqualified, false},
		{DINApproved, DINStatus("UNKNOWN"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}
