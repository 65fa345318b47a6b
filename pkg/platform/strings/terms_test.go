package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerms(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "nil", input: nil, want: []string{}},
		{name: "lower-cases and trims", input: []string{"  Director ", "RELATIVE"}, want: []string{"director", "relative"}},
		{name: "drops blanks", input: []string{"", "   ", "loan"}, want: []string{"loan"}},
		{name: "case-insensitive repeats keep first position", input: []string{"Subsidiary", "relative", "SUBSIDIARY "}, want: []string{"subsidiary", "relative"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Terms(tt.input))
		})
	}
}

func TestTerm(t *testing.T) {
	assert.Equal(t, "loan", Term("  LOAN\t"))
	assert.Empty(t, Term("   "))
}
