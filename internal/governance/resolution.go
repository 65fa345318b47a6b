package governance

import (
	"fmt"
	"strings"

	pstrings "pratyaksh/pkg/platform/strings"
)

// MaxResolutionScore caps the summed weight of fired rules.
const MaxResolutionScore = 100

// KeywordRule fires when the text contains Keyword and at least one of
// AnyOf. Matching is a case-insensitive substring test.
type KeywordRule struct {
	Code    string   `yaml:"code"`
	Message string   `yaml:"message"`
	Keyword string   `yaml:"keyword"`
	AnyOf   []string `yaml:"any_of"`
	Weight  int      `yaml:"weight"`
}

// DefaultResolutionRules screens for Sec 185 loans to directors and Sec 188
// related-party contracts.
func DefaultResolutionRules() []KeywordRule {
	return []KeywordRule{
		{
			Code:    "SEC_185_VIOLATION",
			Message: "POTENTIAL SEC 185 VIOLATION: Loan to Director detected.",
			Keyword: "loan",
			AnyOf:   []string{"director", "relative"},
			Weight:  50,
		},
		{
			Code:    "RELATED_PARTY",
			Message: "POTENTIAL SEC 188 RPT: Board approval required.",
			Keyword: "contract",
			AnyOf:   []string{"relative", "subsidiary"},
			Weight:  30,
		},
	}
}

// ValidateRules checks that every rule can fire and codes are unique.
func ValidateRules(rules []KeywordRule) error {
	seen := make(map[string]bool, len(rules))
	for i, r := range rules {
		switch {
		case strings.TrimSpace(r.Code) == "":
			return fmt.Errorf("rule %d: code is required", i)
		case seen[r.Code]:
			return fmt.Errorf("rule %d: duplicate code %s", i, r.Code)
		case pstrings.Term(r.Keyword) == "":
			return fmt.Errorf("rule %s: keyword is required", r.Code)
		case len(pstrings.Terms(r.AnyOf)) == 0:
			return fmt.Errorf("rule %s: any_of needs at least one term", r.Code)
		case r.Weight < 0:
			return fmt.Errorf("rule %s: weight must not be negative", r.Code)
		}
		seen[r.Code] = true
	}
	return nil
}

// Flag is one fired rule.
type Flag struct {
	Code    string
	Message string
}

// ResolutionRiskReport is the outcome of screening an agenda.
type ResolutionRiskReport struct {
	RiskScore int
	Flags     []Flag
}

// FlagCodes returns the codes of the fired rules in rule order.
func (r ResolutionRiskReport) FlagCodes() []string {
	codes := make([]string, 0, len(r.Flags))
	for _, f := range r.Flags {
		codes = append(codes, f.Code)
	}
	return codes
}

// ResolutionAnalyzer screens agenda text against an ordered rule table.
type ResolutionAnalyzer struct {
	rules []KeywordRule
}

// NewResolutionAnalyzer normalizes the rule terms once. Rules are applied in
// the given order.
func NewResolutionAnalyzer(rules []KeywordRule) *ResolutionAnalyzer {
	owned := make([]KeywordRule, len(rules))
	for i, r := range rules {
		r.Keyword = pstrings.Term(r.Keyword)
		r.AnyOf = pstrings.Terms(r.AnyOf)
		owned[i] = r
	}
	return &ResolutionAnalyzer{rules: owned}
}

// Analyze applies every rule independently, sums their weights and caps the
// total at MaxResolutionScore.
func (a *ResolutionAnalyzer) Analyze(text string) ResolutionRiskReport {
	lower := strings.ToLower(text)
	report := ResolutionRiskReport{Flags: []Flag{}}
	score := 0
	for _, r := range a.rules {
		if !r.matches(lower) {
			continue
		}
		report.Flags = append(report.Flags, Flag{Code: r.Code, Message: r.Message})
		score += r.Weight
	}
	report.RiskScore = min(score, MaxResolutionScore)
	return report
}

func (r KeywordRule) matches(lower string) bool {
	if !strings.Contains(lower, r.Keyword) {
		return false
	}
	for _, term := range r.AnyOf {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
