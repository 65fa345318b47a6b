package governance

// DisqualificationStatus grades the risk of Sec 164(2)(a) disqualification.
type DisqualificationStatus string

const (
	DisqualificationCritical DisqualificationStatus = "CRITICAL"
	DisqualificationHigh     DisqualificationStatus = "HIGH"
	DisqualificationSafe     DisqualificationStatus = "SAFE"
)

// DisqualificationYears is the statutory run of consecutive non-filing
// years after which a director is disqualified.
const DisqualificationYears = 3

const (
	criticalMessage = "IMMEDIATE DISQUALIFICATION RISK (Sec 164(2)). Director office will be vacated."
	highMessage     = "Warning: 1 more year of non-filing will trigger disqualification."
	safeMessage     = "Compliance is on track."
)

// DisqualificationRisk is the assessed tier for a count of non-filing years.
type DisqualificationRisk struct {
	Status    DisqualificationStatus
	RiskScore int
	Message   string
}

// PredictDisqualification applies the fixed Sec 164(2)(a) tiers: three or
// more consecutive non-filing years is CRITICAL, two is HIGH, anything else
// is SAFE.
func PredictDisqualification(nonFilingYears int) DisqualificationRisk {
	switch {
	case nonFilingYears >= DisqualificationYears:
		return DisqualificationRisk{Status: DisqualificationCritical, RiskScore: 100, Message: criticalMessage}
	case nonFilingYears == DisqualificationYears-1:
		return DisqualificationRisk{Status: DisqualificationHigh, RiskScore: 75, Message: highMessage}
	default:
		return DisqualificationRisk{Status: DisqualificationSafe, RiskScore: 0, Message: safeMessage}
	}
}
