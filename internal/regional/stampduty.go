// Package regional computes state stamp duty on company instruments.
package regional

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	dErrors "pratyaksh/pkg/domain-errors"
)

// Instrument is a stampable document type.
type Instrument string

const (
	InstrumentShareCertificate Instrument = "SHARE_CERTIFICATE"
	InstrumentMOA              Instrument = "MOA"
)

// Bounds on instrument values. Checked on the exponent and digit count before
// any comparison or arithmetic, so oversized inputs are rejected cheaply.
const (
	MaxFractionDigits = 10
	maxExponent       = 15
	maxDigits         = 30
)

// MaxValue is the largest instrument value priced.
var MaxValue = decimal.New(1, 15)

// CheckValue rejects negative values and values outside the priced range.
func CheckValue(v decimal.Decimal) error {
	if v.IsNegative() {
		return dErrors.New(dErrors.CodeValidation, "value must be non-negative")
	}
	if v.IsZero() {
		return nil
	}
	if err := checkMagnitude(v); err != nil {
		return dErrors.New(dErrors.CodeValidation, "value "+err.Error())
	}
	if v.Cmp(MaxValue) > 0 {
		return dErrors.New(dErrors.CodeValidation, "value must not exceed "+MaxValue.String())
	}
	return nil
}

func checkMagnitude(v decimal.Decimal) error {
	exp := v.Exponent()
	switch {
	case exp < -MaxFractionDigits:
		return fmt.Errorf("must have at most %d decimal places", MaxFractionDigits)
	case exp > maxExponent, v.NumDigits() > maxDigits:
		return fmt.Errorf("is out of range")
	}
	return nil
}

// Rule prices one instrument in one state:
// duty = max(Minimum, Flat + Rate * max(0, value - Threshold)).
type Rule struct {
	Flat      decimal.Decimal `yaml:"flat"`
	Rate      decimal.Decimal `yaml:"rate"`
	Threshold decimal.Decimal `yaml:"threshold"`
	Minimum   decimal.Decimal `yaml:"minimum"`
}

// Duty applies the rule to value and rounds to paise.
func (r Rule) Duty(value decimal.Decimal) decimal.Decimal {
	excess := decimal.Max(decimal.Zero, value.Sub(r.Threshold))
	duty := r.Flat.Add(r.Rate.Mul(excess))
	return decimal.Max(r.Minimum, duty).Round(2)
}

func (r Rule) validate() error {
	for name, v := range map[string]decimal.Decimal{
		"flat": r.Flat, "rate": r.Rate, "threshold": r.Threshold, "minimum": r.Minimum,
	} {
		if v.IsNegative() {
			return fmt.Errorf("%s must be non-negative", name)
		}
		if !v.IsZero() {
			if err := checkMagnitude(v); err != nil {
				return fmt.Errorf("%s %w", name, err)
			}
		}
	}
	return nil
}

// StateTariff is the statute and per-instrument rules of one state.
type StateTariff struct {
	ActReference string              `yaml:"act_reference"`
	Instruments  map[Instrument]Rule `yaml:"instruments"`
}

// Tariff maps an upper-case state name to its tariff.
type Tariff map[string]StateTariff

// DefaultTariff covers share certificates and memoranda of association in
// Maharashtra and Karnataka.
func DefaultTariff() Tariff {
	return Tariff{
		"MAHARASHTRA": {
			ActReference: "Maharashtra Stamp Act, 1958",
			Instruments: map[Instrument]Rule{
				InstrumentShareCertificate: {Rate: decimal.RequireFromString("0.001")},
				InstrumentMOA: {
					Flat:      decimal.NewFromInt(1000),
					Rate:      decimal.RequireFromString("0.001"),
					Threshold: decimal.NewFromInt(1_000_000),
				},
			},
		},
		"KARNATAKA": {
			ActReference: "Karnataka Stamp Act, 1957",
			Instruments: map[Instrument]Rule{
				InstrumentShareCertificate: {
					Rate:    decimal.RequireFromString("0.001"),
					Minimum: decimal.NewFromInt(50),
				},
				InstrumentMOA: {Flat: decimal.NewFromInt(2000)},
			},
		},
	}
}

// Validate checks that every state cites an act and every rule is
// non-negative.
func (t Tariff) Validate() error {
	if len(t) == 0 {
		return dErrors.New(dErrors.CodeValidation, "stamp duty tariff must cover at least one state")
	}
	for state, st := range t {
		if strings.TrimSpace(st.ActReference) == "" {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("tariff for %s has no act_reference", state))
		}
		for inst, rule := range st.Instruments {
			if err := rule.validate(); err != nil {
				return dErrors.Wrap(err, dErrors.CodeValidation, fmt.Sprintf("tariff %s/%s: %s", state, inst, err))
			}
		}
	}
	return nil
}

// Quote is the payable duty for one instrument.
type Quote struct {
	State        string
	Instrument   Instrument
	Value        decimal.Decimal
	Duty         decimal.Decimal
	ActReference string
}

// Coverage is one state/instrument pair the engine can price.
type Coverage struct {
	State        string
	Instrument   Instrument
	ActReference string
}

// Engine prices instruments against a fixed tariff.
type Engine struct {
	tariff Tariff
}

// NewEngine copies tariff, upper-casing state names.
func NewEngine(tariff Tariff) *Engine {
	owned := make(Tariff, len(tariff))
	for state, st := range tariff {
		rules := make(map[Instrument]Rule, len(st.Instruments))
		for inst, rule := range st.Instruments {
			rules[inst] = rule
		}
		owned[strings.ToUpper(strings.TrimSpace(state))] = StateTariff{ActReference: st.ActReference, Instruments: rules}
	}
	return &Engine{tariff: owned}
}

// Quote prices instrument in state for value. The state is matched without
// regard to case, the instrument exactly. Pairs outside the tariff are
// CodeNotCovered.
func (e *Engine) Quote(state string, instrument Instrument, value decimal.Decimal) (Quote, error) {
	if err := CheckValue(value); err != nil {
		return Quote{}, err
	}
	state = strings.ToUpper(strings.TrimSpace(state))
	st, ok := e.tariff[state]
	if !ok {
		return Quote{}, dErrors.New(dErrors.CodeNotCovered, fmt.Sprintf("state %s is not covered", state))
	}
	rule, ok := st.Instruments[instrument]
	if !ok {
		return Quote{}, dErrors.New(dErrors.CodeNotCovered, fmt.Sprintf("instrument %s is not covered for %s", instrument, state))
	}
	return Quote{
		State:        state,
		Instrument:   instrument,
		Value:        value,
		Duty:         rule.Duty(value),
		ActReference: st.ActReference,
	}, nil
}

// Coverage lists every priced pair, ordered by state then instrument.
func (e *Engine) Coverage() []Coverage {
	out := make([]Coverage, 0, len(e.tariff)*2)
	for state, st := range e.tariff {
		for inst := range st.Instruments {
			out = append(out, Coverage{State: state, Instrument: inst, ActReference: st.ActReference})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].State != out[j].State {
			return out[i].State < out[j].State
		}
		return out[i].Instrument < out[j].Instrument
	})
	return out
}
