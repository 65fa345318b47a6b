// Package rulebook loads the tunable rule tables: the late-filing fee
// schedule, client-risk weights, resolution keyword rules and the stamp-duty
// tariff. Disqualification tiers are statutory and not configurable.
package rulebook

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"pratyaksh/internal/clientrisk"
	"pratyaksh/internal/compliance"
	"pratyaksh/internal/governance"
	"pratyaksh/internal/regional"
)

// Rules is the full set of rule tables. Sections absent from a file keep
// their defaults. A listed state replaces that state's default tariff; a
// listed rule or fee band table replaces the default table.
type Rules struct {
	Compliance      compliance.Schedule      `yaml:"compliance"`
	ClientRisk      clientrisk.Weights       `yaml:"client_risk"`
	ResolutionRules []governance.KeywordRule `yaml:"resolution_rules"`
	StampDuty       regional.Tariff          `yaml:"stamp_duty"`
}

func Defaults() Rules {
	return Rules{
		Compliance:      compliance.DefaultSchedule(),
		ClientRisk:      clientrisk.DefaultWeights(),
		ResolutionRules: governance.DefaultResolutionRules(),
		StampDuty:       regional.DefaultTariff(),
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Rules, error) {
	if path == "" {
		return Defaults(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rulebook %s: %w", path, err)
	}
	rules, err := Parse(data)
	if err != nil {
		return Rules{}, fmt.Errorf("rulebook %s: %w", path, err)
	}
	return rules, nil
}

// Parse decodes data over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Rules, error) {
	rules := Defaults()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rules); err != nil && !errors.Is(err, io.EOF) {
		return Rules{}, fmt.Errorf("parse: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

func (r Rules) Validate() error {
	if err := r.Compliance.Validate(); err != nil {
		return fmt.Errorf("compliance: %w", err)
	}
	if err := r.ClientRisk.Validate(); err != nil {
		return fmt.Errorf("client_risk: %w", err)
	}
	if err := governance.ValidateRules(r.ResolutionRules); err != nil {
		return fmt.Errorf("resolution_rules: %w", err)
	}
	if err := r.StampDuty.Validate(); err != nil {
		return fmt.Errorf("stamp_duty: %w", err)
	}
	return nil
}
