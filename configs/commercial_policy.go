package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ThresholdPair is a CAP-rate comparison threshold pair, in percent.
type ThresholdPair struct {
	Upper float64 `yaml:"upper"`
	Lower float64 `yaml:"lower"`
}

// CommercialPolicy is the optional YAML override for the built-in
// commercial constants. Only the fields present in the file are applied;
// it is loaded once at startup and never mutated afterwards.
type CommercialPolicy struct {
	// Commissions overrides the default plan commissions, keyed by plan
	// id ("A", "B", "C"), in percent.
	Commissions map[string]float64 `yaml:"commissions"`

	CapRate struct {
		Brokerage *ThresholdPair `yaml:"brokerage"`
		Quick     *ThresholdPair `yaml:"quick"`
	} `yaml:"cap_rate"`
}

// LoadCommercialPolicy reads the policy file. An empty path means no
// override file is configured and returns (nil, nil).
func LoadCommercialPolicy(path string) (*CommercialPolicy, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read commercial policy file %s: %w", path, err)
	}

	var policy CommercialPolicy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("failed to parse commercial policy file %s: %w", path, err)
	}
	return &policy, nil
}
