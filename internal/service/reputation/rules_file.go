package reputation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type rulesFile struct {
	Rules map[string]int `yaml:"rules"`
}

// LoadRulesFile reads rule seed values from a YAML file of the form:
//
//	rules:
//	  approval_reward: 5
//	  review_min_reputation: 20
func LoadRulesFile(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	if len(f.Rules) == 0 {
		return nil, nil
	}
	if err := validateRuleChanges(f.Rules); err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}
	return f.Rules, nil
}
