package classify

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/ihcc-events/internal/event"
)

// Pair is a conditional keyword: Lead only counts when at least one of With
// also appears. "family" alone says nothing, "family" near "fun" is a kids
// event.
type Pair struct {
	Lead string   `yaml:"lead"`
	With []string `yaml:"with"`
}

// Rule maps one category to the keywords that select it.
type Rule struct {
	Category event.Category `yaml:"category"`
	Keywords []string       `yaml:"keywords"`
	Pairs    []Pair         `yaml:"pairs,omitempty"`
}

// Ruleset is an ordered list of rules plus the category used when nothing
// matches. Rules are evaluated top to bottom and the first match wins.
type Ruleset struct {
	Rules   []Rule         `yaml:"rules"`
	Default event.Category `yaml:"default"`
}

// Classify resolves the category for an event. It concatenates title and
// description, lowercases, and returns the first rule whose keywords match.
// Classification is total: with no match the Default category is returned.
func (rs *Ruleset) Classify(title, description string) event.Category {
	text := strings.ToLower(title + " " + description)

	for _, rule := range rs.Rules {
		if rule.matches(text) {
			return rule.Category
		}
	}
	return rs.Default
}

func (r *Rule) matches(text string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	for _, pair := range r.Pairs {
		if !strings.Contains(text, pair.Lead) {
			continue
		}
		for _, with := range pair.With {
			if strings.Contains(text, with) {
				return true
			}
		}
	}
	return false
}

// Validate checks that every rule names a known category, has at least one
// keyword, and that the default category is valid.
func (rs *Ruleset) Validate() error {
	if !rs.Default.Valid() {
		return fmt.Errorf("invalid default category: %q", rs.Default)
	}
	for i, rule := range rs.Rules {
		if !rule.Category.Valid() {
			return fmt.Errorf("rule %d: invalid category: %q", i, rule.Category)
		}
		if len(rule.Keywords) == 0 && len(rule.Pairs) == 0 {
			return fmt.Errorf("rule %d (%s): no keywords", i, rule.Category)
		}
	}
	return nil
}

// LoadRuleset reads a ruleset from a YAML file. Missing default falls back
// to Social, matching DefaultRuleset.
func LoadRuleset(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ruleset: %w", err)
	}

	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parsing ruleset: %w", err)
	}

	if rs.Default == "" {
		rs.Default = event.CategorySocial
	}
	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ruleset %s: %w", path, err)
	}

	return &rs, nil
}
