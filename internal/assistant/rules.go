package assistant

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

var (
	ErrNoRules    = errors.New("assistant: rule table is empty")
	ErrNoFallback = errors.New("assistant: last rule must have no terms")
)

// Link points the visitor somewhere after a reply: an in-page anchor such as
// "#skills" or an external URL.
type Link struct {
	Text string `yaml:"text" json:"text"`
	URL  string `yaml:"url" json:"url"`
	// Ref names a configurable target; see WithTarget.
	Ref string `yaml:"ref,omitempty" json:"-"`
}

// External reports whether the link leaves the page. Anything starting with
// "http" or "/" opens in a new browsing context, everything else is treated as
// an anchor on the current page.
func (l Link) External() bool {
	return strings.HasPrefix(l.URL, "http") || strings.HasPrefix(l.URL, "/")
}

type Rule struct {
	ID    string   `yaml:"id"`
	Terms []string `yaml:"terms"`
	Text  string   `yaml:"text"`
	Link  *Link    `yaml:"link,omitempty"`
}

// Matches reports whether the already lowercased input contains any term.
func (r Rule) Matches(lowered string) bool {
	for _, term := range r.Terms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules parses and validates a YAML rule table.
func LoadRules(data []byte) ([]Rule, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if err := validate(f.Rules); err != nil {
		return nil, err
	}
	for i := range f.Rules {
		for j, term := range f.Rules[i].Terms {
			f.Rules[i].Terms[j] = strings.ToLower(term)
		}
	}
	return f.Rules, nil
}

// DefaultRules returns the embedded rule table.
func DefaultRules() []Rule {
	rules, err := LoadRules(defaultRules)
	if err != nil {
		panic(err)
	}
	return rules
}

func validate(rules []Rule) error {
	if len(rules) == 0 {
		return ErrNoRules
	}
	seen := make(map[string]bool, len(rules))
	for i, r := range rules {
		if r.ID == "" {
			return fmt.Errorf("assistant: rule %d has no id", i)
		}
		if seen[r.ID] {
			return fmt.Errorf("assistant: duplicate rule id %q", r.ID)
		}
		seen[r.ID] = true
		if strings.TrimSpace(r.Text) == "" {
			return fmt.Errorf("assistant: rule %q has no text", r.ID)
		}
		last := i == len(rules)-1
		if last && len(r.Terms) > 0 {
			return ErrNoFallback
		}
		if !last && len(r.Terms) == 0 {
			return fmt.Errorf("assistant: rule %q has no terms and would shadow every later rule", r.ID)
		}
		for _, term := range r.Terms {
			if term == "" {
				return fmt.Errorf("assistant: rule %q has an empty term", r.ID)
			}
		}
	}
	return nil
}
