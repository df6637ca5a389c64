// Package rules classifies counterparty names with an ordered list of
// regex rules. The first rule whose pattern matches a prefix of the
// counterparty wins; list order is the only precedence.
package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// Sentinel values assigned when no rule matches. Unmatched rows are a
// normal outcome, not an error.
const (
	UnknownName     = "unknown name"
	UnknownCategory = "unknown category"
)

// Spec is one rule record as stored in the rules JSON file.
type Spec struct {
	Name     string `json:"name"`
	Regex    string `json:"regex"`
	Category string `json:"category"`
}

type rule struct {
	re       *regexp.Regexp
	name     string
	category string
}

// Set is an immutable, ordered rule list.
type Set struct {
	rules []rule
}

// ConfigError reports a rules file that cannot be used: missing or
// unreadable file, malformed JSON, a record lacking a required field,
// or a pattern that does not compile.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rules file %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// New compiles specs into a Set, preserving order. Patterns are
// anchored to the start of the input by wrapping them in ^(?:...), so
// alternations stay prefix matches too.
func New(specs []Spec) (*Set, error) {
	compiled := make([]rule, 0, len(specs))
	for i, spec := range specs {
		re, err := regexp.Compile("^(?:" + spec.Regex + ")")
		if err != nil {
			return nil, fmt.Errorf("rule %d: compiling pattern %q: %w", i, spec.Regex, err)
		}
		compiled = append(compiled, rule{re: re, name: spec.Name, category: spec.Category})
	}
	return &Set{rules: compiled}, nil
}

// Load reads a rules JSON file and returns a compiled Set. The file
// holds an array of records with required string fields "name",
// "regex" and "category"; file order is priority order.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	var records []struct {
		Name     *string `json:"name"`
		Regex    *string `json:"regex"`
		Category *string `json:"category"`
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("parsing JSON: %w", err)}
	}

	specs := make([]Spec, 0, len(records))
	for i, rec := range records {
		switch {
		case rec.Name == nil:
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("record %d: missing required field %q", i, "name")}
		case rec.Regex == nil:
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("record %d: missing required field %q", i, "regex")}
		case rec.Category == nil:
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("record %d: missing required field %q", i, "category")}
		}
		specs = append(specs, Spec{Name: *rec.Name, Regex: *rec.Regex, Category: *rec.Category})
	}

	set, err := New(specs)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return set, nil
}

// Save writes specs as a rules JSON file.
func Save(path string, specs []Spec) error {
	data, err := json.MarshalIndent(specs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}
	return nil
}

// Classify returns the name and category of the first matching rule,
// or the unknown sentinels. One traversal covers both values.
func (s *Set) Classify(counterparty string) (name, category string) {
	for _, r := range s.rules {
		if r.re.MatchString(counterparty) {
			return r.name, r.category
		}
	}
	return UnknownName, UnknownCategory
}

// CategoryFor returns the category for a counterparty.
func (s *Set) CategoryFor(counterparty string) string {
	_, category := s.Classify(counterparty)
	return category
}

// NameFor returns the display name for a counterparty.
func (s *Set) NameFor(counterparty string) string {
	name, _ := s.Classify(counterparty)
	return name
}

// Len returns the number of rules.
func (s *Set) Len() int { return len(s.rules) }
