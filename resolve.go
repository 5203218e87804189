package turbine

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule maps a model-name prefix to a provider. Rules are matched in order
// against the lowercased model name; the first match wins.
type Rule struct {
	Prefix   string   `yaml:"prefix"`
	Provider Provider `yaml:"provider"`
}

// defaultRules is the built-in inference table. The prefixes are chosen to
// be mutually exclusive across providers; precedence is data rather than a
// hardcoded chain of checks so deployments can re-pin colliding names.
var defaultRules = []Rule{
	{Prefix: "gpt", Provider: ProviderOpenAI},
	{Prefix: "o1", Provider: ProviderOpenAI},
	{Prefix: "claude", Provider: ProviderAnthropic},
	{Prefix: "gemini", Provider: ProviderGemini},
	{Prefix: "llama", Provider: ProviderGroq},
	{Prefix: "mixtral", Provider: ProviderGroq},
}

// DefaultRules returns a copy of the built-in inference table.
func DefaultRules() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	return rules
}

// LoadRules reads an inference table from a YAML file. The file is a list
// of {prefix, provider} entries; providers are validated against the known
// set (aliases accepted).
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file %q: %w", path, err)
	}

	var raw []struct {
		Prefix   string `yaml:"prefix"`
		Provider string `yaml:"provider"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse rules file %q: %w", path, err)
	}

	rules := make([]Rule, 0, len(raw))
	for i, entry := range raw {
		if entry.Prefix == "" {
			return nil, fmt.Errorf("rules file %q: entry %d has an empty prefix", path, i)
		}
		provider, err := ParseProvider(entry.Provider)
		if err != nil {
			return nil, fmt.Errorf("rules file %q: entry %d: %w", path, i, err)
		}
		rules = append(rules, Rule{Prefix: strings.ToLower(entry.Prefix), Provider: provider})
	}
	return rules, nil
}

// ResolveModel parses a model string into a provider and bare model name.
//
// Two forms are recognized. An explicit "provider/model" prefix is matched
// case-insensitively against the provider names and aliases, with the
// remainder returned verbatim. A bare name is inferred from the built-in
// rule table. Anything else is an UnknownProviderError; the resolver never
// guesses.
func ResolveModel(s string) (Provider, string, error) {
	return ResolveModelWith(defaultRules, s)
}

// ResolveModelWith is ResolveModel with an explicit inference table for
// bare model names.
func ResolveModelWith(rules []Rule, s string) (Provider, string, error) {
	if prefix, name, ok := strings.Cut(s, "/"); ok {
		provider, err := ParseProvider(prefix)
		if err != nil {
			return "", "", &UnknownProviderError{Input: s}
		}
		return provider, name, nil
	}

	lower := strings.ToLower(s)
	for _, rule := range rules {
		if strings.HasPrefix(lower, rule.Prefix) {
			return rule.Provider, s, nil
		}
	}
	return "", "", &UnknownProviderError{Input: s}
}
