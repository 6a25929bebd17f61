// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines expansion rules: which attribute carries relative item
// references and how they are found inside its value.

package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Mode says how an attribute's value carries relative references.
type Mode int

const (
	// ModeAddress treats the value as a `|`-separated list of addresses.
	ModeAddress Mode = iota
	// ModePrefix expands references that follow a marker, e.g. `sh..child()`.
	ModePrefix
	// ModeBracket expands references enclosed in a delimiter pair, e.g. `'.onoff'`.
	ModeBracket
)

func (m Mode) String() string {
	switch m {
	case ModeAddress:
		return "address"
	case ModePrefix:
		return "prefix"
	case ModeBracket:
		return "bracket"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a configured mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "address", "":
		return ModeAddress, nil
	case "prefix":
		return ModePrefix, nil
	case "bracket":
		return ModeBracket, nil
	default:
		return 0, fmt.Errorf("unknown expansion mode %q: must be 'address', 'prefix' or 'bracket'", s)
	}
}

// ExpansionRule binds an attribute name to the way its relative references
// are expanded.
type ExpansionRule struct {
	Attribute string
	Mode      Mode
	// Prefix and Stop are used by ModePrefix.
	Prefix string
	Stop   rune
	// Delimiter is used by ModeBracket.
	Delimiter rune
}

// Validate checks that the rule carries the fields its mode needs.
func (r *ExpansionRule) Validate() error {
	if r.Attribute == "" {
		return errors.New("expansion rule needs an attribute name")
	}
	switch r.Mode {
	case ModeAddress:
	case ModePrefix:
		if r.Prefix == "" {
			return fmt.Errorf("expansion rule for %q: prefix mode needs a prefix", r.Attribute)
		}
		if r.Stop == 0 {
			return fmt.Errorf("expansion rule for %q: prefix mode needs a stop character", r.Attribute)
		}
	case ModeBracket:
		if r.Delimiter == 0 {
			return fmt.Errorf("expansion rule for %q: bracket mode needs a delimiter", r.Attribute)
		}
		if r.Delimiter == utf8.RuneError || !utf8.ValidRune(r.Delimiter) {
			return fmt.Errorf("expansion rule for %q: delimiter %q is not a valid character", r.Attribute, r.Delimiter)
		}
	default:
		return fmt.Errorf("expansion rule for %q: %s is not supported", r.Attribute, r.Mode)
	}
	return nil
}

// SingleRune parses a one-character rule field.
func SingleRune(field, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s must be exactly one character, got %q", field, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// NewRule builds and validates a rule from its textual form, as found in
// configuration files.
func NewRule(attribute, mode, prefix, stop, delimiter string) (*ExpansionRule, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return nil, fmt.Errorf("expansion rule for %q: %w", attribute, err)
	}
	rule := &ExpansionRule{Attribute: attribute, Mode: m, Prefix: prefix}
	if stop != "" {
		if rule.Stop, err = SingleRune("stop", stop); err != nil {
			return nil, fmt.Errorf("expansion rule for %q: %w", attribute, err)
		}
	}
	if delimiter != "" {
		if rule.Delimiter, err = SingleRune("delimiter", delimiter); err != nil {
			return nil, fmt.Errorf("expansion rule for %q: %w", attribute, err)
		}
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	return rule, nil
}

// DefaultRules are applied when a configuration declares no rule of its own
// for an attribute.
func DefaultRules() []*ExpansionRule {
	return []*ExpansionRule{
		{Attribute: "eval", Mode: ModePrefix, Prefix: "sh.", Stop: '('},
		{Attribute: "eval_trigger", Mode: ModeAddress},
		{Attribute: "on_change", Mode: ModePrefix, Prefix: "sh.", Stop: '('},
		{Attribute: "on_update", Mode: ModePrefix, Prefix: "sh.", Stop: '('},
	}
}

// EffectiveRules returns the default rules overridden, per attribute, by the
// configured ones. Order: defaults first, then configured rules for new
// attributes in declaration order.
func EffectiveRules(configured []*ExpansionRule) []*ExpansionRule {
	byAttr := make(map[string]*ExpansionRule, len(configured))
	for _, r := range configured {
		byAttr[r.Attribute] = r
	}

	var out []*ExpansionRule
	seen := make(map[string]struct{})
	for _, r := range DefaultRules() {
		if override, ok := byAttr[r.Attribute]; ok {
			r = override
		}
		out = append(out, r)
		seen[r.Attribute] = struct{}{}
	}
	for _, r := range configured {
		if _, ok := seen[r.Attribute]; ok {
			continue
		}
		out = append(out, r)
		seen[r.Attribute] = struct{}{}
	}
	return out
}
