// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
)

// choiceValue is a string flag restricted to a fixed set of values.
type choiceValue struct {
	value   string
	allowed []string
	typ     string
}

var _ pflag.Value = (*choiceValue)(nil)

func newChoice(def, typ string, allowed ...string) *choiceValue {
	return &choiceValue{value: def, allowed: allowed, typ: typ}
}

func (c *choiceValue) String() string { return c.value }

func (c *choiceValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !lo.Contains(c.allowed, s) {
		return fmt.Errorf("must be one of %s", strings.Join(c.allowed, "|"))
	}
	c.value = s
	return nil
}

func (c *choiceValue) Type() string { return c.typ }

// levelValue adapts slog.Level to pflag; it accepts debug, info, warn,
// error and offsets such as "info+2".
type levelValue struct{ level slog.Level }

var _ pflag.Value = (*levelValue)(nil)

func (l *levelValue) String() string { return strings.ToLower(l.level.String()) }

func (l *levelValue) Set(s string) error { return l.level.UnmarshalText([]byte(s)) }

func (l *levelValue) Type() string { return "level" }

// Ring and output names accepted on the command line.
const (
	ringInt   = "int"
	ringFloat = "float"
	ringMod   = "mod"
	ringBig   = "big"

	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)
