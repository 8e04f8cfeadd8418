// SPDX-License-Identifier: MIT
// Package: rcgraph/scenario
//
// scenario.go - TOML schema, decoding and static validation.

package scenario

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Op names a step operation.
type Op string

const (
	OpNode             Op = "node"
	OpClone            Op = "clone"
	OpDrop             Op = "drop"
	OpAdd              Op = "add"
	OpAttach           Op = "attach"
	OpSet              Op = "set"
	OpExpectCount      Op = "expect_count"
	OpExpectValue      Op = "expect_value"
	OpExpectDescendant Op = "expect_descendant"
	OpExpectDepth      Op = "expect_depth"
	OpExpectLive       Op = "expect_live"
	OpPrint            Op = "print"
	OpPrintCount       Op = "print_count"
	OpPrintChildren    Op = "print_children"
)

// Scenario is a decoded, validated script.
type Scenario struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Steps       []Step `toml:"step"`
}

// Step is one [[step]] table. Which fields matter depends on Op.
type Step struct {
	Op       Op       `toml:"op"`
	Name     string   `toml:"name"`
	Target   string   `toml:"target"`
	Child    string   `toml:"child"`
	Of       string   `toml:"of"`
	Value    *int64   `toml:"value"`
	Want     *bool    `toml:"want"`
	Children []string `toml:"children"`
	Label    string   `toml:"label"`
}

// fields lists what an op requires.
type fields struct {
	name, target, child, of, value bool
}

var required = map[Op]fields{
	OpNode:             {name: true, value: true},
	OpClone:            {name: true, target: true},
	OpDrop:             {target: true},
	OpAdd:              {target: true, child: true},
	OpAttach:           {target: true, child: true},
	OpSet:              {target: true, value: true},
	OpExpectCount:      {target: true, value: true},
	OpExpectValue:      {target: true, value: true},
	OpExpectDescendant: {target: true, of: true},
	OpExpectDepth:      {target: true, of: true, value: true},
	OpExpectLive:       {value: true},
	OpPrint:            {target: true},
	OpPrintCount:       {target: true},
	OpPrintChildren:    {target: true},
}

// Load decodes and validates the scenario file at path. Without a name key
// the scenario is named after the file.
func Load(path string) (*Scenario, error) {
	var s Scenario
	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}

	base := filepath.Base(path)
	return finish(&s, meta, strings.TrimSuffix(base, filepath.Ext(base)))
}

// Parse decodes and validates a scenario held in memory. fallback names it
// when the document has no name key.
func Parse(data []byte, fallback string) (*Scenario, error) {
	var s Scenario
	meta, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	return finish(&s, meta, fallback)
}

func finish(s *Scenario, meta toml.MetaData, fallback string) (*Scenario, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, undecoded[0].String())
	}
	if meta.IsDefined("name") {
		s.Name = strings.TrimSpace(s.Name)
	}
	if s.Name == "" {
		s.Name = fallback
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks every step statically: known op and required fields.
// Name resolution happens at run time.
func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %q: %w", s.Name, ErrNoSteps)
	}
	for i := range s.Steps {
		if err := s.Steps[i].validate(); err != nil {
			return fmt.Errorf("scenario %q: step %d: %w", s.Name, i+1, err)
		}
	}

	return nil
}

func (st *Step) validate() error {
	req, ok := required[st.Op]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownOp, st.Op)
	}

	missing := func(field string) error {
		return fmt.Errorf("%s: %w %q", st.Op, ErrMissingField, field)
	}
	switch {
	case req.name && st.Name == "":
		return missing("name")
	case req.target && st.Target == "":
		return missing("target")
	case req.child && st.Child == "":
		return missing("child")
	case req.of && st.Of == "":
		return missing("of")
	case req.value && st.Value == nil:
		return missing("value")
	}

	return nil
}

// want reports the step's want flag, defaulting to true.
func (st *Step) want() bool {
	return st.Want == nil || *st.Want
}
