// SPDX-License-Identifier: MIT
// Package: rcgraph/scenario
//
// runner.go - executes scenarios against a fresh tracker and name table.

package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/rcgraph/node"
	"github.com/katalvlaran/rcgraph/rc"
)

type handle = *rc.Handle[node.Node[int64]]

// Report summarizes a finished run.
type Report struct {
	Scenario string
	Steps    int             // steps executed
	Stats    rc.TrackerStats // tracker snapshot after the final drops
}

// Runner executes scenarios. A Runner may run many scenarios one after
// another; each run gets its own tracker and bindings.
type Runner struct {
	log zerolog.Logger
	out io.Writer
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger logs steps at debug level and tracker events at trace level to l.
func WithLogger(l zerolog.Logger) RunnerOption {
	return func(r *Runner) { r.log = l }
}

// WithOutput sends print* output to w. Panics on nil.
func WithOutput(w io.Writer) RunnerOption {
	if w == nil {
		panic("scenario: WithOutput(nil)")
	}
	return func(r *Runner) { r.out = w }
}

// NewRunner returns a Runner that discards output and logs nothing unless
// configured otherwise.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{log: zerolog.Nop(), out: io.Discard}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// run is the state of one Run call.
type run struct {
	*Runner
	tracker  *rc.Tracker
	bindings map[string]handle
}

// Run executes s step by step. It stops at the first failing step, but
// every binding is dropped before it returns either way.
//
// Errors:
//   - ctx.Err() when canceled between steps.
//   - step errors wrapping ErrUnknownName, ErrDuplicateName,
//     ErrExpectation, node.ErrCycle and friends.
//   - ErrLeak when allocations survive the final drops.
func (r *Runner) Run(ctx context.Context, s *Scenario) (*Report, error) {
	st := &run{
		Runner:   r,
		tracker:  rc.NewTracker(rc.WithLogger(r.log)),
		bindings: make(map[string]handle),
	}
	rep := &Report{Scenario: s.Name}
	log := r.log.With().Str("scenario", s.Name).Logger()
	log.Info().Int("steps", len(s.Steps)).Msg("scenario start")

	err := st.steps(ctx, s, rep, log)
	st.dropAll()
	rep.Stats = st.tracker.Stats()
	if err == nil && rep.Stats.Live != 0 {
		err = fmt.Errorf("scenario %q: %w: %d live", s.Name, ErrLeak, rep.Stats.Live)
	}
	if err != nil {
		log.Error().Err(err).Int("live", rep.Stats.Live).Msg("scenario failed")
		return rep, err
	}
	log.Info().
		Int("allocated", rep.Stats.Allocated).
		Int("freed", rep.Stats.Freed).
		Msg("scenario done")

	return rep, nil
}

func (st *run) steps(ctx context.Context, s *Scenario, rep *Report, log zerolog.Logger) error {
	for i := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		step := &s.Steps[i]
		log.Debug().Int("step", i+1).Str("op", string(step.Op)).Str("target", step.Target).Msg("scenario step")
		if err := st.exec(step); err != nil {
			return fmt.Errorf("scenario %q: step %d (%s): %w", s.Name, i+1, step.Op, err)
		}
		rep.Steps++
	}

	return nil
}

// dropAll releases the remaining bindings in name order.
func (st *run) dropAll() {
	names := make([]string, 0, len(st.bindings))
	for name := range st.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		st.bindings[name].Drop()
		delete(st.bindings, name)
	}
}

func (st *run) lookup(name string) (handle, error) {
	h, ok := st.bindings[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownName, name)
	}

	return h, nil
}

func (st *run) bind(name string, h handle) error {
	if _, ok := st.bindings[name]; ok {
		h.Drop()
		return fmt.Errorf("%w %q", ErrDuplicateName, name)
	}
	st.bindings[name] = h

	return nil
}

func expectf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrExpectation, fmt.Sprintf(format, args...))
}

func (st *run) exec(step *Step) error {
	switch step.Op {
	case OpNode:
		return st.execNode(step)
	case OpExpectLive:
		if got := st.tracker.Live(); int64(got) != *step.Value {
			return expectf("live = %d, want %d", got, *step.Value)
		}
		return nil
	}

	target, err := st.lookup(step.Target)
	if err != nil {
		return err
	}

	switch step.Op {
	case OpClone:
		return st.bind(step.Name, target.Clone())

	case OpDrop:
		target.Drop()
		delete(st.bindings, step.Target)

	case OpAdd, OpAttach:
		return st.execAdd(step, target)

	case OpSet:
		target.Get().SetValue(*step.Value)

	case OpExpectCount:
		if got := target.StrongCount(); int64(got) != *step.Value {
			return expectf("count(%s) = %d, want %d", step.Target, got, *step.Value)
		}

	case OpExpectValue:
		if got := target.Get().Value(); got != *step.Value {
			return expectf("value(%s) = %d, want %d", step.Target, got, *step.Value)
		}

	case OpExpectDescendant:
		of, err := st.lookup(step.Of)
		if err != nil {
			return err
		}
		if got := of.Get().HasDescendant(target); got != step.want() {
			return expectf("%s has descendant %s = %t, want %t", step.Of, step.Target, got, step.want())
		}

	case OpExpectDepth:
		of, err := st.lookup(step.Of)
		if err != nil {
			return err
		}
		res, err := node.BreadthFirst(of)
		if err != nil {
			return err
		}
		got, ok := res.Depth[target.Key()]
		if !ok {
			return expectf("%s does not reach %s", step.Of, step.Target)
		}
		if int64(got) != *step.Value {
			return expectf("depth(%s -> %s) = %d, want %d", step.Of, step.Target, got, *step.Value)
		}

	case OpPrint:
		fmt.Fprintf(st.out, "%s %s\n", labelOr(step, step.Target), target.Get())

	case OpPrintCount:
		fmt.Fprintf(st.out, "%s %d\n", labelOr(step, "strong count for "+step.Target), target.StrongCount())

	case OpPrintChildren:
		n := target.Get()
		for _, c := range n.Children() {
			fmt.Fprintf(st.out, "Node %d: strong count for child %d: %d\n", n.Value(), c.Get().Value(), c.StrongCount())
		}

	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, step.Op)
	}

	return nil
}

func (st *run) execNode(step *Step) error {
	kids := make([]handle, 0, len(step.Children))
	for _, name := range step.Children {
		h, err := st.lookup(name)
		if err != nil {
			rc.DropAll(kids)
			return err
		}
		kids = append(kids, h.Clone())
	}

	n := node.NewWithChildren(*step.Value, kids)
	return st.bind(step.Name, node.Share(n, rc.WithTracker(st.tracker)))
}

// execAdd hands a clone of child to target; the clone comes back on error.
func (st *run) execAdd(step *Step, target handle) error {
	child, err := st.lookup(step.Child)
	if err != nil {
		return err
	}

	c := child.Clone()
	if step.Op == OpAdd {
		err = target.Get().TryAddChild(c)
	} else {
		err = node.Attach(target, c)
	}
	if err != nil {
		c.Drop()
	}

	if step.Op == OpAttach && !step.want() {
		if err == nil {
			return expectf("attach %s -> %s accepted, want refusal", step.Target, step.Child)
		}
		if errors.Is(err, node.ErrCycle) {
			return nil
		}
	}

	return err
}

func labelOr(step *Step, fallback string) string {
	if step.Label != "" {
		return step.Label
	}

	return fallback
}
