// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/rcgraph/rc"
)

// TestTrackerOption verifies that rcOptions only carries a tracker when one
// was configured.
func TestTrackerOption(t *testing.T) {
	t.Parallel()

	// 1. Default configuration: untracked allocations
	if got := newBuilderConfig().rcOptions(); got != nil {
		t.Errorf("default rcOptions: expected nil, got %d options", len(got))
	}

	// 2. WithTracker installs the tracker on every allocation
	tr := rc.NewTracker()
	cfg := newBuilderConfig(WithTracker(tr))
	if cfg.tracker != tr {
		t.Fatalf("WithTracker: tracker not stored")
	}
	h := rc.New(1, cfg.rcOptions()...)
	if tr.Live() != 1 {
		t.Errorf("WithTracker: expected 1 live allocation, got %d", tr.Live())
	}
	h.Drop()
	if tr.Live() != 0 {
		t.Errorf("WithTracker: expected 0 live allocations, got %d", tr.Live())
	}
}

// TestRNGOptions verifies RNG configuration, reproducibility with WithSeed
// and last-option-wins ordering.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default rng is nil
	if cfg := newBuilderConfig(); cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}

	// 2. WithRand stores the given RNG
	exp := rand.New(rand.NewSource(123))
	if cfg := newBuilderConfig(WithRand(exp)); cfg.rng != exp {
		t.Errorf("WithRand: expected %p, got %p", exp, cfg.rng)
	}

	// 3. WithSeed is reproducible
	a := newBuilderConfig(WithSeed(42)).rng
	b := newBuilderConfig(WithSeed(42)).rng
	a1, a2 := a.Int63(), a.Int63()
	b1, b2 := b.Int63(), b.Int63()
	if a1 != b1 || a2 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, a2, b1, b2)
	}

	// 4. Later options override earlier ones
	if cfg := newBuilderConfig(WithSeed(1), WithRand(exp)); cfg.rng != exp {
		t.Errorf("override order: expected WithRand to win")
	}
}

// TestValidators checks the boundaries of each helper.
func TestValidators(t *testing.T) {
	t.Parallel()

	if err := validateMin("M", "n", 1, 1); err != nil {
		t.Errorf("validateMin at bound: %v", err)
	}
	if err := validateMax("M", "n", 24, 24); err != nil {
		t.Errorf("validateMax at bound: %v", err)
	}
	for _, p := range []float64{0, 0.5, 1} {
		if err := validateProbability("M", p); err != nil {
			t.Errorf("validateProbability(%g): %v", p, err)
		}
	}
	for _, p := range []float64{-0.1, 1.01, math.NaN()} {
		if err := validateProbability("M", p); err == nil {
			t.Errorf("validateProbability(%g): expected error", p)
		}
	}
	if err := validateFn[int]("M", nil); err == nil {
		t.Errorf("validateFn(nil): expected error")
	}
}
