// Package builder contains unit tests for the configuration primitives
// (builderConfig, span and BuilderOption).
package builder

import (
	"math/rand"
	"testing"
)

// TestNewBuilderConfig_Defaults checks the deterministic defaults.
func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Fatalf("default rng = %v; want nil", cfg.rng)
	}
	if cfg.idFn(4) != "4" {
		t.Errorf("default idFn(4) = %q; want %q", cfg.idFn(4), "4")
	}
	if cfg.value != (span{1, 100}) || cfg.weight != (span{1, 50}) || cfg.volume != (span{1, 50}) {
		t.Errorf("default ranges = %v %v %v", cfg.value, cfg.weight, cfg.volume)
	}
	if cfg.ratio != 0.5 {
		t.Errorf("default ratio = %v; want 0.5", cfg.ratio)
	}
}

// TestNewBuilderConfig_LastWins applies options in order.
func TestNewBuilderConfig_LastWins(t *testing.T) {
	cfg := newBuilderConfig(WithCapacityRatio(0.1), WithCapacityRatio(0.9), WithPrefixIDs("x"), WithExcelColumnIDs())
	if cfg.ratio != 0.9 {
		t.Errorf("ratio = %v; want 0.9", cfg.ratio)
	}
	if got := cfg.idFn(0); got != "A" {
		t.Errorf("idFn(0) = %q; want %q", got, "A")
	}
}

// TestSpan_Draw stays inside the inclusive range, including lo == hi.
func TestSpan_Draw(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	s := span{3, 5}
	for i := 0; i < 1000; i++ {
		if v := s.draw(r); v < 3 || v > 5 {
			t.Fatalf("draw = %d; want in [3,5]", v)
		}
	}
	if v := (span{4, 4}).draw(r); v != 4 {
		t.Errorf("draw on degenerate span = %d; want 4", v)
	}
	if (span{2, 1}).valid() {
		t.Errorf("span{2,1}.valid() = true; want false")
	}
}
