package fuzzy

import (
	"errors"
	"testing"
)

func TestComputeSingleRuleCentroid(t *testing.T) {
	e := testEngine(t)
	if err := e.AddRule(NewRule("low quality, low success", Term("quality", "low"), "success", "low")); err != nil {
		t.Fatal(err)
	}

	// quality=0 fires "low" at 1.0; the aggregate is the full low-success
	// triangle (0,20,40) whose centroid is 20.
	res, err := e.Compute(map[string]float64{"quality": 0})
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(res.Value, 20.0, 0.5) {
		t.Errorf("centroid = %g, want ~20", res.Value)
	}
	if len(res.Strengths) != 1 || res.Strengths[0].Strength != 1.0 {
		t.Errorf("unexpected strengths: %+v", res.Strengths)
	}
}

func TestComputeClippedCentroidUnchangedForSymmetricTerm(t *testing.T) {
	e := testEngine(t)
	if err := e.AddRule(NewRule("r", Term("quality", "low"), "success", "low")); err != nil {
		t.Fatal(err)
	}

	// Partial firing clips the symmetric triangle into a symmetric
	// trapezoid; the centroid stays at the peak.
	res, err := e.Compute(map[string]float64{"quality": 2.5})
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(res.Strengths[0].Strength, 0.5, 1e-9) {
		t.Errorf("strength = %g, want 0.5", res.Strengths[0].Strength)
	}
	if !almostEqual(res.Value, 20.0, 0.5) {
		t.Errorf("centroid = %g, want ~20", res.Value)
	}
}

func TestComputeRuleOrderIndependence(t *testing.T) {
	build := func(reversed bool) *Engine {
		e := testEngine(t)
		rules := []Rule{
			NewRule("a", Term("quality", "low"), "success", "low"),
			NewRule("b", Term("quality", "high"), "success", "high"),
		}
		if reversed {
			rules[0], rules[1] = rules[1], rules[0]
		}
		for _, r := range rules {
			if err := e.AddRule(r); err != nil {
				t.Fatal(err)
			}
		}
		return e
	}

	inputs := map[string]float64{"quality": 4.0}
	r1, err := build(false).Compute(inputs)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := build(true).Compute(inputs)
	if err != nil {
		t.Fatal(err)
	}
	if r1.Value != r2.Value {
		t.Errorf("rule order changed output: %g vs %g", r1.Value, r2.Value)
	}
}

func TestComputeDeterministic(t *testing.T) {
	e := testEngine(t)
	if err := e.AddRule(NewRule("a", Term("quality", "low"), "success", "low")); err != nil {
		t.Fatal(err)
	}
	if err := e.AddRule(NewRule("b", Term("quality", "high"), "success", "high")); err != nil {
		t.Fatal(err)
	}

	inputs := map[string]float64{"quality": 3.7}
	first, err := e.Compute(inputs)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := e.Compute(inputs)
		if err != nil {
			t.Fatal(err)
		}
		if again.Value != first.Value {
			t.Fatalf("run %d produced %g, first run produced %g", i, again.Value, first.Value)
		}
	}
}

func TestComputeUndefinedDefuzzification(t *testing.T) {
	e := testEngine(t)
	if err := e.AddRule(NewRule("a", Term("quality", "low"), "success", "low")); err != nil {
		t.Fatal(err)
	}

	t.Run("input outside every support", func(t *testing.T) {
		_, err := e.Compute(map[string]float64{"quality": 7.0})
		if !errors.Is(err, ErrUndefinedDefuzzification) {
			t.Errorf("expected ErrUndefinedDefuzzification, got %v", err)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := e.Compute(map[string]float64{})
		if !errors.Is(err, ErrUndefinedDefuzzification) {
			t.Errorf("expected ErrUndefinedDefuzzification, got %v", err)
		}
	})
}

func TestComputeConcurrentSessions(t *testing.T) {
	e := testEngine(t)
	if err := e.AddRule(NewRule("a", Term("quality", "low"), "success", "low")); err != nil {
		t.Fatal(err)
	}
	if err := e.AddRule(NewRule("b", Term("quality", "high"), "success", "high")); err != nil {
		t.Fatal(err)
	}

	want, err := e.Compute(map[string]float64{"quality": 2.0})
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				got, err := e.Compute(map[string]float64{"quality": 2.0})
				if err != nil {
					done <- err
					return
				}
				if got.Value != want.Value {
					done <- errors.New("concurrent result diverged")
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}

func TestUniverseSampling(t *testing.T) {
	u, err := NewUniverse(0, 10, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if u.Len() != 101 {
		t.Errorf("Len = %d, want 101", u.Len())
	}
	if u.Point(0) != 0 {
		t.Errorf("first point = %g, want 0", u.Point(0))
	}
	if !almostEqual(u.Point(u.Len()-1), 10, 1e-9) {
		t.Errorf("last point = %g, want 10", u.Point(u.Len()-1))
	}

	if _, err := NewUniverse(5, 5, 0.1); err == nil {
		t.Error("expected error for empty interval")
	}
	if _, err := NewUniverse(0, 10, 0); err == nil {
		t.Error("expected error for zero step")
	}
}
