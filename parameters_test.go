package slapstick

import "testing"

// ══════════════════════════════════════════════
// ParameterVector tests
// ══════════════════════════════════════════════

func TestClamp_OutOfRange(t *testing.T) {
	v := ParameterVector{Exaggeration: 15, Timing: -3, Physical: 10, RuleOfThree: 0, Readability: 11, Tension: -1}
	got := v.Clamp()
	want := ParameterVector{Exaggeration: 10, Timing: 0, Physical: 10, RuleOfThree: 0, Readability: 10, Tension: 0}
	if got != want {
		t.Fatalf("Clamp() = %+v, want %+v", got, want)
	}
}

func TestClamp_Idempotent(t *testing.T) {
	v := ParameterVector{Exaggeration: 7, Timing: 4, Physical: 5, RuleOfThree: 7, Readability: 7, Tension: 10}
	if v.Clamp() != v {
		t.Fatalf("clamping an in-range vector must be a no-op, got %+v", v.Clamp())
	}
	if v.Clamp().Clamp() != v.Clamp() {
		t.Fatal("Clamp must be idempotent")
	}
}

func TestValidate_Backstop(t *testing.T) {
	ok := ParameterVector{Exaggeration: 5, Timing: 5, Physical: 5, RuleOfThree: 5, Readability: 5, Tension: 5}
	if err := ok.Validate(); err != nil {
		t.Fatalf("in-range vector must validate: %v", err)
	}

	bad := ParameterVector{Tension: 11}
	err := bad.Validate()
	if err == nil {
		t.Fatal("out-of-range vector must fail validation")
	}
	paramErr, ok2 := err.(*InvalidParameterError)
	if !ok2 {
		t.Fatalf("expected *InvalidParameterError, got %T", err)
	}
	if paramErr.Param != "tension" {
		t.Fatalf("error should name the parameter, got %q", paramErr.Param)
	}
}

func TestGetWith_RoundTrip(t *testing.T) {
	var v ParameterVector
	for i, p := range parameterOrder {
		v = v.With(p, i+1)
	}
	for i, p := range parameterOrder {
		if v.Get(p) != i+1 {
			t.Fatalf("Get(%s) = %d, want %d", p, v.Get(p), i+1)
		}
	}
}

func TestMap_AllSixKeys(t *testing.T) {
	v := ParameterVector{Exaggeration: 1, Timing: 2, Physical: 3, RuleOfThree: 4, Readability: 5, Tension: 6}
	m := v.Map()
	if len(m) != 6 {
		t.Fatalf("Map() has %d entries, want 6", len(m))
	}
	if m["ruleOfThree"] != 4 {
		t.Fatalf("Map()[ruleOfThree] = %d, want 4", m["ruleOfThree"])
	}
}
