package anim

import "testing"

func TestOscillator_StartsAtMaxFalling(t *testing.T) {
	o := NewOscillator(DefaultParams())

	if o.Step() != DefaultMaxStep {
		t.Errorf("expected step %d, got %d", DefaultMaxStep, o.Step())
	}
	if o.Direction() != Falling {
		t.Errorf("expected falling, got %s", o.Direction())
	}
}

func TestOscillator_TriangleWave(t *testing.T) {
	o := NewOscillator(Params{MinStep: 50, MaxStep: 80, Increment: 10})

	expected := []int{70, 60, 50, 60, 70, 80, 70, 60, 50, 60}
	for i, want := range expected {
		if !o.Advance() {
			t.Fatalf("tick %d: expected step to change", i)
		}
		if o.Step() != want {
			t.Fatalf("tick %d: expected step %d, got %d", i, want, o.Step())
		}
	}
}

func TestOscillator_ClampsUnevenIncrement(t *testing.T) {
	o := NewOscillator(Params{MinStep: 50, MaxStep: 200, Increment: 40})

	// 200 -> 160 -> 120 -> 80 -> 50 (clamped) -> 90 ...
	for i := 0; i < 4; i++ {
		o.Advance()
	}
	if o.Step() != 50 {
		t.Fatalf("expected clamp to 50, got %d", o.Step())
	}
	if o.Direction() != Rising {
		t.Fatalf("expected rising after reaching min, got %s", o.Direction())
	}
	o.Advance()
	if o.Step() != 90 {
		t.Fatalf("expected 90, got %d", o.Step())
	}
}

func TestOscillator_StaysInBounds(t *testing.T) {
	p := DefaultParams()
	o := NewOscillator(p)

	for i := 0; i < 100000; i++ {
		o.Advance()
		if o.Step() < p.MinStep || o.Step() > p.MaxStep {
			t.Fatalf("tick %d: step %d out of [%d, %d]", i, o.Step(), p.MinStep, p.MaxStep)
		}
	}
}

func TestOscillator_FlatRangeNeverChanges(t *testing.T) {
	o := NewOscillator(Params{MinStep: 100, MaxStep: 100, Increment: 10})

	for i := 0; i < 5; i++ {
		if o.Advance() {
			t.Fatalf("tick %d: expected no change on a flat range", i)
		}
	}
	if o.Step() != 100 {
		t.Errorf("expected 100, got %d", o.Step())
	}
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"defaults", DefaultParams(), false},
		{"negative min", Params{MinStep: -1, MaxStep: 10, Increment: 1, Interval: 1}, true},
		{"max below min", Params{MinStep: 10, MaxStep: 5, Increment: 1, Interval: 1}, true},
		{"zero increment", Params{MinStep: 0, MaxStep: 5, Increment: 0, Interval: 1}, true},
		{"zero interval", Params{MinStep: 0, MaxStep: 5, Increment: 1, Interval: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
