package dom

import (
	"errors"
	"testing"
)

// wantPanic runs f in checked mode and verifies it panics with an
// error wrapping sentinel.
func wantPanic(t *testing.T, sentinel error, f func()) {
	t.Helper()
	prev := SetChecked(true)
	defer SetChecked(prev)
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("no panic, want %v", sentinel)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, sentinel) {
			t.Fatalf("panic %v, want %v", r, sentinel)
		}
	}()
	f()
}

func TestSetChecked(t *testing.T) {
	prev := SetChecked(true)
	defer SetChecked(prev)
	if !Checked() {
		t.Errorf("Checked() = false after SetChecked(true)")
	}
	if !SetChecked(false) {
		t.Errorf("SetChecked(false) = false, want previous value true")
	}
	if Checked() {
		t.Errorf("Checked() = true after SetChecked(false)")
	}
}

func TestUncheckedDegrades(t *testing.T) {
	prev := SetChecked(false)
	defer SetChecked(prev)

	v := FromInt(3)
	v.Clear() // type mismatch, but unchecked: no-op
	if got := v.AsInt(0); got != 3 {
		t.Errorf("AsInt() = %v after unchecked Clear, want 3", got)
	}
	if el := FromString("s").At(0); !el.IsNull() {
		t.Errorf("At(0) on a String value = %v, want detached Null", el.Type())
	}
}
