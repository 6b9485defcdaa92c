package machine

import (
	"testing"

	"enigma/internal/alphabet"
)

func newTestStack(t *testing.T, p *Profile, labels [RotorCount]string, positions string) *stack {
	t.Helper()
	pos, err := alphabet.Indices(positions)
	if err != nil || len(pos) != RotorCount {
		t.Fatalf("bad positions %q", positions)
	}
	s := &stack{rule: p.Rule()}
	for i, l := range labels {
		spec, err := p.Rotor(l)
		if err != nil {
			t.Fatalf("Rotor(%s): %v", l, err)
		}
		s.rotors[i] = newRotor(spec, 0)
		s.positions[i] = pos[i]
	}
	return s
}

func stepWindows(s *stack, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s.step()
		out = append(out, alphabet.String(s.positions[:]))
	}
	return out
}

func TestStep_SingleNotchOdometer(t *testing.T) {
	s := newTestStack(t, EnigmaI(), [3]string{"I", "II", "III"}, "ADU")
	got := stepWindows(s, 3)
	want := []string{"ADV", "AEW", "AEX"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d = %s, want %s (all %v)", i+1, got[i], want[i], got)
		}
	}
}

func TestStep_SingleNotchCarriesToLeft(t *testing.T) {
	// Middle II sits on E and the right rotor III on V: both carry.
	s := newTestStack(t, EnigmaI(), [3]string{"I", "II", "III"}, "AEV")
	if got := stepWindows(s, 1)[0]; got != "BFW" {
		t.Fatalf("got %s, want BFW", got)
	}
}

func TestStep_DoubleStepAnomaly(t *testing.T) {
	// Middle III one short of its notch V, right rotor II on its notch E.
	labels := [3]string{"I", "III", "II"}

	m3 := newTestStack(t, M3(), labels, "AUE")
	got := stepWindows(m3, 2)
	if got[0] != "BVF" || got[1] != "BWG" {
		t.Fatalf("m3 windows = %v, want [BVF BWG]", got)
	}

	odo := newTestStack(t, EnigmaI(), labels, "AUE")
	got = stepWindows(odo, 2)
	if got[0] != "AVF" || got[1] != "AVG" {
		t.Fatalf("enigma I windows = %v, want [AVF AVG]", got)
	}
}

func TestStep_DoubleStepFromMiddleNotch(t *testing.T) {
	// With the middle rotor already on its notch it steps on its own.
	s := newTestStack(t, M3(), [3]string{"I", "II", "III"}, "AEA")
	if got := stepWindows(s, 1)[0]; got != "AFB" {
		t.Fatalf("got %s, want AFB", got)
	}
}

func TestStep_MultiNotchSets(t *testing.T) {
	for _, start := range []string{"AAM", "AAZ"} {
		s := newTestStack(t, M3(), [3]string{"I", "I", "VI"}, start)
		if got := stepWindows(s, 1)[0]; got[1] != 'B' {
			t.Fatalf("from %s: middle did not advance: %s", start, got)
		}
	}
	s := newTestStack(t, EnigmaI(), [3]string{"I", "I", "I"}, "AAQ")
	if got := stepWindows(s, 1)[0]; got != "ABR" {
		t.Fatalf("single notch from AAQ = %s", got)
	}
}

func TestStep_Deterministic(t *testing.T) {
	for _, p := range Profiles() {
		a := newTestStack(t, p, [3]string{"III", "II", "I"}, "QEV")
		b := newTestStack(t, p, [3]string{"III", "II", "I"}, "QEV")
		wa, wb := stepWindows(a, 2000), stepWindows(b, 2000)
		for i := range wa {
			if wa[i] != wb[i] {
				t.Fatalf("%s: diverged at step %d", p.Name(), i)
			}
		}
	}
}

func TestRotor_InverseUndoesForward(t *testing.T) {
	spec, err := M3().Rotor("VII")
	if err != nil {
		t.Fatal(err)
	}
	r := newRotor(spec, 5)
	for pos := 0; pos < alphabet.Size; pos++ {
		for x := 0; x < alphabet.Size; x++ {
			y := r.substitute(&r.forward, x, pos)
			if back := r.substitute(&r.inverse, y, pos); back != x {
				t.Fatalf("pos %d: %d -> %d -> %d", pos, x, y, back)
			}
		}
	}
}
