package cipher

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"enigma/internal/config"
	"enigma/internal/machine"
)

func TestEncode_Reciprocal(t *testing.T) {
	s := New(nil)
	settings := config.Default()
	settings.Plugboard = []string{"AB", "CD"}

	ct, err := s.Encode(settings, "Hello, World!")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if ct.Text != "ILACBBMTBE" || ct.Letters != 10 {
		t.Fatalf("ct = %+v", ct)
	}
	if ct.StartPositions != "AAA" || ct.EndPositions != "AAK" {
		t.Fatalf("positions %s -> %s", ct.StartPositions, ct.EndPositions)
	}
	pt, err := s.Encode(settings, ct.Text)
	if err != nil {
		t.Fatal(err)
	}
	if pt.Text != "HELLOWORLD" {
		t.Fatalf("pt = %q", pt.Text)
	}
	if pt.Fingerprint != ct.Fingerprint {
		t.Fatalf("fingerprint changed between runs")
	}
}

func TestEncode_LogsFingerprintNotText(t *testing.T) {
	var buf bytes.Buffer
	s := New(log.New(&buf, "", 0))
	if _, err := s.Encode(config.Default(), "SECRETMESSAGE"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, string(Fingerprint(config.Default()))) || strings.Contains(out, "SECRET") {
		t.Fatalf("log = %q", out)
	}
}

func TestEncode_InvalidSettings(t *testing.T) {
	settings := config.Default()
	settings.Rotors = []string{"I", "II"}
	if _, err := New(nil).Encode(settings, "A"); !errors.Is(err, machine.ErrInvalidConfigurationLength) {
		t.Fatalf("err = %v", err)
	}
}

func TestEncodeStream(t *testing.T) {
	var out bytes.Buffer
	res, err := New(nil).EncodeStream(config.Default(), strings.NewReader("a a a a a"), &out)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "BDZGO" || res.Letters != 5 || res.EndPositions != "AAF" || res.Text != "" {
		t.Fatalf("out %q res %+v", out.String(), res)
	}
}

func TestFingerprint_IgnoresCase(t *testing.T) {
	a := config.Default()
	b := config.Default()
	b.Reflector = "b"
	b.Rotors = []string{"i", "ii", "iii"}
	if Fingerprint(a) != Fingerprint(b) {
		t.Fatal("fingerprint depends on case")
	}
	b.Positions = "AAB"
	if Fingerprint(a) == Fingerprint(b) {
		t.Fatal("fingerprint ignores positions")
	}
}
