//go:build go1.18

package domain

import (
	"testing"

	dErrors "consentkit/pkg/domain-errors"
)

// FuzzParseSubjectToGDPR checks that decoding never panics, never yields a
// value outside the set, and that accepted values round-trip.
//
// Justification: text decoding is the trust boundary for the flag.
func FuzzParseSubjectToGDPR(f *testing.F) {
	f.Add("")
	f.Add("-1")
	f.Add("0")
	f.Add("1")
	f.Add("2")
	f.Add("yes")
	f.Add("unknown")
	f.Add("-0")
	f.Add(string([]byte{0x00, 0xff}))

	f.Fuzz(func(t *testing.T, input string) {
		v, err := ParseSubjectToGDPR(input)
		if err != nil {
			if !dErrors.HasCode(err, dErrors.CodeInvalidInput) {
				t.Errorf("unexpected error code for %q: %v", input, err)
			}
			return
		}

		if !v.IsValid() {
			t.Fatalf("accepted %q as out-of-range value %d", input, int(v))
		}

		text, err := v.MarshalText()
		if err != nil {
			t.Fatalf("valid value failed to marshal: %v", err)
		}
		roundTrip, err := ParseSubjectToGDPR(string(text))
		if err != nil || roundTrip != v {
			t.Errorf("round-trip of %q changed value: %v -> %v (%v)", input, v, roundTrip, err)
		}
	})
}
