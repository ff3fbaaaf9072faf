package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Phase", KeyPhase, "load", Phase("load")},
		{"Path", KeyPath, "posts/a.md", Path("posts/a.md")},
		{"Output", KeyOutput, "public", Output("public")},
		{"Addr", KeyAddr, "localhost:8000", Addr("localhost:8000")},
		{"Event", KeyEvent, "WRITE", Event("WRITE")},
		{"Error", KeyError, "boom", Error(errors.New("boom"))},
		{"NilError", KeyError, "", Error(nil)},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

// TestNumericHelpers verifies keys for numeric helpers.
func TestNumericHelpers(t *testing.T) {
	if v := Count(3); v.Key != KeyCount || v.Value.Int64() != 3 {
		t.Fatalf("Count mismatch: %v", v)
	}
	if v := Workers(4); v.Key != KeyWorkers || v.Value.Int64() != 4 {
		t.Fatalf("Workers mismatch: %v", v)
	}
	if v := DurationMS(12.5); v.Key != KeyDurationMS || v.Value.Float64() != 12.5 {
		t.Fatalf("DurationMS mismatch: %v", v)
	}
}
