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
		{"BuildID", KeyBuildID, "b1", BuildID("b1")},
		{"Stage", KeyStage, "render", Stage("render")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"File", KeyFile, "about.md", File("about.md")},
		{"Lang", KeyLang, "pt", Lang("pt")},
		{"Collection", KeyCollection, "lessons", Collection("lessons")},
		{"Layout", KeyLayout, "default", Layout("default")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

func TestError_NilError_EmptyValue(t *testing.T) {
	a := Error(nil)
	if a.Value.String() != "" {
		t.Fatalf("expected empty value for nil error, got %q", a.Value.String())
	}
}

func TestError_NonNilError_MessageValue(t *testing.T) {
	a := Error(errors.New("boom"))
	if a.Value.String() != "boom" {
		t.Fatalf("expected 'boom', got %q", a.Value.String())
	}
}
