package diagnostics_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/MeKo-Christian/chardet/diagnostics"
)

func TestNotice(t *testing.T) {
	t.Parallel()

	t.Run("Error without detail", func(t *testing.T) {
		n := &diagnostics.Notice{Code: diagnostics.TLDHintIgnored}
		expected := diagnostics.TLDHintIgnored + ": " + diagnostics.Message(diagnostics.TLDHintIgnored)
		if got := n.Error(); got != expected {
			t.Errorf("Error() = %q, want %q", got, expected)
		}
	})

	t.Run("Error with detail", func(t *testing.T) {
		n := &diagnostics.Notice{Code: diagnostics.UnsupportedMetaLabel, Detail: `charset="x-made-up"`}
		if got := n.Error(); !strings.Contains(got, `x-made-up`) {
			t.Errorf("Error() = %q, want it to contain the detail", got)
		}
	})
}

func TestNotices(t *testing.T) {
	t.Parallel()

	t.Run("Empty notices", func(t *testing.T) {
		n := diagnostics.Notices{}
		if got := n.Error(); got != "no notices" {
			t.Errorf("Error() = %q, want %q", got, "no notices")
		}
	})

	t.Run("Single notice", func(t *testing.T) {
		n := diagnostics.Notices{{Code: diagnostics.BOMOverridesHint}}
		expected := diagnostics.BOMOverridesHint + ": " + diagnostics.Message(diagnostics.BOMOverridesHint)
		if got := n.Error(); got != expected {
			t.Errorf("Error() = %q, want %q", got, expected)
		}
	})

	t.Run("Multiple notices", func(t *testing.T) {
		n := diagnostics.Notices{}.
			Add(diagnostics.BOMOverridesHint).
			Addf(diagnostics.UnsupportedMetaLabel, "label %q", "x-foo")

		result := n.Error()
		if !strings.HasPrefix(result, "2 notices:\n") {
			t.Errorf("Error() should start with '2 notices:\\n', got %q", result)
		}
		if !strings.Contains(result, diagnostics.BOMOverridesHint) {
			t.Error("Error() should contain the first notice's code")
		}
		if !strings.Contains(result, `label "x-foo"`) {
			t.Error("Error() should contain the second notice's detail")
		}
		if !strings.Contains(result, "\n  - ") {
			t.Error("Error() should format entries with newlines and bullets")
		}
	})

	t.Run("Unwrap returns notice slice", func(t *testing.T) {
		n1 := &diagnostics.Notice{Code: diagnostics.BOMOverridesHint}
		n2 := &diagnostics.Notice{Code: diagnostics.TLDHintIgnored}
		n := diagnostics.Notices{n1, n2}

		unwrapped := n.Unwrap()
		if len(unwrapped) != 2 {
			t.Fatalf("Unwrap() returned %d notices, want 2", len(unwrapped))
		}
		if !errors.Is(unwrapped[0], n1) || !errors.Is(unwrapped[1], n2) {
			t.Error("Unwrap() should preserve notice identity")
		}
	})
}

func TestMessage(t *testing.T) {
	t.Parallel()

	t.Run("Known code", func(t *testing.T) {
		msg := diagnostics.Message(diagnostics.CJKCandidatesTied)
		if msg == "" || msg == "unknown notice" {
			t.Errorf("Message() = %q, want a known notice message", msg)
		}
	})

	t.Run("Unknown code", func(t *testing.T) {
		if got := diagnostics.Message("this-code-does-not-exist"); got != "unknown notice" {
			t.Errorf("Message() = %q, want %q", got, "unknown notice")
		}
	})
}
