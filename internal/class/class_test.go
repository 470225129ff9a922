package class

import "testing"

func TestSingleByteRosterOrder(t *testing.T) {
	t.Parallel()

	want := []string{
		"windows-1252", "windows-1251", "windows-1250", "iso-8859-2",
		"windows-1256", "windows-1254", "windows-874", "windows-1255",
		"windows-1253", "iso-8859-7", "windows-1257", "koi8-u", "ibm866",
		"iso-8859-6", "windows-1258", "iso-8859-4", "iso-8859-5", "iso-8859-8",
	}
	if len(SingleByteRoster) != len(want) {
		t.Fatalf("roster length = %d, want %d", len(SingleByteRoster), len(want))
	}
	for i, name := range want {
		if SingleByteRoster[i].Name != name {
			t.Errorf("roster[%d] = %q, want %q", i, SingleByteRoster[i].Name, name)
		}
	}
}

func TestClassifyASCIIIsNeverInvalid(t *testing.T) {
	t.Parallel()

	for _, tbl := range SingleByteRoster {
		for b := 0; b < 0x80; b++ {
			got := tbl.Classify(byte(b))
			if got == Invalid {
				t.Fatalf("%s: ASCII byte 0x%02X classified Invalid", tbl.Name, b)
			}
		}
	}
}

func TestClassifyNeverPanics(t *testing.T) {
	t.Parallel()

	for _, tbl := range SingleByteRoster {
		for b := 0; b < 256; b++ {
			_ = tbl.Classify(byte(b))
		}
	}
}

func TestWithCaseRoundtrip(t *testing.T) {
	t.Parallel()

	u := WithCase(CyrillicLetter, true)
	if !u.IsUpper() || u.Base() != CyrillicLetter {
		t.Fatalf("WithCase(upper) = %v", u)
	}
	l := WithCase(CyrillicLetter, false)
	if l.IsUpper() || l.Base() != CyrillicLetter {
		t.Fatalf("WithCase(lower) = %v", l)
	}
}

func TestDefaultScoreASCIIPairsAreZero(t *testing.T) {
	t.Parallel()

	tbl := Windows1252
	prev := tbl.Classify('a')
	curr := tbl.Classify('B')
	if got := tbl.Score(curr, prev); got != 0 {
		t.Errorf("ASCII/ASCII bigram score = %d, want 0", got)
	}
}

func TestFrequentBonusRange(t *testing.T) {
	t.Parallel()

	if got := FrequentSimplifiedBonus('的'); got <= 0 {
		t.Errorf("FrequentSimplifiedBonus(the-de) = %d, want > 0", got)
	}
	if got := FrequentSimplifiedBonus('㐀'); got != 0 {
		t.Errorf("FrequentSimplifiedBonus(unlisted) = %d, want 0", got)
	}
}

func TestClassifyTLD(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  TLD
	}{
		{"jp", TLDJP}, {".jp", TLDJP}, {"KR", TLDKR},
		{"com", TLDGeneric}, {"", TLDGeneric},
	}
	for _, tt := range tests {
		if got := ClassifyTLD([]byte(tt.label)); got != tt.want {
			t.Errorf("ClassifyTLD(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}
