package chardet

import (
	"testing"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// TestTLDHintBreaksCJKTie feeds a short Shift_JIS sample with a "jp" TLD
// hint and checks the elimination cascade settles on Shift_JIS, the
// candidate that hint points to. Shift_JIS also heads cjkPriority, so the
// unhinted order would pick it as well.
func TestTLDHintBreaksCJKTie(t *testing.T) {
	text := "日本語"
	data, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("encoding sample text: %v", err)
	}

	d := NewDetector()
	d.Feed(data, true)
	got := d.Guess([]byte("jp"), true)
	if got != ShiftJIS {
		t.Errorf("Guess(tldHint=jp) = %v, want ShiftJIS", got)
	}
}

func TestCJKPriorityHasNoDuplicates(t *testing.T) {
	for i, id := range cjkPriority {
		if i+1 < len(cjkPriority) {
			// The priority list itself should have no duplicates; a
			// duplicate would make the cascade's tie-break order
			// ambiguous between two identical entries.
			for _, other := range cjkPriority[i+1:] {
				if id == other {
					t.Errorf("cjkPriority contains duplicate entry %v", id)
				}
			}
		}
	}
}

func TestGBKDetectedOverAmbiguousInput(t *testing.T) {
	text := "这是中文测试文本,包含多个汉字用于编码检测。"
	data, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("encoding sample text: %v", err)
	}

	d := NewDetector()
	d.Feed(data, true)
	got := d.Guess(nil, true)
	if got != GBK {
		t.Errorf("Guess() = %v, want GBK", got)
	}
}
