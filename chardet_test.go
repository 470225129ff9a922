package chardet

import (
	"strings"
	"testing"
)

func guess(t *testing.T, data []byte, chunkSizes ...int) EncodingID {
	t.Helper()
	d := NewDetector()
	if len(chunkSizes) == 0 {
		d.Feed(data, true)
		return d.Guess(nil, true)
	}
	i := 0
	for _, n := range chunkSizes {
		end := i + n
		if end > len(data) {
			end = len(data)
		}
		d.Feed(data[i:end], end == len(data))
		i = end
	}
	if i < len(data) {
		d.Feed(data[i:], true)
	}
	return d.Guess(nil, true)
}

func TestEmptyInputDefaultsToWindows1252(t *testing.T) {
	d := NewDetector()
	d.Feed(nil, true)
	if got := d.Guess(nil, true); got != Windows1252 {
		t.Errorf("Guess() = %v, want Windows1252", got)
	}
}

func TestPureASCIIDefaultsToWindows1252(t *testing.T) {
	got := guess(t, []byte("The quick brown fox jumps over the lazy dog."))
	if got != Windows1252 {
		t.Errorf("Guess() = %v, want Windows1252", got)
	}
}

func TestValidUTF8Detected(t *testing.T) {
	// café, naïve, and "hello" in Cyrillic (Привет), all valid UTF-8 with a
	// healthy mix of multi-byte sequences.
	got := guess(t, []byte("café naïve Привет мир, это текст на русском языке"))
	if got != UTF8 {
		t.Errorf("Guess() = %v, want UTF8", got)
	}
}

func TestUTF8GateDisabledFallsBackToLegacy(t *testing.T) {
	data := []byte("café naïve Привет мир, это текст на русском языке")
	d := NewDetector()
	d.Feed(data, true)
	got := d.Guess(nil, false)
	if got == UTF8 {
		t.Errorf("Guess(allowUTF8=false) = %v, want a legacy encoding, not UTF8", got)
	}
}

func TestStructurallyImpossibleUTF8Disqualifies(t *testing.T) {
	// 0xC0 is never a valid UTF-8 lead byte (overlong encoding).
	d := NewDetector()
	d.Feed([]byte("hello \xc0\x80 world"), true)
	if d.findScore(UTF8) != nil {
		t.Error("UTF-8 candidate should be disqualified by an overlong sequence")
	}
}

func TestChunkInvarianceASCII(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog, repeatedly, many times over.")
	whole := guess(t, data)
	chunked := guess(t, data, 1, 3, 7, 11, 1, 100)
	if whole != chunked {
		t.Errorf("whole-input guess = %v, chunked guess = %v, want equal", whole, chunked)
	}
}

func TestChunkInvarianceUTF8(t *testing.T) {
	data := []byte(strings.Repeat("Привет, как дела? ", 20))
	whole := guess(t, data)
	chunked := guess(t, data, 1, 2, 5, 13, 40)
	if whole != chunked {
		t.Errorf("whole-input guess = %v, chunked guess = %v, want equal", whole, chunked)
	}
}

func TestAnyCandidateAliveAfterPlainASCII(t *testing.T) {
	d := NewDetector()
	d.Feed([]byte("hello world"), true)
	if !d.AnyCandidateAlive() {
		t.Error("AnyCandidateAlive() = false after plain ASCII, want true")
	}
}

func TestFeedReportsNonASCIISeen(t *testing.T) {
	d := NewDetector()
	if seen := d.Feed([]byte("hello"), false); seen {
		t.Error("Feed() reported non-ASCII seen on pure ASCII input")
	}
	if seen := d.Feed([]byte("\xc3\xa9"), true); !seen {
		t.Error("Feed() did not report non-ASCII seen after a multi-byte UTF-8 sequence")
	}
}
