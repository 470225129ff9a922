// Package class implements the per-single-byte-encoding classifier and
// bigram scorer that the single-byte candidates in the parent chardet
// package consult. All data here is immutable and built at package
// init; callers hold borrowed references, never ownership.
package class

// Class is a caseless class id with the case bit folded into the high
// bit of the byte, per the wire contract: low 7 bits identify the
// caseless class, bit 7 (0x80) is set for the uppercase/capital form.
type Class uint8

// Invalid is the sentinel meaning "byte not representable in this
// encoding"; a single-byte candidate must disqualify on it.
const Invalid Class = 0xFF

// caseBit marks the uppercase/capital form of a letter class.
const caseBit Class = 0x80

// classMask isolates the caseless class id from the case bit.
const classMask Class = 0x7F

// Fixed cross-encoding class ids, shared by every single-byte table so
// candidates can compare bigrams across scripts.
const (
	Space              Class = 0 // space/neutral: whitespace, control, digits
	NonASCIISymbol     Class = 1 // non-ASCII punctuation/currency/symbol
	LatinLetter        Class = 2 // ASCII or Latin-script accented letter
	ASCIIPunctuation   Class = 3 // printable ASCII punctuation
	CyrillicLetter     Class = 4
	GreekLetter        Class = 5
	HebrewLetter       Class = 6
	ArabicLetter       Class = 7
	ThaiLetter         Class = 8
	VietnameseAddition Class = 9 // Windows-1258 combining/extra letters
)

// Caseless reports whether c's class id never carries a case distinction
// (the high bit is meaningless for it).
func (c Class) Caseless() bool {
	switch c.Base() {
	case HebrewLetter, ArabicLetter, ThaiLetter, Space, NonASCIISymbol, ASCIIPunctuation:
		return true
	default:
		return false
	}
}

// Base strips the case bit, returning the caseless class id.
func (c Class) Base() Class { return c & classMask }

// IsUpper reports whether the case bit is set.
func (c Class) IsUpper() bool { return c&caseBit != 0 }

// WithCase sets or clears the case bit on a base class id.
func WithCase(base Class, upper bool) Class {
	if upper {
		return base | caseBit
	}
	return base
}

// Table is the per-single-byte-encoding static data: classify, bigram
// score, and the two alphabetic predicates.
type Table struct {
	// Name is the canonical encoding name (for diagnostics/tests only).
	Name string

	// Classify maps a raw byte to its class, or Invalid.
	Classify func(b byte) Class

	// Score returns the bigram plausibility score(curr, prev).
	// Symmetry is not required.
	Score func(curr, prev Class) int64

	// IsLatinAlphabetic reports whether c is a Latin letter class.
	IsLatinAlphabetic func(c Class) bool

	// IsNonLatinAlphabetic reports whether c is a non-Latin alphabetic
	// class (Cyrillic/Greek/Hebrew/Arabic/Thai).
	IsNonLatinAlphabetic func(c Class) bool
}

func isLatinAlphabeticDefault(c Class) bool {
	return c.Base() == LatinLetter
}

func isNonLatinAlphabeticDefault(c Class) bool {
	switch c.Base() {
	case CyrillicLetter, GreekLetter, HebrewLetter, ArabicLetter, ThaiLetter, VietnameseAddition:
		return true
	default:
		return false
	}
}

// defaultScore is the generic bigram scorer used when an encoding does not
// supply its own matrix (see DESIGN.md: the real frequency-derived bigram
// corpora are out-of-scope static data that the retrieval pack does not
// carry). It rewards same-script continuation and is flat otherwise.
func defaultScore(curr, prev Class) int64 {
	cb, pb := curr.Base(), prev.Base()

	switch cb {
	case ASCIIPunctuation, Space:
		return 0
	}
	switch pb {
	case ASCIIPunctuation, Space:
		if isLatinAlphabeticDefault(curr) || isNonLatinAlphabeticDefault(curr) {
			return 0
		}
	}

	switch {
	case isNonLatinAlphabeticDefault(curr) && cb == pb:
		return 4
	case isLatinAlphabeticDefault(curr) && isLatinAlphabeticDefault(prev):
		return 1
	case (isLatinAlphabeticDefault(curr) || isNonLatinAlphabeticDefault(curr)) &&
		(isLatinAlphabeticDefault(prev) || isNonLatinAlphabeticDefault(prev)) && cb != pb:
		// Two different alphabetic scripts back to back: implausible.
		return -4
	default:
		return 0
	}
}

func newTable(name string, classify func(byte) Class) *Table {
	return &Table{
		Name:                 name,
		Classify:             classify,
		Score:                defaultScore,
		IsLatinAlphabetic:    isLatinAlphabeticDefault,
		IsNonLatinAlphabetic: isNonLatinAlphabeticDefault,
	}
}

// classifyASCIIPrefix handles the common 0x00-0x7F range shared by every
// single-byte Western/Cyrillic/Greek/etc. encoding in the roster: C0
// controls and space classify as Space, printable punctuation as
// ASCIIPunctuation, letters as case-tagged LatinLetter, digits as Space
// (digits carry no script-plausibility signal, so they group with the
// neutral class). ok is false for bytes >= 0x80, which the caller must
// handle per-encoding.
func classifyASCIIPrefix(b byte) (Class, bool) {
	if b >= 0x80 {
		return 0, false
	}
	switch {
	case b < 0x20, b == 0x7F:
		return Space, true
	case b == ' ':
		return Space, true
	case b >= '0' && b <= '9':
		return Space, true
	case b >= 'A' && b <= 'Z':
		return WithCase(LatinLetter, true), true
	case b >= 'a' && b <= 'z':
		return WithCase(LatinLetter, false), true
	default:
		return ASCIIPunctuation, true
	}
}
