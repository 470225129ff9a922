package class

// ASCII byte classification lookup tables for the per-byte hot loop.
// Adapted from the HTML5 tokenizer's [256]bool lookup-table idiom,
// generalized from "HTML5 whitespace" to the plain-ASCII predicates the
// single-byte classifiers and the meta-charset prescan need.

var isASCIISpace [256]bool

var isASCIIAlphaTable [256]bool

var isASCIIPunctTable [256]bool

var isASCIIUpperTable [256]bool

func init() {
	isASCIISpace['\t'] = true
	isASCIISpace['\n'] = true
	isASCIISpace['\f'] = true
	isASCIISpace['\r'] = true
	isASCIISpace[' '] = true

	for c := 'A'; c <= 'Z'; c++ {
		isASCIIAlphaTable[c] = true
		isASCIIUpperTable[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		isASCIIAlphaTable[c] = true
	}

	// Printable ASCII punctuation/symbol bytes: 0x21-0x2F, 0x3A-0x40,
	// 0x5B-0x60, 0x7B-0x7E.
	for c := 0x21; c <= 0x2F; c++ {
		isASCIIPunctTable[c] = true
	}
	for c := 0x3A; c <= 0x40; c++ {
		isASCIIPunctTable[c] = true
	}
	for c := 0x5B; c <= 0x60; c++ {
		isASCIIPunctTable[c] = true
	}
	for c := 0x7B; c <= 0x7E; c++ {
		isASCIIPunctTable[c] = true
	}
}

// IsASCIISpace reports whether b is an ASCII whitespace byte.
func IsASCIISpace(b byte) bool { return isASCIISpace[b] }

// IsASCIIAlpha reports whether b is an ASCII letter (A-Z, a-z).
func IsASCIIAlpha(b byte) bool { return isASCIIAlphaTable[b] }

// IsASCIIUpper reports whether b is an ASCII uppercase letter (A-Z).
func IsASCIIUpper(b byte) bool { return isASCIIUpperTable[b] }

// IsASCIIPunct reports whether b is printable ASCII punctuation.
func IsASCIIPunct(b byte) bool { return isASCIIPunctTable[b] }

// ASCIILower lowercases an ASCII uppercase byte; other bytes pass through.
func ASCIILower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b | 0x20
	}
	return b
}
