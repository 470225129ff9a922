package chardet

import "github.com/MeKo-Christian/chardet/internal/class"

// wordCaseState tracks the capitalization shape of the word currently
// being scanned by the non-Latin cased discipline's per-word case
// machine.
type wordCaseState int

const (
	wcsStart wordCaseState = iota
	wcsFirstUpper
	wcsAllLower
	wcsAllUpper
	wcsCapitalized
	wcsMixed
)

// latinCandidate implements the Latin single-byte discipline (Windows-1252,
// Windows-1250, ISO-8859-2, Windows-1257, ISO-8859-4, Windows-1254,
// Windows-1258): a 4-state case machine plus a non-ASCII run-length
// penalty, grounded on original_source/src/lib.rs's LatinCandidate.
type latinCandidate struct {
	id    EncodingID
	table *class.Table

	prev           class.Class
	prevNonASCII   bool
	haveByte       bool
	nonASCIIRun    uint32
	state          wordCaseState // wcsStart/wcsFirstUpper/wcsAllUpper/wcsAllLower only
	score          int64
}

func newLatinCandidate(id EncodingID, table *class.Table) *latinCandidate {
	return &latinCandidate{id: id, table: table}
}

func (c *latinCandidate) encoding() EncodingID { return c.id }

func (c *latinCandidate) feed(buf []byte, last bool) bool {
	for _, b := range buf {
		cur := c.table.Classify(b)
		if cur == class.Invalid {
			return true
		}

		nonASCII := b >= 0x80
		if nonASCII {
			c.nonASCIIRun++
		} else {
			c.nonASCIIRun = 0
		}
		c.score += runLengthPenalty(c.nonASCIIRun)

		if c.table.IsLatinAlphabetic(cur) {
			upper := cur.IsUpper()
			next := c.caseTransition(upper)
			if (c.state == wcsAllUpper && next == wcsAllLower) ||
				(c.state == wcsAllLower && next == wcsFirstUpper) {
				if nonASCII || c.prevNonASCII {
					c.score += implausibleLatinCaseTransitionPenalty
				}
			}
			c.state = collapseLatinState(next)
		} else {
			c.state = wcsStart
		}

		if c.haveByte {
			c.score += c.table.Score(cur, c.prev)
		}
		c.prev = cur
		c.prevNonASCII = nonASCII
		c.haveByte = true
	}
	return false
}

// caseTransition returns the raw (uncollapsed) next state for observing
// one more letter of the given case, given the current collapsed state.
func (c *latinCandidate) caseTransition(upper bool) wordCaseState {
	switch c.state {
	case wcsStart:
		if upper {
			return wcsFirstUpper
		}
		return wcsAllLower
	case wcsFirstUpper:
		if upper {
			return wcsAllUpper
		}
		return wcsCapitalized
	case wcsAllUpper:
		if upper {
			return wcsAllUpper
		}
		return wcsAllLower
	default: // wcsAllLower, wcsCapitalized
		if upper {
			return wcsFirstUpper
		}
		return wcsAllLower
	}
}

// collapseLatinState folds the 6-state transition result back onto the
// 4 states the Latin discipline actually distinguishes going forward.
func collapseLatinState(s wordCaseState) wordCaseState {
	if s == wcsCapitalized {
		return wcsAllLower
	}
	return s
}

func (c *latinCandidate) liveScore() (int64, bool) { return c.score, true }

// nonLatinCasedCandidate implements the non-Latin cased discipline
// (Windows-1251, ISO-8859-5, KOI8-U, IBM866, Windows-1253, ISO-8859-7): a
// per-word case machine over Cyrillic/Greek letters, plus a Latin-letter
// adjacency poison and a word-length gate.
type nonLatinCasedCandidate struct {
	id          EncodingID
	table       *class.Table
	koi8uAllCaps bool // apply the extra all-caps penalty (KOI8-U only)

	prev        class.Class
	haveByte    bool
	word        wordCaseState
	wordLen     int
	longestWord int
	wasLatin    bool
	haveLatin   bool
	score       int64
}

func newNonLatinCasedCandidate(id EncodingID, table *class.Table, koi8u bool) *nonLatinCasedCandidate {
	return &nonLatinCasedCandidate{id: id, table: table, koi8uAllCaps: koi8u}
}

func (c *nonLatinCasedCandidate) encoding() EncodingID { return c.id }

func (c *nonLatinCasedCandidate) feed(buf []byte, last bool) bool {
	for _, b := range buf {
		cur := c.table.Classify(b)
		if cur == class.Invalid {
			return true
		}

		isLatin := c.table.IsLatinAlphabetic(cur)
		isNonLatin := c.table.IsNonLatinAlphabetic(cur)

		switch {
		case isLatin:
			if c.haveLatin && c.wasLatin != isLatin {
				c.score += latinAdjacencyPenalty
			}
			c.wordLen++
			c.word = wcsMixed
		case isNonLatin:
			if c.haveLatin && c.wasLatin {
				c.score += latinAdjacencyPenalty
			}
			c.wordLen++
			c.stepWordCase(cur.IsUpper())
		default:
			c.finishWord()
		}

		if isLatin || isNonLatin {
			c.wasLatin = isLatin
			c.haveLatin = true
		}

		if c.haveByte {
			c.score += c.table.Score(cur, c.prev)
		}
		c.prev = cur
		c.haveByte = true
	}
	return false
}

func (c *nonLatinCasedCandidate) stepWordCase(upper bool) {
	switch c.word {
	case wcsStart:
		if upper {
			c.word = wcsFirstUpper
		} else {
			c.word = wcsAllLower
		}
	case wcsFirstUpper:
		if upper {
			c.word = wcsAllUpper
		} else {
			c.word = wcsCapitalized
			c.score += nonLatinCapitalizationBonus
		}
	case wcsAllUpper:
		if !upper {
			c.word = wcsMixed
			c.score += nonLatinMixedCasePenalty
		}
	case wcsAllLower:
		if upper {
			c.word = wcsMixed
			c.score += nonLatinInvertedCasePenalty
		}
	case wcsCapitalized:
		if upper {
			c.word = wcsMixed
			c.score += nonLatinMixedCasePenalty
		}
	case wcsMixed:
		// Already flagged; no further per-letter penalty accrues beyond
		// the first mixed-case transition.
	}
}

func (c *nonLatinCasedCandidate) finishWord() {
	if c.word == wcsAllUpper && c.koi8uAllCaps && c.wordLen > 1 {
		c.score += nonLatinAllCapsKOI8UPenalty
	}
	if c.wordLen > c.longestWord {
		c.longestWord = c.wordLen
	}
	c.wordLen = 0
	c.word = wcsStart
}

func (c *nonLatinCasedCandidate) liveScore() (int64, bool) {
	longest := c.longestWord
	if c.wordLen > longest {
		longest = c.wordLen
	}
	return c.score, longest >= wordLengthGate
}

// caselessCandidate implements the caseless discipline (Windows-874 Thai,
// ISO-8859-6 Arabic): pure bigram scoring plus the same word-length gate,
// since these scripts carry no case distinction.
type caselessCandidate struct {
	id    EncodingID
	table *class.Table

	prev        class.Class
	haveByte    bool
	wordLen     int
	longestWord int
	score       int64
}

func newCaselessCandidate(id EncodingID, table *class.Table) *caselessCandidate {
	return &caselessCandidate{id: id, table: table}
}

func (c *caselessCandidate) encoding() EncodingID { return c.id }

func (c *caselessCandidate) feed(buf []byte, last bool) bool {
	for _, b := range buf {
		cur := c.table.Classify(b)
		if cur == class.Invalid {
			return true
		}

		if c.table.IsNonLatinAlphabetic(cur) || c.table.IsLatinAlphabetic(cur) {
			c.wordLen++
		} else {
			if c.wordLen > c.longestWord {
				c.longestWord = c.wordLen
			}
			c.wordLen = 0
		}

		if c.haveByte {
			c.score += c.table.Score(cur, c.prev)
		}
		c.prev = cur
		c.haveByte = true
	}
	return false
}

func (c *caselessCandidate) liveScore() (int64, bool) {
	longest := c.longestWord
	if c.wordLen > longest {
		longest = c.wordLen
	}
	return c.score, longest >= wordLengthGate
}

// arabicFrenchCandidate implements Windows-1256: Arabic letters are
// caseless, but the encoding also carries the full Latin-1-ish letters
// used by transliterated French loanwords, so it combines the Latin case
// machine with the non-Latin word-length gate.
type arabicFrenchCandidate struct {
	latin   latinCandidate
	wordLen int
	longest int
}

func newArabicFrenchCandidate(id EncodingID, table *class.Table) *arabicFrenchCandidate {
	return &arabicFrenchCandidate{latin: latinCandidate{id: id, table: table}}
}

func (c *arabicFrenchCandidate) encoding() EncodingID { return c.latin.id }

func (c *arabicFrenchCandidate) feed(buf []byte, last bool) bool {
	table := c.latin.table
	for i, b := range buf {
		cur := table.Classify(b)
		if cur == class.Invalid {
			return true
		}
		if table.IsNonLatinAlphabetic(cur) {
			c.wordLen++
		} else if !table.IsLatinAlphabetic(cur) {
			if c.wordLen > c.longest {
				c.longest = c.wordLen
			}
			c.wordLen = 0
		}
		if c.latin.feed(buf[i:i+1], last && i == len(buf)-1) {
			return true
		}
	}
	return false
}

func (c *arabicFrenchCandidate) liveScore() (int64, bool) {
	longest := c.longest
	if c.wordLen > longest {
		longest = c.wordLen
	}
	score, _ := c.latin.liveScore()
	return score, longest >= wordLengthGate
}

// hebrewCandidate implements both Hebrew disciplines: Windows-1255
// (logical order) and ISO-8859-8 (visual order). Both are caseless; the
// only observable difference is which punctuation-pair patterns are
// plausible, which Detector.Guess uses as the tie-break counter.
type hebrewCandidate struct {
	id     EncodingID
	table  *class.Table
	visual bool

	prev             class.Class
	havePrev         class.Class
	haveByte         bool
	wordLen          int
	longestWord      int
	score            int64
	plausiblePunct   int64
	implausiblePunct int64
}

func newHebrewCandidate(id EncodingID, table *class.Table, visual bool) *hebrewCandidate {
	return &hebrewCandidate{id: id, table: table, visual: visual}
}

func (c *hebrewCandidate) encoding() EncodingID { return c.id }

func (c *hebrewCandidate) feed(buf []byte, last bool) bool {
	for _, b := range buf {
		cur := c.table.Classify(b)
		if cur == class.Invalid {
			return true
		}

		if c.table.IsNonLatinAlphabetic(cur) || c.table.IsLatinAlphabetic(cur) {
			c.wordLen++
		} else {
			if c.wordLen > c.longestWord {
				c.longestWord = c.wordLen
			}
			c.wordLen = 0
		}

		if c.haveByte {
			switch {
			case c.prev.Base() == class.HebrewLetter && cur.Base() == class.ASCIIPunctuation:
				// A Hebrew letter directly followed by punctuation is
				// the logical-order pattern (the punctuation closes to
				// the reader's left in true reading order).
				if c.visual {
					c.implausiblePunct++
				} else {
					c.plausiblePunct++
				}
			case c.prev.Base() == class.ASCIIPunctuation && cur.Base() == class.HebrewLetter:
				// The reverse transition is the visual-order pattern.
				if c.visual {
					c.plausiblePunct++
				} else {
					c.implausiblePunct++
				}
			}
		}

		if c.haveByte {
			c.score += c.table.Score(cur, c.prev)
		}
		c.prev = cur
		c.haveByte = true
	}
	return false
}

func (c *hebrewCandidate) liveScore() (int64, bool) {
	longest := c.longestWord
	if c.wordLen > longest {
		longest = c.wordLen
	}
	return c.score, longest >= wordLengthGate
}

// punctuationBalance returns plausible-minus-implausible punctuation
// pairs, consulted only by guess.go's Hebrew tie-break.
func (c *hebrewCandidate) punctuationBalance() int64 {
	return c.plausiblePunct - c.implausiblePunct
}

// newSingleByteRoster builds the 18 single-byte candidates in
// internal/class.SingleByteRoster order, matching the EncodingID iota
// order declared in encodingid.go.
func newSingleByteRoster() []innerCandidate {
	t := func(i int) *class.Table { return class.SingleByteRoster[i] }
	return []innerCandidate{
		newLatinCandidate(Windows1252, t(0)),
		newNonLatinCasedCandidate(Windows1251, t(1), false),
		newLatinCandidate(Windows1250, t(2)),
		newLatinCandidate(ISO88592, t(3)),
		newArabicFrenchCandidate(Windows1256, t(4)),
		newLatinCandidate(Windows1254, t(5)),
		newCaselessCandidate(Windows874, t(6)),
		newHebrewCandidate(Windows1255, t(7), false),
		newNonLatinCasedCandidate(Windows1253, t(8), false),
		newNonLatinCasedCandidate(ISO88597, t(9), false),
		newLatinCandidate(Windows1257, t(10)),
		newNonLatinCasedCandidate(KOI8U, t(11), true),
		newNonLatinCasedCandidate(IBM866, t(12), false),
		newCaselessCandidate(ISO88596, t(13)),
		newLatinCandidate(Windows1258, t(14)),
		newLatinCandidate(ISO88594, t(15)),
		newNonLatinCasedCandidate(ISO88595, t(16), false),
		newHebrewCandidate(ISO88598, t(17), true),
	}
}
