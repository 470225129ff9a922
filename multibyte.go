package chardet

import (
	"unicode/utf8"

	"github.com/MeKo-Christian/chardet/internal/class"
	"github.com/MeKo-Christian/chardet/internal/decoderadapter"
)

// isFullwidthPunctuation reports the ideographic space/comma/period/parens
// shared by every CJK multi-byte encoding, scored with a distinctive
// full-width punctuation bonus.
func isFullwidthPunctuation(r rune) bool {
	switch r {
	case '　', '、', '。', '（', '）':
		return true
	default:
		return false
	}
}

// isChineseDistinctivePunctuation reports the full-width !,;? forms that
// are far more common in Chinese text than Japanese/Korean.
func isChineseDistinctivePunctuation(r rune) bool {
	switch r {
	case '！', '；', '？':
		return true
	default:
		return false
	}
}

// isCJKIdeograph reports whether r falls in the CJK Unified Ideographs
// block or its Compatibility Ideographs supplement.
func isCJKIdeograph(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF) || (r >= 0xF900 && r <= 0xFAFF)
}

// isKana reports whether r is a Hiragana or Katakana code point.
func isKana(r rune) bool { return r >= 0x3040 && r <= 0x30FF }

// isObsoleteKana reports the near-obsolete wi/we hiragana and katakana
// (ゐ, ゑ, ヰ, ヱ), scored one point lower than ordinary kana.
func isObsoleteKana(r rune) bool {
	switch r {
	case 0x3090, 0x3091, 0x30F0, 0x30F1:
		return true
	default:
		return false
	}
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// cjkAdjacency tracks the ASCII-letter<->ideograph boundary that every
// multi-byte candidate penalizes, since it is cheaper for text to be
// genuinely multi-script (CJK plus embedded Latin identifiers/brands)
// than for two legacy multi-byte encodings to look alike there.
type cjkAdjacency struct {
	prevIdeograph bool
	prevASCII     bool
}

func (a *cjkAdjacency) step(r rune) (penalty int64) {
	switch {
	case r < 0x80 && isASCIILetter(r):
		if a.prevIdeograph {
			penalty = cjkLatinAdjacencyPenalty
		}
		a.prevASCII = true
		a.prevIdeograph = false
	case isCJKIdeograph(r):
		if a.prevASCII {
			penalty = cjkLatinAdjacencyPenalty
		}
		a.prevIdeograph = true
		a.prevASCII = false
	default:
		a.prevIdeograph = false
		a.prevASCII = false
	}
	return penalty
}

// cjkStats tracks the raw ASCII-letter-to-CJK-pair mix the elimination
// cascade's sanity filters consult: genuine CJK prose is overwhelmingly
// two-byte pairs with only incidental Latin identifiers or punctuation
// mixed in, so a candidate whose "CJK" score came mostly from coincidental
// two-byte alignments against a Latin-heavy stream should not survive the
// cascade on raw score alone.
type cjkStats struct {
	asciiLetters int64
	pairs        int64
}

func (s *cjkStats) letter(r rune) {
	if r < 0x80 && isASCIILetter(r) {
		s.asciiLetters++
	}
}

func (s *cjkStats) pair() { s.pairs++ }

// asciiCJKRatioSane reports whether the observed mix of ASCII letters to
// CJK two-byte pairs is consistent with genuine CJK prose.
func (s *cjkStats) asciiCJKRatioSane() bool {
	if s.pairs == 0 {
		return s.asciiLetters == 0
	}
	return s.asciiLetters <= s.pairs*4
}

// cjkSanityChecker is implemented by every CJK multi-byte candidate;
// eliminateCJK consults it to individually knock out a candidate whose
// byte statistics are implausible before falling back to cjkPriority.
type cjkSanityChecker interface {
	sane() bool
}

// utf8Candidate verifies the stream is well-formed UTF-8, carrying a
// truncated trailing sequence across Feed calls. It is a structural
// validity check, not a scored discipline; see the UTF-8 gate in
// arbitration.
type utf8Candidate struct {
	pending []byte
}

func (c *utf8Candidate) encoding() EncodingID { return UTF8 }

func (c *utf8Candidate) feed(buf []byte, last bool) bool {
	data := buf
	if len(c.pending) > 0 {
		data = append(append([]byte(nil), c.pending...), buf...)
		c.pending = nil
	}
	for len(data) > 0 {
		if !utf8.FullRune(data) {
			if last {
				return true
			}
			c.pending = append([]byte(nil), data...)
			return false
		}
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return true
		}
		data = data[size:]
	}
	return false
}

func (c *utf8Candidate) liveScore() (int64, bool) { return 0, true }

// gbkCandidate implements GBK/GB18030 scoring: ideograph lead-byte
// frequency banding (0xA1..0xD7 level-1 with a frequency bonus,
// 0xD8..0xFE level-2, everything else outside the EUC-compatible range
// unscored), the PUA whitelist penalty, and CJK/Latin adjacency.
type gbkCandidate struct {
	dec     *decoderadapter.Decoder
	adj     cjkAdjacency
	lead    leadByteWalker
	pending []rune
	stats   cjkStats

	euRangePairs     int64
	nonEUCRangePairs int64
	puaGood          int64
	puaBad           int64

	score int64
}

func newGBKCandidate() *gbkCandidate { return &gbkCandidate{dec: decoderadapter.NewGBK()} }

func (c *gbkCandidate) encoding() EncodingID { return GBK }

func (c *gbkCandidate) feed(buf []byte, last bool) bool {
	st := c.dec.Feed(buf, last, func(r rune) { c.scoreRune(r) })
	if st == decoderadapter.Malformed {
		return true
	}
	c.lead.walk(buf, isGBKLead, func(lead, trail byte) {
		_ = trail
		c.bandPair(lead)
	}, func(byte) {})
	return false
}

func (c *gbkCandidate) scoreRune(r rune) {
	c.score += c.adj.step(r)
	c.stats.letter(r)
	if r >= 0x80 {
		c.pending = append(c.pending, r)
	}
	switch {
	case r >= 0xE000 && r <= 0xF8FF:
		if class.IsGB18030RequiredPUA(r) {
			c.puaGood++
			c.score += ideographOtherBonus
		} else {
			c.puaBad++
			c.score += gbkPUAPenalty
		}
	case isFullwidthPunctuation(r):
		c.score += distinctiveFullwidthPunctuationBonus
	case isChineseDistinctivePunctuation(r):
		c.score += chineseDistinctivePunctuationBonus
	}
}

// bandPair consumes the next pending decoded rune and scores it by the
// raw GBK lead byte that produced it, since the decoded rune alone does
// not expose which EUC-range band the lead byte fell in.
func (c *gbkCandidate) bandPair(lead byte) {
	c.stats.pair()
	if lead >= 0xA1 {
		c.euRangePairs++
	} else {
		c.nonEUCRangePairs++
	}
	if len(c.pending) == 0 {
		return
	}
	r := c.pending[0]
	c.pending = c.pending[1:]
	if !isCJKIdeograph(r) {
		return
	}
	switch {
	case lead >= 0xA1 && lead <= 0xD7:
		c.score += ideographLevel1Bonus + class.FrequentSimplifiedBonus(r)
	case lead >= 0xD8 && lead <= 0xFE:
		c.score += ideographLevel2Bonus
	}
}

func isGBKLead(b byte) bool { return b >= 0x81 && b <= 0xFE }

func (c *gbkCandidate) liveScore() (int64, bool) { return c.score, true }

// sane reports whether GBK's PUA usage and lead-byte range are
// consistent with genuine GBK/GB18030 text: real data stays mostly
// within the EUC-compatible lead-byte range and rarely hits
// non-whitelisted PUA code points.
func (c *gbkCandidate) sane() bool {
	if !c.stats.asciiCJKRatioSane() {
		return false
	}
	if c.puaBad > 0 && c.puaBad*3 > c.puaGood+c.euRangePairs+c.nonEUCRangePairs {
		return false
	}
	if c.nonEUCRangePairs > c.euRangePairs {
		return false
	}
	return true
}

// leadByteWalker re-derives the raw lead/trail byte pair a multi-byte
// candidate's decoder already validated, purely to band-score it by lead
// byte (decoded code points alone do not expose which lead-byte band
// produced them).
type leadByteWalker struct {
	pendingLead byte
	hasPending  bool
}

// walk calls score(lead, trail) for every two-byte sequence it recognizes
// via isLead, and single(b) for every other byte. It carries an odd
// trailing lead byte across calls.
func (w *leadByteWalker) walk(buf []byte, isLead func(byte) bool, score func(lead, trail byte), single func(b byte)) {
	i := 0
	if w.hasPending && len(buf) > 0 {
		score(w.pendingLead, buf[0])
		w.hasPending = false
		i = 1
	}
	for ; i < len(buf); i++ {
		b := buf[i]
		if isLead(b) {
			if i+1 < len(buf) {
				score(b, buf[i+1])
				i++
			} else {
				w.pendingLead = b
				w.hasPending = true
			}
			continue
		}
		single(b)
	}
}

// shiftJISCandidate implements Shift_JIS: half-width kana is disqualifying
// as the very first non-ASCII byte seen (implausible as the start of
// genuine Shift_JIS text), penalized thereafter; kana and kanji two-byte
// pairs are scored separately; the ambiguous 0x92 lead byte defers its
// score until the following transition resolves it.
type shiftJISCandidate struct {
	dec     *decoderadapter.Decoder
	lead    leadByteWalker
	adj     cjkAdjacency
	pending []rune
	stats   cjkStats

	seenNonASCII bool
	havePending  bool
	pendingScore int64

	score int64
}

func newShiftJISCandidate() *shiftJISCandidate {
	return &shiftJISCandidate{dec: decoderadapter.NewShiftJIS()}
}

func (c *shiftJISCandidate) encoding() EncodingID { return ShiftJIS }

func (c *shiftJISCandidate) feed(buf []byte, last bool) bool {
	if st := c.dec.Feed(buf, last, func(r rune) {
		c.score += c.adj.step(r)
		c.stats.letter(r)
		if r >= 0x80 {
			c.pending = append(c.pending, r)
		}
	}); st == decoderadapter.Malformed {
		return true
	}
	disqualify := false
	c.lead.walk(buf, isShiftJISLead,
		func(lead, trail byte) {
			c.stats.pair()
			first := !c.seenNonASCII
			c.seenNonASCII = true
			r := c.nextPending()
			band := c.bandKanjiKana(lead, trail, r, first)
			if lead == 0x92 {
				// 0x92 is also windows-1252's right single quotation
				// mark: stage the score rather than commit it, since
				// whether this was really Shift_JIS kanji is only
				// confirmed by what follows.
				c.commitPending()
				c.havePending = true
				c.pendingScore = band
				return
			}
			c.commitPending()
			c.score += band
		},
		func(b byte) {
			if b >= 0xA1 && b <= 0xDF {
				c.commitPending()
				if !c.seenNonASCII {
					disqualify = true
					return
				}
				c.score += shiftJISHalfwidthKanaPenalty
				c.seenNonASCII = true
				return
			}
			if isASCIILetter(rune(b)) {
				// An ASCII letter following the ambiguous 0x92 lead
				// means that pair was never genuinely confirmed as
				// Shift_JIS kanji; drop it rather than score it.
				c.havePending = false
			}
			if b >= 0x80 {
				c.seenNonASCII = true
			}
		})
	if last {
		c.commitPending()
	}
	return disqualify
}

func (c *shiftJISCandidate) nextPending() rune {
	if len(c.pending) == 0 {
		return 0
	}
	r := c.pending[0]
	c.pending = c.pending[1:]
	return r
}

func (c *shiftJISCandidate) commitPending() {
	if c.havePending {
		c.score += c.pendingScore
		c.havePending = false
		c.pendingScore = 0
	}
}

// bandKanjiKana scores r, already popped off the decode queue for the
// two-byte sequence (lead, trail), as kana, near-obsolete kana, or
// banded kanji. first suppresses the kana bonus for the very first
// non-ASCII codepoint seen, to keep parity with Big5's initial-hanzi
// handling rather than giving kana a free head start.
func (c *shiftJISCandidate) bandKanjiKana(lead, trail byte, r rune, first bool) int64 {
	switch {
	case isObsoleteKana(r):
		if first {
			return -obsoleteKanaBonus
		}
		return obsoleteKanaBonus
	case isKana(r):
		if first {
			return -kanaBonus
		}
		return kanaBonus
	case isCJKIdeograph(r):
		if lead < 0x98 || (lead == 0x98 && trail < 0x73) {
			return ideographLevel1Bonus + class.FrequentKanjiBonus(r)
		}
		return ideographLevel2Bonus
	default:
		return 0
	}
}

func isShiftJISLead(b byte) bool {
	return (b >= 0x81 && b <= 0x9F) || (b >= 0xE0 && b <= 0xFC)
}

func (c *shiftJISCandidate) liveScore() (int64, bool) { return c.score, true }

func (c *shiftJISCandidate) sane() bool { return c.stats.asciiCJKRatioSane() }

// eucJPStage tracks where eucJPCandidate is within a multi-byte sequence:
// a plain two-byte pair, an SS2 (0x8E) half-width-kana escape, or an SS3
// (0x8F) JIS X 0212 escape, the last of which spans two further bytes.
type eucJPStage int

const (
	eucJPStageNormal eucJPStage = iota
	eucJPStageSS2Trail
	eucJPStageSS3Lead
	eucJPStageSS3Trail
	eucJPStageTrail
)

// eucJPCandidate implements EUC-JP: the SS2-prefixed (0x8E) half-width
// kana gets the same first-byte disqualify/penalty treatment as
// Shift_JIS, kana and kanji two-byte pairs are scored separately, and an
// SS3 (0x8F) JIS X 0212 prefix lowers the following pair's band.
type eucJPCandidate struct {
	dec     *decoderadapter.Decoder
	adj     cjkAdjacency
	pending []rune
	stats   cjkStats

	stage        eucJPStage
	leadByte     byte
	seenNonASCII bool

	score int64
}

func newEUCJPCandidate() *eucJPCandidate { return &eucJPCandidate{dec: decoderadapter.NewEUCJP()} }

func (c *eucJPCandidate) encoding() EncodingID { return EUCJP }

func (c *eucJPCandidate) feed(buf []byte, last bool) bool {
	if st := c.dec.Feed(buf, last, func(r rune) {
		c.score += c.adj.step(r)
		c.stats.letter(r)
		if r >= 0x80 {
			c.pending = append(c.pending, r)
		}
	}); st == decoderadapter.Malformed {
		return true
	}
	disqualify := false
	for _, b := range buf {
		switch c.stage {
		case eucJPStageNormal:
			switch {
			case b == 0x8E:
				c.stage = eucJPStageSS2Trail
			case b == 0x8F:
				c.stage = eucJPStageSS3Lead
			case b >= 0xA1 && b <= 0xFE:
				c.leadByte = b
				c.stage = eucJPStageTrail
			}
		case eucJPStageSS2Trail:
			c.stage = eucJPStageNormal
			c.nextPending()
			if !c.seenNonASCII {
				disqualify = true
				continue
			}
			c.score += shiftJISHalfwidthKanaPenalty
		case eucJPStageSS3Lead:
			c.leadByte = b
			c.stage = eucJPStageSS3Trail
		case eucJPStageSS3Trail:
			c.stage = eucJPStageNormal
			c.stats.pair()
			r := c.nextPending()
			c.score += c.bandKanjiKana(c.leadByte, r, true)
		case eucJPStageTrail:
			c.stage = eucJPStageNormal
			c.stats.pair()
			r := c.nextPending()
			c.score += c.bandKanjiKana(c.leadByte, r, false)
		}
	}
	return disqualify
}

func (c *eucJPCandidate) nextPending() rune {
	if len(c.pending) == 0 {
		return 0
	}
	r := c.pending[0]
	c.pending = c.pending[1:]
	return r
}

// bandKanjiKana scores r as kana, near-obsolete kana, or banded kanji.
// jisx0212 lowers the band unconditionally, since the JIS X 0212
// supplement carries no level-1 frequency data. The initial codepoint's
// kana bonus is inverted to a penalty, offsetting the kana advantage
// EUC-JP would otherwise carry against Big5 on short, ambiguous input.
func (c *eucJPCandidate) bandKanjiKana(lead byte, r rune, jisx0212 bool) int64 {
	first := !c.seenNonASCII
	c.seenNonASCII = true
	switch {
	case isObsoleteKana(r):
		if first {
			return -obsoleteKanaBonus
		}
		return obsoleteKanaBonus
	case isKana(r):
		if first {
			return -kanaBonus
		}
		return kanaBonus
	case isCJKIdeograph(r):
		if !jisx0212 && lead < 0xD0 {
			return ideographLevel1Bonus + class.FrequentKanjiBonus(r)
		}
		return ideographLevel2Bonus
	default:
		return 0
	}
}

func (c *eucJPCandidate) liveScore() (int64, bool) { return c.score, true }

func (c *eucJPCandidate) sane() bool { return c.stats.asciiCJKRatioSane() }

// big5Candidate implements Big5: ideograph lead-byte band scoring plus
// CJK/Latin adjacency. Big5 has no kana, so no half-width-kana handling
// applies. Lead-byte banding only applies when the decoded rune is
// actually a CJK ideograph; Big5's own pre-composed Latin letters Ê/ê
// (U+00CA/U+00EA) fall in the same lead-byte range but are not hanzi.
type big5Candidate struct {
	dec     *decoderadapter.Decoder
	lead    leadByteWalker
	adj     cjkAdjacency
	pending []rune
	stats   cjkStats

	score int64
}

func newBig5Candidate() *big5Candidate { return &big5Candidate{dec: decoderadapter.NewBig5()} }

func (c *big5Candidate) encoding() EncodingID { return Big5 }

func (c *big5Candidate) feed(buf []byte, last bool) bool {
	st := c.dec.Feed(buf, last, func(r rune) {
		c.score += c.adj.step(r)
		c.stats.letter(r)
		if r >= 0x80 {
			c.pending = append(c.pending, r)
		}
	})
	if st == decoderadapter.Malformed {
		return true
	}
	c.lead.walk(buf, isBig5Lead, func(lead, trail byte) {
		_ = trail
		c.bandPair(lead)
	}, func(byte) {})
	return false
}

func (c *big5Candidate) bandPair(lead byte) {
	c.stats.pair()
	if len(c.pending) == 0 {
		return
	}
	r := c.pending[0]
	c.pending = c.pending[1:]
	if r == 0x00CA || r == 0x00EA || !isCJKIdeograph(r) {
		c.score += ideographOtherBonus
		return
	}
	if lead >= 0xA4 && lead <= 0xC6 {
		c.score += ideographLevel1Bonus
	} else {
		c.score += ideographLevel2Bonus
	}
}

func isBig5Lead(b byte) bool { return b >= 0xA1 && b <= 0xFE }

func (c *big5Candidate) liveScore() (int64, bool) { return c.score, true }

func (c *big5Candidate) sane() bool { return c.stats.asciiCJKRatioSane() }

// eucKRCandidate implements EUC-KR: modern (KS X 1001 Wansung) Hangul is
// scored higher than the rarer Hanja/extension rows, a long
// Hangul/Hanja run is penalized per syllable past the cutoff, and Hanja
// directly following Hangul is penalized (rare in real Korean text).
type eucKRCandidate struct {
	dec          *decoderadapter.Decoder
	adj          cjkAdjacency
	lead         leadByteWalker
	stats        cjkStats
	runLen       int
	prevWasHanja bool

	modernCount int64
	otherCount  int64
	hanjaCount  int64

	score int64
}

func newEUCKRCandidate() *eucKRCandidate { return &eucKRCandidate{dec: decoderadapter.NewEUCKR()} }

func (c *eucKRCandidate) encoding() EncodingID { return EUCKR }

func (c *eucKRCandidate) feed(buf []byte, last bool) bool {
	if st := c.dec.Feed(buf, last, func(r rune) {
		c.score += c.adj.step(r)
		c.stats.letter(r)
	}); st == decoderadapter.Malformed {
		return true
	}
	c.lead.walk(buf, isEUCKRLead, func(lead, trail byte) {
		_ = trail
		c.stats.pair()
		c.runLen++
		isHanja := lead >= 0xCA && lead <= 0xFD
		switch {
		case isHanja:
			c.hanjaCount++
			if !c.prevWasHanja && c.runLen > 1 {
				c.score += hanjaAfterHangulPenalty
			} else {
				c.score += hanjaBonus
			}
		case lead >= 0xB0 && lead <= 0xC8:
			c.modernCount++
			c.score += modernHangulEUCBonus
		default:
			c.otherCount++
			c.score += otherHangulBonus
		}
		c.prevWasHanja = isHanja
		if c.runLen > koreanLongWordCutoff {
			c.score += koreanLongWordPenalty
		}
	}, func(b byte) {
		c.runLen = 0
		c.prevWasHanja = false
	})
	return false
}

func isEUCKRLead(b byte) bool { return b >= 0xA1 && b <= 0xFE }

func (c *eucKRCandidate) liveScore() (int64, bool) { return c.score, true }

// sane reports whether EUC-KR's Hangul/Hanja mix is consistent with
// genuine Korean text: modern Wansung-range Hangul should dominate the
// rarer extension rows, and Hanja (rare in ordinary prose) must stay
// within a modest budget of the total Hangul+Hanja pair count.
func (c *eucKRCandidate) sane() bool {
	if !c.stats.asciiCJKRatioSane() {
		return false
	}
	hangul := c.modernCount + c.otherCount
	if hangul > 0 && c.otherCount*2 > c.modernCount {
		return false
	}
	total := hangul + c.hanjaCount
	if total > 0 && c.hanjaCount*2 > total {
		return false
	}
	return true
}

// iso2022JPCandidate is a pure disqualification gate: ISO-2022-JP is
// structurally distinguishable from every other candidate by its escape
// sequences, so it carries no score, only validity.
type iso2022JPCandidate struct {
	dec *decoderadapter.Decoder
}

func newISO2022JPCandidate() *iso2022JPCandidate {
	return &iso2022JPCandidate{dec: decoderadapter.NewISO2022JP()}
}

func (c *iso2022JPCandidate) encoding() EncodingID { return ISO2022JP }

func (c *iso2022JPCandidate) feed(buf []byte, last bool) bool {
	return c.dec.Feed(buf, last, func(rune) {}) == decoderadapter.Malformed
}

func (c *iso2022JPCandidate) liveScore() (int64, bool) { return 0, true }

// newMultiByteRoster builds the seven multi-byte/ISO-2022-JP candidates in
// EncodingID order (UTF8, GBK, ShiftJIS, EUCJP, Big5, EUCKR, ISO2022JP).
func newMultiByteRoster() []innerCandidate {
	return []innerCandidate{
		&utf8Candidate{},
		newGBKCandidate(),
		newShiftJISCandidate(),
		newEUCJPCandidate(),
		newBig5Candidate(),
		newEUCKRCandidate(),
		newISO2022JPCandidate(),
	}
}
