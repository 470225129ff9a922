package chardet

import "github.com/MeKo-Christian/chardet/internal/class"

// cjkPriority is the tie-break order the elimination cascade falls back
// to once TLD hinting does not single out a winner.
var cjkPriority = []EncodingID{ShiftJIS, GBK, EUCJP, EUCKR, Big5}

// cjkMargin is how close two CJK candidates' scores must be before the
// elimination cascade treats them as tied rather than the higher score
// simply winning outright.
const cjkMargin = 10

// Guess arbitrates the final answer from the current candidate state.
// tldHint is the last label of a hostname the bytes were fetched from
// (e.g. "jp", "cn"), or nil if unknown; it only breaks ties among
// otherwise-equally-plausible CJK candidates, never overrides a clear
// single-byte or UTF-8 winner. allowUTF8 disables the UTF-8 gate when
// the caller already knows UTF-8 is not an acceptable answer (see
// DESIGN.md).
func (d *Detector) Guess(tldHint []byte, allowUTF8 bool) EncodingID {
	if d.nonASCIISeen == 0 && d.escSeen {
		if _, alive := d.candidates[ISO2022JP].score(); alive {
			return ISO2022JP
		}
	}

	if allowUTF8 && d.nonASCIISeen > 0 {
		if _, alive := d.candidates[UTF8].score(); alive {
			return UTF8
		}
	}

	best, bestScore := d.maxScoreCandidate()
	best = d.hebrewTiebreak(best, bestScore)
	best = d.eliminateCJK(best, tldHint)
	return best
}

// maxScoreCandidate picks the highest-scoring live candidate, excluding
// UTF-8 (handled by the gate above) and visual Hebrew (ISO-8859-8, which
// only wins via the Hebrew tie-break, never the raw max). Windows-1252
// is the hard default when every candidate is disqualified or nothing
// beats a score of 0.
func (d *Detector) maxScoreCandidate() (EncodingID, int64) {
	best := Windows1252
	var bestScore int64

	for i := 0; i < numCandidates; i++ {
		id := EncodingID(i)
		if id == UTF8 || id == ISO88598 || id == ISO2022JP {
			continue
		}
		v, alive := d.candidates[i].score()
		if !alive {
			continue
		}
		if v > bestScore {
			bestScore = v
			best = id
		}
	}
	return best, bestScore
}

// hebrewTiebreak reconsiders a logical-Hebrew (Windows-1255) win against
// visual-Hebrew (ISO-8859-8) using each candidate's observed
// plausible-punctuation balance, since the two encodings are otherwise
// indistinguishable by bigram score alone.
func (d *Detector) hebrewTiebreak(best EncodingID, bestScore int64) EncodingID {
	if best != Windows1255 {
		return best
	}
	visualScore, visualAlive := d.candidates[ISO88598].score()
	if !visualAlive || visualScore < bestScore-cjkMargin {
		return best
	}
	logical, ok1 := d.candidates[Windows1255].inner.(*hebrewCandidate)
	visual, ok2 := d.candidates[ISO88598].inner.(*hebrewCandidate)
	if !ok1 || !ok2 {
		return best
	}
	if visual.punctuationBalance() > logical.punctuationBalance() {
		return ISO88598
	}
	return best
}

// eliminateCJK is the CJK elimination cascade: each surviving CJK
// candidate is first checked against its own sanity filters (ASCII/CJK
// pair ratio, PUA ratio, GBK EUC-range dominance, EUC-KR Hangul/Hanja
// ratios), which individually knock out a candidate whose raw score
// looks competitive but whose byte statistics are implausible for its
// encoding. When more than one candidate survives that cut and they are
// within cjkMargin of each other, prefer whichever the TLD hints at,
// and otherwise fall back to cjkPriority.
func (d *Detector) eliminateCJK(best EncodingID, tldHint []byte) EncodingID {
	switch best {
	case GBK, ShiftJIS, EUCJP, Big5, EUCKR:
	default:
		return best
	}

	type contender struct {
		id    EncodingID
		score int64
	}
	var alive []contender
	bestScore := int64(0)
	haveBest := false
	for _, id := range cjkPriority {
		c := d.candidates[id]
		v, ok := c.score()
		if !ok {
			continue
		}
		if checker, isChecker := c.inner.(cjkSanityChecker); isChecker && !checker.sane() {
			continue
		}
		alive = append(alive, contender{id, v})
		if !haveBest || v > bestScore {
			bestScore = v
			haveBest = true
		}
	}
	if len(alive) == 0 {
		return best
	}
	if len(alive) == 1 {
		return alive[0].id
	}

	var near []EncodingID
	for _, c := range alive {
		if bestScore-c.score <= cjkMargin {
			near = append(near, c.id)
		}
	}
	if len(near) == 1 {
		return near[0]
	}

	if hinted := tldPreferredCJK(class.ClassifyTLD(tldHint)); hinted != -1 {
		for _, id := range near {
			if id == hinted {
				return id
			}
		}
	}
	for _, id := range cjkPriority {
		for _, n := range near {
			if n == id {
				return id
			}
		}
	}
	return near[0]
}

// tldPreferredCJK maps a classified TLD to the CJK encoding it hints at,
// or -1 if the TLD carries no CJK signal.
func tldPreferredCJK(tld class.TLD) EncodingID {
	switch tld {
	case class.TLDJP:
		return ShiftJIS
	case class.TLDCN:
		return GBK
	case class.TLDKR:
		return EUCKR
	case class.TLDTW:
		return Big5
	default:
		return EncodingID(-1)
	}
}
