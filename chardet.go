package chardet

import "bytes"

// Detector is a parallel candidate scoring engine: feed it the byte
// stream of a document with unknown or untrusted encoding, then call
// Guess once the stream ends (or whenever a best-effort answer is
// needed mid-stream). The zero value is not usable; use NewDetector.
//
// Grounded on original_source/src/lib.rs's EncodingDetector, generalized
// from its 18-single-byte-only roster to a full 25-candidate roster
// adding UTF-8, the five CJK multi-byte encodings, and ISO-2022-JP.
type Detector struct {
	candidates [numCandidates]*candidate

	nonASCIISeen           uint64
	lastBeforeNonASCII     byte
	haveLastBeforeNonASCII bool
	escSeen                bool
}

// NewDetector builds a Detector with a fresh candidate roster.
func NewDetector() *Detector {
	d := &Detector{}
	idx := 0
	for _, inner := range newSingleByteRoster() {
		d.candidates[idx] = newCandidate(inner)
		idx++
	}
	for _, inner := range newMultiByteRoster() {
		d.candidates[idx] = newCandidate(inner)
		idx++
	}
	return d
}

func countNonASCII(buf []byte) uint64 {
	var n uint64
	for _, b := range buf {
		if b >= 0x80 {
			n++
		}
	}
	return n
}

// asciiValidUpTo returns the length of buf's leading run of ASCII bytes.
func asciiValidUpTo(buf []byte) int {
	for i, b := range buf {
		if b >= 0x80 {
			return i
		}
	}
	return len(buf)
}

func (d *Detector) feedImpl(buf []byte, last bool) {
	for _, c := range d.candidates {
		c.feed(buf, last)
	}
	d.nonASCIISeen += countNonASCII(buf)

	if last {
		// Single-byte disciplines only track word boundaries on the next
		// non-alphabetic byte, so the stream's final word never closes
		// out (and its word-length-gate/all-caps bookkeeping never
		// applies) without one more byte after it. A synthetic ASCII
		// space supplies that without perturbing nonASCIISeen or the
		// multi-byte candidates' own decoder-flush behavior.
		for i := 0; i < firstMultiByte; i++ {
			d.candidates[i].feed([]byte{' '}, true)
		}
	}
}

// Feed consumes the next chunk of the byte stream and reports whether
// any non-ASCII byte has been observed so far (across this and all
// prior Feed calls). Pass last=true on the final chunk so the single-byte
// candidates can close out their trailing word.
//
// Feed skip-ahead mirrors original_source/src/lib.rs's
// feed_without_guessing_impl: while the stream has been pure ASCII with
// no ESC byte, candidates are not actually fed (pure ASCII carries no
// discriminating signal), except that the single ASCII byte immediately
// preceding the first non-ASCII byte is replayed so a candidate's
// bigram scorer sees the correct predecessor class.
func (d *Detector) Feed(buf []byte, last bool) (nonASCIIPresent bool) {
	start := 0
	if d.nonASCIISeen == 0 && !d.escSeen {
		upTo := asciiValidUpTo(buf)
		if escIdx := bytes.IndexByte(buf[:upTo], 0x1B); escIdx >= 0 {
			d.escSeen = true
			start = escIdx
		} else {
			start = upTo
		}
		if start == len(buf) {
			if len(buf) > 0 {
				d.lastBeforeNonASCII = buf[len(buf)-1]
				d.haveLastBeforeNonASCII = true
			}
			if last {
				d.feedImpl(nil, true)
			}
			return d.nonASCIISeen > 0
		}
		if start > 0 {
			start--
		} else if d.haveLastBeforeNonASCII {
			d.feedImpl([]byte{d.lastBeforeNonASCII}, false)
		}
	}
	d.feedImpl(buf[start:], last)
	return d.nonASCIISeen > 0
}

// AnyCandidateAlive reports whether at least one candidate is still
// neither disqualified nor gated out. It is false only when every
// encoding in the roster found the input structurally impossible,
// in which case Guess still returns the Windows-1252 hard default.
func (d *Detector) AnyCandidateAlive() bool {
	for _, c := range d.candidates {
		if _, alive := c.score(); alive {
			return true
		}
	}
	return false
}

// findScore is a test-only accessor returning the candidate's current
// score, or nil if it is disqualified or gated out.
func (d *Detector) findScore(id EncodingID) *int64 {
	for _, c := range d.candidates {
		if c.encoding() != id {
			continue
		}
		v, alive := c.score()
		if !alive {
			return nil
		}
		return &v
	}
	return nil
}
