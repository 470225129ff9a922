package chardet

// innerCandidate is the per-discipline scoring state machine. Each of the
// disciplines (six single-byte, seven multi-byte/ISO-2022-JP) is one
// concrete type satisfying this interface; candidate dispatches on it
// through a tagged struct rather than a class hierarchy, mirroring
// original_source/src/lib.rs's InnerCandidate enum.
type innerCandidate interface {
	// feed consumes buf and reports whether the candidate must
	// disqualify (structurally impossible input).
	feed(buf []byte, last bool) (disqualify bool)

	// liveScore returns the candidate's current score, and whether it is
	// eligible to participate in arbitration at all (some single-byte
	// disciplines gate out short words rather than score them).
	liveScore() (score int64, eligible bool)

	// encoding identifies which EncodingID this candidate represents.
	encoding() EncodingID
}

// candidate wraps one innerCandidate with the disqualification latch
// every discipline shares.
type candidate struct {
	inner        innerCandidate
	disqualified bool
}

func newCandidate(inner innerCandidate) *candidate {
	return &candidate{inner: inner}
}

// feed routes buf to the candidate unless it is already disqualified; a
// disqualified candidate is never re-fed.
func (c *candidate) feed(buf []byte, last bool) {
	if c.disqualified {
		return
	}
	if c.inner.feed(buf, last) {
		c.disqualified = true
	}
}

// score returns the candidate's score and whether it is alive (neither
// disqualified nor gated out).
func (c *candidate) score() (value int64, alive bool) {
	if c.disqualified {
		return 0, false
	}
	s, eligible := c.inner.liveScore()
	return s, eligible
}

func (c *candidate) encoding() EncodingID { return c.inner.encoding() }
