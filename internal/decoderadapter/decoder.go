// Package decoderadapter wraps golang.org/x/text/encoding Transformers
// into the minimal incremental decoder interface the multi-byte
// candidates need: feed bytes, get told whether the input was
// structurally malformed. It never reports the decoded text to the
// caller; the candidates only need Malformed-vs-not and the decoded
// code units to score, never the transformed byte stream as output.
//
// Grounded on other_examples/1c2312af_ericlevine-zxinggo__charset-guess.go.go,
// which already wires golang.org/x/text/encoding/japanese +
// golang.org/x/text/encoding/simplifiedchinese + golang.org/x/text/transform
// for exactly this family of encodings.
package decoderadapter

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

// Status reports the outcome of a decode attempt. InputEmpty means the
// chunk was fully consumed with no error; Malformed means the candidate
// must disqualify.
type Status int

const (
	InputEmpty Status = iota
	Malformed
)

const dstBufSize = 4096

// Decoder incrementally decodes bytes of one multi-byte legacy encoding
// into runes, tracking only whether the stream is still well-formed.
type Decoder struct {
	t transform.Transformer
}

// New wraps a transform.Transformer (typically enc.NewDecoder() from an
// x/text encoding.Encoding) as a Decoder.
func New(t transform.Transformer) *Decoder { return &Decoder{t: t} }

// NewShiftJIS returns a Decoder for Shift_JIS.
func NewShiftJIS() *Decoder { return New(japanese.ShiftJIS.NewDecoder()) }

// NewEUCJP returns a Decoder for EUC-JP.
func NewEUCJP() *Decoder { return New(japanese.EUCJP.NewDecoder()) }

// NewISO2022JP returns a Decoder for ISO-2022-JP.
func NewISO2022JP() *Decoder { return New(japanese.ISO2022JP.NewDecoder()) }

// NewEUCKR returns a Decoder for EUC-KR.
func NewEUCKR() *Decoder { return New(korean.EUCKR.NewDecoder()) }

// NewBig5 returns a Decoder for Big5.
func NewBig5() *Decoder { return New(traditionalchinese.Big5.NewDecoder()) }

// NewGBK returns a Decoder for GBK/GB18030.
func NewGBK() *Decoder { return New(simplifiedchinese.GB18030.NewDecoder()) }

// Feed decodes buffer through the wrapped transformer, invoking emit for
// every rune successfully produced. It returns Malformed if buffer
// contained a byte sequence this encoding cannot represent; the caller
// must disqualify its candidate and never call Feed again.
func (d *Decoder) Feed(buffer []byte, last bool, emit func(r rune)) Status {
	src := buffer
	dst := make([]byte, dstBufSize)

	for {
		nDst, nSrc, err := d.t.Transform(dst, src, last)
		if !decodeRunes(dst[:nDst], emit) {
			return Malformed
		}
		src = src[nSrc:]

		switch err {
		case nil:
			if len(src) == 0 {
				return InputEmpty
			}
		case transform.ErrShortDst:
			// Output buffer filled; loop again to drain the rest.
		case transform.ErrShortSrc:
			if last {
				// A genuinely truncated multi-byte sequence at end of
				// stream is malformed input, not a buffering artifact.
				return Malformed
			}
			return InputEmpty
		default:
			return Malformed
		}
	}
}

// decodeRunes walks UTF-8 bytes produced by the transformer and invokes
// emit for every decoded rune. It returns false on a U+FFFD, which the
// x/text decoders write in place of a byte sequence they cannot decode
// instead of returning an error.
func decodeRunes(b []byte, emit func(r rune)) bool {
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if size == 0 {
			return true
		}
		if r == utf8.RuneError {
			return false
		}
		emit(r)
		b = b[size:]
	}
	return true
}
