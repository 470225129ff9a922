// Package stream provides a synchronous, io.Reader-based entry point
// over the chardet/sniff packages: run the BOM/meta-charset prescan
// first, and only fall back to the statistical Detector when neither
// fires.
//
// Grounded on _examples/MeKo-Christian-justgohtml/stream/stream.go's
// role as the package's streaming front door, rewritten synchronous
// (no channel/goroutine) since encoding detection has no notion of
// incremental "events" to emit, only a single final verdict.
package stream

import (
	"io"

	"github.com/MeKo-Christian/chardet"
	"github.com/MeKo-Christian/chardet/diagnostics"
	"github.com/MeKo-Christian/chardet/sniff"
)

const defaultChunkSize = 4096

// sniffCap bounds how many bytes Detect will buffer before giving up on
// the BOM/meta-charset prescan and committing to the statistical
// engine, matching sniff.Scan's own internal bound.
const sniffCap = 65536

// Detect reads r to EOF (or until it can answer early) and returns the
// best-guess encoding for its contents.
func Detect(r io.Reader, opts ...Option) (sniff.EncodingID, diagnostics.Notices, error) {
	cfg := newConfig(opts...)
	var notices diagnostics.Notices

	prescanBuf := make([]byte, 0, sniffCap)
	chunk := make([]byte, cfg.chunkSize)
	eof := false

	var result sniff.Result
	sniffed := false
	for !eof && len(prescanBuf) < sniffCap && !sniffed {
		n, err := r.Read(chunk)
		if n > 0 {
			prescanBuf = append(prescanBuf, chunk[:n]...)
			switch res, ok := sniff.Scan(prescanBuf); {
			case ok && res.Source == sniff.SourceBOM:
				// A byte-order mark is unambiguous and always wins,
				// outranking both a meta declaration and a transport hint.
				result, sniffed = res, true
			case cfg.transportHint == "":
				if ok {
					result, sniffed = res, true
				}
			case ok && len(prescanBuf) >= 3:
				// No BOM in the buffered prefix, and a meta declaration was
				// found; the transport hint still outranks it if valid.
				if enc, recognized := sniff.ParseLabel(cfg.transportHint); recognized {
					result, sniffed = sniff.Result{Encoding: enc, Source: sniff.SourceTransport}, true
				} else {
					if cfg.collectNotices {
						notices = notices.Add(diagnostics.UnsupportedTransportHint)
					}
					cfg.transportHint = ""
					result, sniffed = res, true
				}
			case len(prescanBuf) >= 3:
				// No BOM, no meta declaration yet; a valid transport hint
				// can settle the question without waiting for more data.
				if enc, recognized := sniff.ParseLabel(cfg.transportHint); recognized {
					result, sniffed = sniff.Result{Encoding: enc, Source: sniff.SourceTransport}, true
				} else {
					if cfg.collectNotices {
						notices = notices.Add(diagnostics.UnsupportedTransportHint)
					}
					cfg.transportHint = ""
				}
			}
		}
		switch {
		case err == io.EOF:
			eof = true
		case err != nil:
			return 0, notices, err
		}
	}

	if sniffed {
		if cfg.collectNotices {
			switch result.Source {
			case sniff.SourceBOM:
				notices = notices.Add(diagnostics.BOMOverridesHint)
			case sniff.SourceMeta:
				notices = notices.Add(diagnostics.MetaCharsetOverridesHint)
			case sniff.SourceTransport:
				notices = notices.Add(diagnostics.TransportHintUsed)
			}
		}
		if !eof {
			if _, err := io.Copy(io.Discard, r); err != nil {
				return result.Encoding, notices, err
			}
		}
		return result.Encoding, notices, nil
	}

	det := chardet.NewDetector()
	det.Feed(prescanBuf, eof)
	for !eof {
		n, err := r.Read(chunk)
		switch {
		case err == io.EOF:
			eof = true
			det.Feed(chunk[:n], true)
		case err != nil:
			return 0, notices, err
		default:
			det.Feed(chunk[:n], false)
		}
	}

	guess := det.Guess(cfg.tldHint, cfg.allowUTF8)
	if cfg.collectNotices && !det.AnyCandidateAlive() {
		notices = notices.Add(diagnostics.EveryCandidateDisqualified)
	}
	return chardetToSniff(guess), notices, nil
}

// chardetToSniff re-expresses a statistical Detector verdict as the
// superset sniff.EncodingID enum Detect returns, so callers get one
// result type regardless of which path answered.
func chardetToSniff(id chardet.EncodingID) sniff.EncodingID {
	switch id {
	case chardet.Windows1252:
		return sniff.Windows1252
	case chardet.Windows1251:
		return sniff.Windows1251
	case chardet.Windows1250:
		return sniff.Windows1250
	case chardet.ISO88592:
		return sniff.ISO88592
	case chardet.Windows1256:
		return sniff.Windows1256
	case chardet.Windows1254:
		return sniff.Windows1254
	case chardet.Windows874:
		return sniff.Windows874
	case chardet.Windows1255:
		return sniff.Windows1255
	case chardet.Windows1253:
		return sniff.Windows1253
	case chardet.ISO88597:
		return sniff.ISO88597
	case chardet.Windows1257:
		return sniff.Windows1257
	case chardet.KOI8U:
		return sniff.KOI8U
	case chardet.IBM866:
		return sniff.IBM866
	case chardet.ISO88596:
		return sniff.ISO88596
	case chardet.Windows1258:
		return sniff.Windows1258
	case chardet.ISO88594:
		return sniff.ISO88594
	case chardet.ISO88595:
		return sniff.ISO88595
	case chardet.ISO88598:
		return sniff.ISO88598
	case chardet.UTF8:
		return sniff.UTF8
	case chardet.GBK:
		return sniff.GBK
	case chardet.ShiftJIS:
		return sniff.ShiftJIS
	case chardet.EUCJP:
		return sniff.EUCJP
	case chardet.Big5:
		return sniff.Big5
	case chardet.EUCKR:
		return sniff.EUCKR
	case chardet.ISO2022JP:
		return sniff.ISO2022JP
	default:
		return sniff.Windows1252
	}
}
