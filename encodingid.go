// Package chardet implements a statistical detector for legacy,
// non-UTF-8-tagged byte streams, choosing a single best-guess encoding
// from a closed family of single-byte and CJK multi-byte legacy
// encodings plus UTF-8 itself.
//
// The detector is a parallel candidate scoring engine: a fixed roster of
// per-encoding Candidates consumes the byte stream, maintains a
// plausibility score, may disqualify itself on structurally impossible
// input, and the Detector arbitrates a single winner once the stream
// ends. See Detector, NewDetector, and Guess.
package chardet

// EncodingID names one member of the closed family of encodings this
// detector can return. The zero value is Windows1252, the hard default.
type EncodingID int

const (
	Windows1252 EncodingID = iota
	Windows1251
	Windows1250
	ISO88592
	Windows1256
	Windows1254
	Windows874
	Windows1255
	Windows1253
	ISO88597
	Windows1257
	KOI8U
	IBM866
	ISO88596
	Windows1258
	ISO88594
	ISO88595
	ISO88598
	UTF8
	GBK
	ShiftJIS
	EUCJP
	Big5
	EUCKR
	ISO2022JP
)

var encodingNames = [...]string{
	Windows1252: "windows-1252",
	Windows1251: "windows-1251",
	Windows1250: "windows-1250",
	ISO88592:    "iso-8859-2",
	Windows1256: "windows-1256",
	Windows1254: "windows-1254",
	Windows874:  "windows-874",
	Windows1255: "windows-1255",
	Windows1253: "windows-1253",
	ISO88597:    "iso-8859-7",
	Windows1257: "windows-1257",
	KOI8U:       "koi8-u",
	IBM866:      "ibm866",
	ISO88596:    "iso-8859-6",
	Windows1258: "windows-1258",
	ISO88594:    "iso-8859-4",
	ISO88595:    "iso-8859-5",
	ISO88598:    "iso-8859-8",
	UTF8:        "UTF-8",
	GBK:         "GBK",
	ShiftJIS:    "Shift_JIS",
	EUCJP:       "EUC-JP",
	Big5:        "Big5",
	EUCKR:       "EUC-KR",
	ISO2022JP:   "ISO-2022-JP",
}

// String returns the canonical encoding name (e.g. "windows-1252").
func (e EncodingID) String() string {
	if int(e) < 0 || int(e) >= len(encodingNames) {
		return "unknown"
	}
	return encodingNames[e]
}

// firstMultiByte is the roster index of the first multi-byte candidate
// (UTF8); indices below it are the 18 single-byte candidates in
// original_source/src/lib.rs order (see internal/class.SingleByteRoster).
const firstMultiByte = int(UTF8)

// numCandidates is the fixed candidate roster size.
const numCandidates = int(ISO2022JP) + 1
