// Package sniff implements the fast-path encoding prescan that runs
// ahead of the statistical detector: a byte-order mark, then a bounded
// scan of the first kilobyte of non-comment markup for a declared
// <meta charset>. Either one, if found, settles the question outright
// and the statistical engine never has to run.
//
// Grounded on
// _examples/MeKo-Christian-justgohtml/encoding/encoding.go's Decode/
// detectBOM/prescanForMetaCharset, rewritten against chardet's closed
// EncodingID roster instead of that package's open *Encoding type, and
// returning a detection verdict instead of decoded text.
package sniff

import (
	"bytes"
	"strings"
)

// Source names which prescan step produced a Result.
type Source int

const (
	// SourceNone means neither a BOM nor a meta declaration was found;
	// the caller should fall back to the statistical Detector.
	SourceNone Source = iota
	SourceBOM
	SourceMeta
	// SourceTransport means a caller-supplied transport hint (outside
	// Scan's own purview) settled the question. Scan itself never
	// produces this value; it exists so callers that layer a transport
	// hint on top of Scan, such as the stream package, can report it
	// through the same Result/Source shape.
	SourceTransport
)

func (s Source) String() string {
	switch s {
	case SourceBOM:
		return "bom"
	case SourceMeta:
		return "meta"
	case SourceTransport:
		return "transport"
	default:
		return "none"
	}
}

// EncodingID mirrors the parent package's closed roster plus the two
// UTF-16 variants a BOM can name, which the statistical detector never
// produces on its own.
type EncodingID int

const (
	UTF8 EncodingID = iota
	UTF16LE
	UTF16BE
	Windows1252
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
	GBK
	ShiftJIS
	EUCJP
	Big5
	EUCKR
	ISO2022JP
)

var encodingNames = [...]string{
	UTF8: "UTF-8", UTF16LE: "UTF-16LE", UTF16BE: "UTF-16BE",
	Windows1252: "windows-1252", Windows1251: "windows-1251", Windows1250: "windows-1250",
	ISO88592: "iso-8859-2", Windows1256: "windows-1256", Windows1254: "windows-1254",
	Windows874: "windows-874", Windows1255: "windows-1255", Windows1253: "windows-1253",
	ISO88597: "iso-8859-7", Windows1257: "windows-1257", KOI8U: "koi8-u",
	IBM866: "ibm866", ISO88596: "iso-8859-6", Windows1258: "windows-1258",
	ISO88594: "iso-8859-4", ISO88595: "iso-8859-5", ISO88598: "iso-8859-8",
	GBK: "GBK", ShiftJIS: "Shift_JIS", EUCJP: "EUC-JP", Big5: "Big5",
	EUCKR: "EUC-KR", ISO2022JP: "ISO-2022-JP",
}

// String returns the canonical encoding name (e.g. "windows-1252").
func (e EncodingID) String() string {
	if int(e) < 0 || int(e) >= len(encodingNames) {
		return "unknown"
	}
	return encodingNames[e]
}

// Result is what Scan found.
type Result struct {
	Encoding EncodingID
	Source   Source
	// BOMLength is how many leading bytes the BOM itself occupied, so
	// the caller can skip them before any further decoding.
	BOMLength int
}

// Scan runs the BOM check, then the bounded meta-charset prescan, over
// data. It never inspects more than the first 1024 non-comment bytes
// (64KiB including skipped comments), matching the HTML5 encoding
// sniffing algorithm's bound.
func Scan(data []byte) (Result, bool) {
	if enc, n := detectBOM(data); enc != -1 {
		return Result{Encoding: enc, Source: SourceBOM, BOMLength: n}, true
	}
	if enc, ok := prescanForMetaCharset(data); ok {
		return Result{Encoding: enc, Source: SourceMeta}, true
	}
	return Result{}, false
}

func detectBOM(data []byte) (EncodingID, int) {
	switch {
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return UTF8, 3
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return UTF16LE, 2
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return UTF16BE, 2
	default:
		return -1, 0
	}
}

var asciiWhitespace = [256]bool{0x09: true, 0x0A: true, 0x0C: true, 0x0D: true, 0x20: true}

func isASCIIWhitespace(b byte) bool { return asciiWhitespace[b] }

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func asciiLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b | 0x20
	}
	return b
}

func skipASCIIWhitespace(data []byte, i int) int {
	n := len(data)
	for i < n && isASCIIWhitespace(data[i]) {
		i++
	}
	return i
}

func stripASCIIWhitespace(value []byte) []byte {
	start, end := 0, len(value)
	for start < end && isASCIIWhitespace(value[start]) {
		start++
	}
	for end > start && isASCIIWhitespace(value[end-1]) {
		end--
	}
	return value[start:end]
}

func extractCharsetFromContent(contentBytes []byte) []byte {
	if len(contentBytes) == 0 {
		return nil
	}
	b := make([]byte, len(contentBytes))
	for i, ch := range contentBytes {
		if isASCIIWhitespace(ch) {
			b[i] = ' '
		} else {
			b[i] = asciiLower(ch)
		}
	}

	idx := bytes.Index(b, []byte("charset"))
	if idx == -1 {
		return nil
	}
	i := idx + len("charset")
	n := len(b)
	for i < n && b[i] == ' ' {
		i++
	}
	if i >= n || b[i] != '=' {
		return nil
	}
	i++
	for i < n && b[i] == ' ' {
		i++
	}
	if i >= n {
		return nil
	}

	var quote byte
	if b[i] == '"' || b[i] == '\'' {
		quote = b[i]
		i++
	}
	start := i
	for i < n {
		ch := b[i]
		if quote != 0 {
			if ch == quote {
				break
			}
		} else if ch == ' ' || ch == ';' {
			break
		}
		i++
	}
	if quote != 0 && (i >= n || b[i] != quote) {
		return nil
	}
	return b[start:i]
}

// prescanForMetaCharset walks the first maxNonComment bytes of
// non-comment markup looking for <meta charset=...> or
// <meta http-equiv=Content-Type content="...;charset=...">.
//
//nolint:gocognit,gocyclo,nestif,cyclop,funlen // complexity required by the HTML5 prescan algorithm
func prescanForMetaCharset(data []byte) (EncodingID, bool) {
	const maxNonComment = 1024
	const maxTotalScan = 65536

	n := len(data)
	i := 0
	nonComment := 0

	for i < n && i < maxTotalScan && nonComment < maxNonComment {
		if data[i] != '<' {
			i++
			nonComment++
			continue
		}

		if i+3 < n && data[i+1] == '!' && data[i+2] == '-' && data[i+3] == '-' {
			end := bytes.Index(data[i+4:], []byte("-->"))
			if end == -1 {
				return 0, false
			}
			i = i + 4 + end + 3
			continue
		}

		j := i + 1
		if j < n && data[j] == '/' {
			i = skipTag(data, i, &nonComment)
			continue
		}
		if j >= n || !isASCIIAlpha(data[j]) {
			i++
			nonComment++
			continue
		}

		nameStart := j
		for j < n && isASCIIAlpha(data[j]) {
			j++
		}
		if !strings.EqualFold(string(data[nameStart:j]), "meta") {
			i = skipTag(data, i, &nonComment)
			continue
		}

		charset, httpEquiv, content, k, sawGT := parseAttributes(data, j)
		if sawGT {
			if charset != nil {
				if enc, ok := normalizeMetaDeclaredEncoding(charset); ok {
					return enc, true
				}
			}
			if httpEquiv != nil && strings.EqualFold(string(httpEquiv), "content-type") && content != nil {
				if extracted := extractCharsetFromContent(content); extracted != nil {
					if enc, ok := normalizeMetaDeclaredEncoding(extracted); ok {
						return enc, true
					}
				}
			}
			nonComment += k - i
			i = k
		} else {
			i++
			nonComment++
		}
	}
	return 0, false
}

// skipTag advances past a tag (end tag, or a non-meta start tag),
// honoring quoted attribute values that may contain '>'.
func skipTag(data []byte, i int, nonComment *int) int {
	n := len(data)
	k := i
	var quote byte
	for k < n {
		ch := data[k]
		if quote == 0 {
			if ch == '"' || ch == '\'' {
				quote = ch
			} else if ch == '>' {
				k++
				*nonComment++
				break
			}
		} else if ch == quote {
			quote = 0
		}
		k++
		*nonComment++
	}
	return k
}

// parseAttributes reads attributes from position j (just past the tag
// name) through the closing '>', returning the charset/http-equiv/
// content attribute values it saw, the position after '>', and whether
// '>' was actually reached.
func parseAttributes(data []byte, j int) (charset, httpEquiv, content []byte, pos int, sawGT bool) {
	n := len(data)
	k := j
	for k < n {
		ch := data[k]
		if ch == '>' {
			return charset, httpEquiv, content, k + 1, true
		}
		if ch == '<' {
			return charset, httpEquiv, content, k, false
		}
		if isASCIIWhitespace(ch) || ch == '/' {
			k++
			continue
		}

		attrStart := k
		for k < n {
			ch = data[k]
			if isASCIIWhitespace(ch) || ch == '=' || ch == '>' || ch == '/' || ch == '<' {
				break
			}
			k++
		}
		attrName := bytes.ToLower(data[attrStart:k])
		k = skipASCIIWhitespace(data, k)

		var value []byte
		if k < n && data[k] == '=' {
			k++
			k = skipASCIIWhitespace(data, k)
			if k >= n {
				break
			}
			var quote byte
			if data[k] == '"' || data[k] == '\'' {
				quote = data[k]
				k++
				valStart := k
				endQuote := bytes.IndexByte(data[k:], quote)
				if endQuote == -1 {
					return nil, nil, nil, k, false
				}
				value = data[valStart : k+endQuote]
				k += endQuote + 1
			} else {
				valStart := k
				for k < n {
					ch = data[k]
					if isASCIIWhitespace(ch) || ch == '>' || ch == '<' {
						break
					}
					k++
				}
				value = data[valStart:k]
			}
		}

		switch {
		case bytes.Equal(attrName, []byte("charset")):
			charset = stripASCIIWhitespace(value)
		case bytes.Equal(attrName, []byte("http-equiv")):
			httpEquiv = value
		case bytes.Equal(attrName, []byte("content")):
			content = value
		}
	}
	return charset, httpEquiv, content, k, false
}

// normalizeMetaDeclaredEncoding normalizes a declared label to a Result
// EncodingID. Per the HTML meta-charset algorithm, UTF-16/UTF-32
// declarations are treated as UTF-8, and UTF-7 is never honored (it is
// mapped to windows-1252) since its non-ASCII-byte-free encoding of
// arbitrary script tags makes it an XSS vector when trusted as a page's
// declared charset.
func normalizeMetaDeclaredEncoding(label []byte) (EncodingID, bool) {
	return ParseLabel(string(label))
}

// ParseLabel normalizes a caller-supplied encoding label (from a <meta
// charset>, an HTTP Content-Type charset parameter, or any other
// transport-level hint) to this package's EncodingID. The same
// normalization rules apply regardless of where the label came from:
// UTF-16/UTF-32 declarations are folded to UTF-8, and UTF-7 labels are
// mapped to windows-1252 for the XSS reason documented on
// normalizeMetaDeclaredEncoding.
func ParseLabel(label string) (EncodingID, bool) {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "" {
		return 0, false
	}
	switch l {
	case "utf-7", "utf7", "x-utf-7":
		return Windows1252, true
	case "utf-16", "utf-16le", "utf-16be", "utf-32", "utf-32le", "utf-32be":
		return UTF8, true
	}
	return labelToEncoding(l)
}

// labelToEncoding maps a WHATWG encoding label to this package's
// EncodingID. Only the labels of encodings chardet's statistical roster
// can itself produce are recognized; anything else prescan treats as
// "not found" so the statistical engine gets a chance.
func labelToEncoding(label string) (EncodingID, bool) {
	if id, ok := labelTable[label]; ok {
		return id, true
	}
	return 0, false
}

var labelTable = map[string]EncodingID{
	"unicode-1-1-utf-8": UTF8, "utf-8": UTF8, "utf8": UTF8,
	"windows-1252": Windows1252, "cp1252": Windows1252, "x-cp1252": Windows1252,
	"ansi_x3.4-1968": Windows1252, "ascii": Windows1252, "us-ascii": Windows1252,
	"iso-8859-1": Windows1252, "iso8859-1": Windows1252, "latin1": Windows1252,
	"windows-1251": Windows1251, "cp1251": Windows1251, "x-cp1251": Windows1251,
	"koi8-r": Windows1251,
	"windows-1250": Windows1250, "cp1250": Windows1250, "x-cp1250": Windows1250,
	"iso-8859-2": ISO88592, "iso8859-2": ISO88592, "latin2": ISO88592,
	"windows-1256": Windows1256, "cp1256": Windows1256,
	"iso-8859-6": ISO88596, "arabic": ISO88596, "asmo-708": ISO88596,
	"windows-1254": Windows1254, "cp1254": Windows1254,
	"iso-8859-9": Windows1254, "latin5": Windows1254,
	"windows-874": Windows874, "dos-874": Windows874, "tis-620": Windows874,
	"windows-1255": Windows1255, "iso-8859-8": ISO88598, "iso-8859-8-i": ISO88598,
	"windows-1253": Windows1253, "cp1253": Windows1253,
	"iso-8859-7": ISO88597, "iso8859-7": ISO88597, "greek": ISO88597,
	"windows-1257": Windows1257, "cp1257": Windows1257,
	"iso-8859-4": ISO88594, "iso8859-4": ISO88594, "latin4": ISO88594,
	"koi8-u": KOI8U,
	"ibm866": IBM866, "cp866": IBM866, "866": IBM866,
	"iso-8859-5": ISO88595, "iso8859-5": ISO88595,
	"windows-1258": Windows1258, "cp1258": Windows1258,
	"gbk": GBK, "gb2312": GBK, "gb18030": GBK, "x-gbk": GBK, "csgb2312": GBK,
	"shift_jis": ShiftJIS, "shift-jis": ShiftJIS, "sjis": ShiftJIS, "x-sjis": ShiftJIS, "ms_kanji": ShiftJIS,
	"euc-jp": EUCJP, "eucjp": EUCJP, "x-euc-jp": EUCJP, "cseucpkdfmtjapanese": EUCJP,
	"big5": Big5, "big5-hkscs": Big5, "cn-big5": Big5, "x-x-big5": Big5,
	"euc-kr": EUCKR, "euckr": EUCKR, "cseuckr": EUCKR, "ks_c_5601-1987": EUCKR, "korean": EUCKR,
	"iso-2022-jp": ISO2022JP, "csiso2022jp": ISO2022JP,
}
