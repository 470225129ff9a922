package class

import "strings"

// TLD is the small closed set of top-level-domain categories arbitration
// may use as a last-resort nudge between otherwise-tied candidates.
type TLD int

const (
	TLDGeneric TLD = iota
	TLDEU
	TLDCN
	TLDJP
	TLDKR
	TLDTW
	TLDRU
	TLDTH
	TLDAr  // Arabic-speaking ccTLDs
	TLDHe  // Hebrew-speaking ccTLDs (.il)
	TLDEl  // Greek-speaking ccTLDs (.gr)
	TLDVN
)

var tldTable = map[string]TLD{
	"cn": TLDCN, "hk": TLDCN, "sg": TLDCN,
	"tw": TLDTW,
	"jp": TLDJP,
	"kr": TLDKR,
	"ru": TLDRU, "su": TLDRU, "by": TLDRU,
	"th": TLDTH,
	"vn": TLDVN,
	"il": TLDHe,
	"gr": TLDEl,
	"sa": TLDAr, "ae": TLDAr, "eg": TLDAr, "iq": TLDAr, "ma": TLDAr,
	"de": TLDEU, "fr": TLDEU, "pl": TLDEU, "cz": TLDEU, "hu": TLDEU,
}

// ClassifyTLD maps a host's top-level-domain label (without the leading
// dot) to its TLD category. Unknown or empty labels classify as generic.
func ClassifyTLD(label []byte) TLD {
	s := strings.ToLower(strings.TrimSpace(string(label)))
	s = strings.TrimPrefix(s, ".")
	if t, ok := tldTable[s]; ok {
		return t
	}
	return TLDGeneric
}
