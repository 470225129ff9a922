package chardet

// Calibration constants for the candidate scoring disciplines. Kept as
// named constants rather than inlined magic numbers so the weight of
// each signal is visible at a glance. Signed 64-bit throughout;
// implausibilityPenalty is declared but intentionally unused, since a
// later generation of this scoring model dropped it without
// renumbering the rest.

const (
	// implausibleLatinCaseTransitionPenalty punishes an AllCaps->Lower
	// or Lower->Upper transition in the Latin discipline when at least
	// one byte of the pair is non-ASCII.
	implausibleLatinCaseTransitionPenalty = -180

	// latinAdjacencyPenalty applies to any Latin<->non-Latin-alphabetic
	// transition in the non-Latin single-byte disciplines.
	latinAdjacencyPenalty = -40

	// nonLatinCapitalizationBonus rewards Upper-then-Lower (plausible
	// capitalized word), applied once per word.
	nonLatinCapitalizationBonus = 41

	// nonLatinInvertedCasePenalty punishes Lower-then-Upper (inverted
	// case), applied once per word.
	nonLatinInvertedCasePenalty = -220

	// nonLatinMixedCasePenalty punishes a randomly-mixed-case letter,
	// applied per occurrence.
	nonLatinMixedCasePenalty = -20

	// nonLatinAllCapsKOI8UPenalty is the KOI8-U-only per-word penalty
	// for an all-caps word, so all-caps KOI8-U loses to all-lowercase
	// Greek on ambiguous input.
	nonLatinAllCapsKOI8UPenalty = -50

	// implausibilityPenalty is declared but never applied; a later
	// generation of this scoring model retired it.
	implausibilityPenalty = -100

	// gbkPUAPenalty punishes any GBK-decoded Private Use Area code
	// point that is not one of the 13 whitelisted GB18030 ideograph
	// mappings.
	gbkPUAPenalty = -200

	// cjkLatinAdjacencyPenalty is the multi-byte ASCII-letter<->CJK
	// transition penalty; smaller than latinAdjacencyPenalty because
	// CJK text freely mixes ASCII punctuation/identifiers.
	cjkLatinAdjacencyPenalty = -6

	// shiftJISHalfwidthKanaPenalty punishes half-width katakana once
	// non-ASCII has been seen in a Shift_JIS/EUC-JP candidate.
	shiftJISHalfwidthKanaPenalty = -200

	// distinctiveFullwidthPunctuationBonus rewards full-width ideographic
	// space/comma/period/parens in the multi-byte candidates.
	distinctiveFullwidthPunctuationBonus = 20

	// chineseDistinctivePunctuationBonus additionally rewards the
	// Chinese-only full-width !,;? forms in GBK/Big5.
	chineseDistinctivePunctuationBonus = 20

	// ideographLevel1Bonus/ideographLevel2Bonus score the two lead-byte
	// frequency bands shared by GBK/Shift_JIS/EUC-JP/Big5.
	ideographLevel1Bonus = 40
	ideographLevel2Bonus = 20
	ideographOtherBonus  = 10

	// kanaBonus scores Shift_JIS/EUC-JP kana code points.
	kanaBonus = 20
	// obsoleteKanaBonus is one less, denying wi/we an advantage over
	// plausible Big5 hanzi.
	obsoleteKanaBonus = kanaBonus - 1

	// modernHangulEUCBonus/otherHangulBonus score EUC-KR Hangul
	// depending on whether the byte pair fell in the Wansung EUC range.
	modernHangulEUCBonus = 75
	otherHangulBonus     = 20

	// hanjaAfterHangulPenalty/hanjaBonus score EUC-KR Hanja.
	hanjaAfterHangulPenalty = -200
	hanjaBonus              = 20

	// koreanLongWordPenalty applies per-character once an EUC-KR
	// Hangul/Hanja word exceeds koreanLongWordCutoff syllables.
	koreanLongWordPenalty = -6
	koreanLongWordCutoff  = 5
)

// latinRunLengthPenalty[n] is the cost of being n consecutive non-ASCII
// bytes deep in a run, indexed by min(run, 5): runs 0..5+ score
// 0, 0, 0, -5, -20, -200. Long unbroken non-ASCII runs are implausible
// Latin text.
var latinRunLengthPenalty = [6]int64{0, 0, 0, -5, -20, -200}

func runLengthPenalty(run uint32) int64 {
	if run > 5 {
		run = 5
	}
	return latinRunLengthPenalty[run]
}

// wordLengthGate is the minimum observed word length for a non-Latin
// single-byte candidate to participate in arbitration at all.
const wordLengthGate = 2
