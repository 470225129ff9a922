package chardet

// Byte 0x81 is a C1 control code, unassigned in ISO-8859-2/ISO-8859-4 but
// accepted (as a non-ASCII symbol) by the Windows-125x classifiers that
// extend the same Latin repertoire. Feeding it should disqualify the
// strict ISO-8859 candidates without touching their Windows-125x
// cousins.

import "testing"

func TestUnassignedC1ByteDisqualifiesStrictISO8859(t *testing.T) {
	d := NewDetector()
	d.Feed([]byte("hello \x81 world, this sentence continues on for a while longer"), true)

	if d.findScore(ISO88592) != nil {
		t.Error("ISO-8859-2 candidate should be disqualified by an unassigned C1 byte")
	}
	if d.findScore(ISO88594) != nil {
		t.Error("ISO-8859-4 candidate should be disqualified by an unassigned C1 byte")
	}
	if d.findScore(Windows1250) == nil {
		t.Error("Windows-1250 candidate should survive the same byte, which it classifies as a symbol")
	}
}
