package stream

import (
	"strings"
	"testing"

	"github.com/MeKo-Christian/chardet/diagnostics"
	"github.com/MeKo-Christian/chardet/sniff"
)

func hasCode(notices diagnostics.Notices, code string) bool {
	for _, n := range notices {
		if n.Code == code {
			return true
		}
	}
	return false
}

func TestDetectBOMShortCircuits(t *testing.T) {
	r := strings.NewReader("\xef\xbb\xbfhello, world")
	enc, notices, err := Detect(r, WithCollectNotices())
	if err != nil {
		t.Fatalf("Detect() = %v", err)
	}
	if enc != sniff.UTF8 {
		t.Errorf("enc = %v, want UTF8", enc)
	}
	if !hasCode(notices, diagnostics.BOMOverridesHint) {
		t.Errorf("notices = %v, want BOMOverridesHint", notices)
	}
}

func TestDetectMetaCharsetShortCircuits(t *testing.T) {
	r := strings.NewReader(`<html><head><meta charset="windows-1251"></head><body>text</body></html>`)
	enc, notices, err := Detect(r, WithCollectNotices())
	if err != nil {
		t.Fatalf("Detect() = %v", err)
	}
	if enc != sniff.Windows1251 {
		t.Errorf("enc = %v, want Windows1251", enc)
	}
	if !hasCode(notices, diagnostics.MetaCharsetOverridesHint) {
		t.Errorf("notices = %v, want MetaCharsetOverridesHint", notices)
	}
}

func TestDetectTransportHintOutranksMeta(t *testing.T) {
	r := strings.NewReader(`<html><head><meta charset="windows-1251"></head><body>text</body></html>`)
	enc, notices, err := Detect(r, WithTransportHint("shift_jis"), WithCollectNotices())
	if err != nil {
		t.Fatalf("Detect() = %v", err)
	}
	if enc != sniff.ShiftJIS {
		t.Errorf("enc = %v, want ShiftJIS", enc)
	}
	if !hasCode(notices, diagnostics.TransportHintUsed) {
		t.Errorf("notices = %v, want TransportHintUsed", notices)
	}
}

func TestDetectBOMOutranksTransportHint(t *testing.T) {
	r := strings.NewReader("\xef\xbb\xbfhello")
	enc, notices, err := Detect(r, WithTransportHint("shift_jis"), WithCollectNotices())
	if err != nil {
		t.Fatalf("Detect() = %v", err)
	}
	if enc != sniff.UTF8 {
		t.Errorf("enc = %v, want UTF8", enc)
	}
	if !hasCode(notices, diagnostics.BOMOverridesHint) {
		t.Errorf("notices = %v, want BOMOverridesHint", notices)
	}
}

func TestDetectInvalidTransportHintFallsBackToMeta(t *testing.T) {
	r := strings.NewReader(`<html><head><meta charset="windows-1251"></head><body>text</body></html>`)
	enc, notices, err := Detect(r, WithTransportHint("bogus-label"), WithCollectNotices())
	if err != nil {
		t.Fatalf("Detect() = %v", err)
	}
	if enc != sniff.Windows1251 {
		t.Errorf("enc = %v, want Windows1251", enc)
	}
	if !hasCode(notices, diagnostics.UnsupportedTransportHint) {
		t.Errorf("notices = %v, want UnsupportedTransportHint", notices)
	}
	if !hasCode(notices, diagnostics.MetaCharsetOverridesHint) {
		t.Errorf("notices = %v, want MetaCharsetOverridesHint", notices)
	}
}

func TestDetectValidTransportHintWithNoMeta(t *testing.T) {
	r := strings.NewReader(strings.Repeat("plain ascii text with no markup at all. ", 50))
	enc, notices, err := Detect(r, WithTransportHint("windows-1251"), WithCollectNotices())
	if err != nil {
		t.Fatalf("Detect() = %v", err)
	}
	if enc != sniff.Windows1251 {
		t.Errorf("enc = %v, want Windows1251", enc)
	}
	if !hasCode(notices, diagnostics.TransportHintUsed) {
		t.Errorf("notices = %v, want TransportHintUsed", notices)
	}
}

func TestDetectStatisticalFallback(t *testing.T) {
	r := strings.NewReader("hello, plain ascii world with no markup or BOM at all")
	enc, _, err := Detect(r)
	if err != nil {
		t.Fatalf("Detect() = %v", err)
	}
	if enc != sniff.Windows1252 {
		t.Errorf("enc = %v, want Windows1252", enc)
	}
}

func TestDetectChunkSizeOption(t *testing.T) {
	r := strings.NewReader("\xef\xbb\xbfhello, world, this text is long enough to span chunks")
	enc, _, err := Detect(r, WithChunkSize(4))
	if err != nil {
		t.Fatalf("Detect() = %v", err)
	}
	if enc != sniff.UTF8 {
		t.Errorf("enc = %v, want UTF8", enc)
	}
}

func TestDetectNoUTF8Gate(t *testing.T) {
	r := strings.NewReader("hello, plain ascii world with no markup or BOM at all")
	enc, _, err := Detect(r, WithAllowUTF8(false))
	if err != nil {
		t.Fatalf("Detect() = %v", err)
	}
	if enc != sniff.Windows1252 {
		t.Errorf("enc = %v, want Windows1252", enc)
	}
}

func TestDetectNoNoticesByDefault(t *testing.T) {
	r := strings.NewReader("\xef\xbb\xbfhello")
	_, notices, err := Detect(r)
	if err != nil {
		t.Fatalf("Detect() = %v", err)
	}
	if len(notices) != 0 {
		t.Errorf("notices = %v, want empty without WithCollectNotices", notices)
	}
}
