package chardet

import (
	"testing"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// encodeWith round-trips s through enc's encoder, failing the test if
// the sample text cannot be represented in the target encoding.
func encodeWith(t *testing.T, enc encoding.Encoding, s string) []byte {
	t.Helper()
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		t.Fatalf("encoding sample text: %v", err)
	}
	return out
}

// TestRoundTripLegacyEncodings feeds the Detector real prose encoded in
// each legacy single-byte/multi-byte encoding and checks it recovers the
// encoding that produced the bytes. These are the encode-then-detect
// scenarios a statistical detector exists to pass.
func TestRoundTripLegacyEncodings(t *testing.T) {
	tests := []struct {
		name string
		enc  encoding.Encoding
		text string
		want EncodingID
	}{
		{
			"russian cyrillic",
			charmap.Windows1251,
			"Съешь же ещё этих мягких французских булок, да выпей чаю. Это предложение содержит все буквы русского алфавита.",
			Windows1251,
		},
		{
			"greek",
			charmap.Windows1253,
			"Τη γλώσσα μου έδωσαν ελληνική, το σπίτι φτωχικό στις αμμουδιές του Ομήρου. Μονάχη έγνοια η γλώσσα μου στις αμμουδιές του Ομήρου.",
			Windows1253,
		},
		{
			"thai",
			charmap.Windows874,
			"ใครๆ ก็รู้ว่าภาษาไทยนั้นมีความซับซ้อน แต่ก็มีความงดงามในตัวของมันเอง ประเทศไทยมีวัฒนธรรมอันยาวนาน",
			Windows874,
		},
		{
			"japanese shift-jis",
			japanese.ShiftJIS,
			"これは日本語のテキストです。文字コードの自動判定をテストするための長い文章を用意しました。",
			ShiftJIS,
		},
		{
			"japanese euc-jp",
			japanese.EUCJP,
			"これは日本語のテキストです。文字コードの自動判定をテストするための長い文章を用意しました。",
			EUCJP,
		},
		{
			"simplified chinese gbk",
			simplifiedchinese.GBK,
			"这是一段用于测试字符编码自动检测功能的中文文本,包含了足够多的汉字以便进行有效的统计分析。",
			GBK,
		},
		{
			"traditional chinese big5",
			traditionalchinese.Big5,
			"這是一段用於測試字元編碼自動偵測功能的中文文字,包含了足夠多的漢字以便進行有效的統計分析。",
			Big5,
		},
		{
			"korean euc-kr",
			korean.EUCKR,
			"이것은 문자 인코딩 자동 감지 기능을 테스트하기 위한 한국어 텍스트입니다. 충분히 긴 문장을 준비했습니다.",
			EUCKR,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data := encodeWith(t, tt.enc, tt.text)
			got := guess(t, data)
			if got != tt.want {
				t.Errorf("Guess() = %v, want %v", got, tt.want)
			}
		})
	}
}
