package sniff

import "testing"

func TestScanBOM(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		wantEnc   EncodingID
		wantLen   int
		wantFound bool
	}{
		{"utf8 bom", []byte("\xef\xbb\xbfhello"), UTF8, 3, true},
		{"utf16le bom", []byte("\xff\xfehello"), UTF16LE, 2, true},
		{"utf16be bom", []byte("\xfe\xffhello"), UTF16BE, 2, true},
		{"no bom", []byte("hello"), 0, 0, false},
		{"too short", []byte{0xef, 0xbb}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, ok := Scan(tt.data)
			if ok != tt.wantFound {
				t.Fatalf("Scan() ok = %v, want %v", ok, tt.wantFound)
			}
			if !tt.wantFound {
				return
			}
			if res.Source != SourceBOM {
				t.Errorf("Source = %v, want SourceBOM", res.Source)
			}
			if res.Encoding != tt.wantEnc {
				t.Errorf("Encoding = %v, want %v", res.Encoding, tt.wantEnc)
			}
			if res.BOMLength != tt.wantLen {
				t.Errorf("BOMLength = %d, want %d", res.BOMLength, tt.wantLen)
			}
		})
	}
}

func TestScanMetaCharset(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantEnc EncodingID
		wantOK  bool
	}{
		{
			"simple meta charset",
			[]byte(`<html><head><meta charset="windows-1251"></head></html>`),
			Windows1251, true,
		},
		{
			"unquoted meta charset",
			[]byte(`<head><meta charset=shift_jis></head>`),
			ShiftJIS, true,
		},
		{
			"http-equiv content-type",
			[]byte(`<meta http-equiv="Content-Type" content="text/html; charset=windows-1253">`),
			Windows1253, true,
		},
		{
			"comment skipped before meta",
			[]byte(`<!-- <meta charset="gbk"> --><meta charset="big5">`),
			Big5, true,
		},
		{
			"no meta present",
			[]byte(`<html><head><title>hi</title></head></html>`),
			0, false,
		},
		{
			"unrecognized label falls through",
			[]byte(`<meta charset="bogus-label">`),
			0, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, ok := Scan(tt.data)
			if ok != tt.wantOK {
				t.Fatalf("Scan() ok = %v, want %v", ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if res.Encoding != tt.wantEnc {
				t.Errorf("Encoding = %v, want %v", res.Encoding, tt.wantEnc)
			}
		})
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		label   string
		wantEnc EncodingID
		wantOK  bool
	}{
		{"utf-8", UTF8, true},
		{"UTF8", UTF8, true},
		{" windows-1252 ", Windows1252, true},
		{"latin1", Windows1252, true},
		{"utf-7", Windows1252, true},
		{"UTF-7", Windows1252, true},
		{"utf-16", UTF8, true},
		{"utf-32le", UTF8, true},
		{"shift_jis", ShiftJIS, true},
		{"", 0, false},
		{"   ", 0, false},
		{"not-a-real-encoding", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			enc, ok := ParseLabel(tt.label)
			if ok != tt.wantOK {
				t.Fatalf("ParseLabel(%q) ok = %v, want %v", tt.label, ok, tt.wantOK)
			}
			if ok && enc != tt.wantEnc {
				t.Errorf("ParseLabel(%q) = %v, want %v", tt.label, enc, tt.wantEnc)
			}
		})
	}
}

func TestEncodingIDString(t *testing.T) {
	if got := UTF8.String(); got != "UTF-8" {
		t.Errorf("UTF8.String() = %q, want %q", got, "UTF-8")
	}
	if got := Windows1252.String(); got != "windows-1252" {
		t.Errorf("Windows1252.String() = %q, want %q", got, "windows-1252")
	}
	if got := EncodingID(999).String(); got != "unknown" {
		t.Errorf("EncodingID(999).String() = %q, want %q", got, "unknown")
	}
}

func TestSourceString(t *testing.T) {
	tests := []struct {
		src  Source
		want string
	}{
		{SourceNone, "none"},
		{SourceBOM, "bom"},
		{SourceMeta, "meta"},
		{SourceTransport, "transport"},
	}
	for _, tt := range tests {
		if got := tt.src.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.src, got, tt.want)
		}
	}
}
