package chardet

import "strings"

// TLDHintFromHostname extracts the last DNS label of host (e.g.
// "example.co.jp" -> "jp") for use as Detector.Guess's tldHint
// argument. Callers that already hold just the label (from a
// Content-Location header, say) can pass it to Guess directly instead.
func TLDHintFromHostname(host string) []byte {
	host = strings.TrimSuffix(host, ".")
	if i := strings.LastIndexByte(host, '.'); i >= 0 {
		host = host[i+1:]
	}
	return []byte(host)
}
