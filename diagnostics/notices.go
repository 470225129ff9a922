// Package diagnostics carries the non-fatal, structured notices the
// stream package emits alongside a detection result. Detection itself
// never fails; a Notice records something the caller may still want to
// know about, such as a hint being overridden or a tie needing a
// secondary signal to break.
//
// Grounded on
// _examples/MeKo-Christian-justgohtml/errors/{errors.go,codes.go}'s
// ParseError/ParseErrors shape, renamed for advisory notices instead of
// fatal parse errors.
package diagnostics

import (
	"fmt"
	"strings"
)

// Notice is a single non-fatal observation made during detection.
type Notice struct {
	// Code is one of the constants in codes.go.
	Code string

	// Detail is optional free-form context (e.g. the rejected label),
	// appended to Message's generic text.
	Detail string
}

// Error implements the error interface so a Notices value can be
// returned or logged through ordinary error-handling paths even though
// detection itself never fails.
func (n *Notice) Error() string {
	if n.Detail == "" {
		return fmt.Sprintf("%s: %s", n.Code, Message(n.Code))
	}
	return fmt.Sprintf("%s: %s (%s)", n.Code, Message(n.Code), n.Detail)
}

// Notices is an ordered collection of Notice, in emission order.
type Notices []*Notice

// Error implements the error interface.
func (n Notices) Error() string {
	switch len(n) {
	case 0:
		return "no notices"
	case 1:
		return n[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d notices:\n", len(n))
	for i, notice := range n {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("  - ")
		sb.WriteString(notice.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying notices for errors.Is/As support.
func (n Notices) Unwrap() []error {
	errs := make([]error, len(n))
	for i, notice := range n {
		errs[i] = notice
	}
	return errs
}

// Add appends a notice with no detail and returns the extended slice,
// so callers can write `notices = notices.Add(diagnostics.TLDHintIgnored)`.
func (n Notices) Add(code string) Notices {
	return append(n, &Notice{Code: code})
}

// Addf appends a notice with a formatted detail.
func (n Notices) Addf(code, format string, args ...any) Notices {
	return append(n, &Notice{Code: code, Detail: fmt.Sprintf(format, args...)})
}
