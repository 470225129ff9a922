package stream

// config holds Detect's configuration.
type config struct {
	chunkSize      int
	tldHint        []byte
	transportHint  string
	allowUTF8      bool
	collectNotices bool
}

// newConfig creates a config with defaults and applies opts.
func newConfig(opts ...Option) *config {
	cfg := &config{chunkSize: defaultChunkSize, allowUTF8: true}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures Detect's behavior.
//
// Grounded on _examples/MeKo-Christian-justgohtml/options.go's
// functional-options config pattern.
type Option func(*config)

// WithChunkSize sets the read buffer size Detect uses when pulling from
// the io.Reader. The default is 4096 bytes.
func WithChunkSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

// WithTLDHint supplies the last DNS label of the document's origin
// (e.g. "jp"), used only to break a tie among otherwise-equally-
// plausible CJK candidates (see TLDHintFromHostname in the parent
// package).
func WithTLDHint(label []byte) Option {
	return func(c *config) {
		c.tldHint = label
	}
}

// WithTransportHint supplies an encoding label from outside the byte
// stream itself, such as an HTTP Content-Type charset parameter. A
// recognized transport hint outranks a <meta charset> declaration but
// yields to a byte-order mark, matching the priority a user agent gives
// an HTTP charset header over in-document declarations. An unrecognized
// or empty label is ignored and Detect falls through to the
// BOM/meta-charset/statistical chain as if it had never been supplied.
func WithTransportHint(label string) Option {
	return func(c *config) {
		c.transportHint = label
	}
}

// WithAllowUTF8 controls whether the UTF-8 gate in arbitration may win
// outright. Disable it when the caller has already ruled out UTF-8
// through some other channel and wants the statistical legacy-encoding
// answer instead.
func WithAllowUTF8(allow bool) Option {
	return func(c *config) {
		c.allowUTF8 = allow
	}
}

// WithCollectNotices enables notice collection: Detect's returned
// Notices record which prescan step decided the encoding (BOM, <meta
// charset> or transport hint), an unrecognized transport hint, and every
// candidate having disqualified itself, instead of the empty default.
// Tie-breaks inside the statistical arbitration are not reported.
func WithCollectNotices() Option {
	return func(c *config) {
		c.collectNotices = true
	}
}
