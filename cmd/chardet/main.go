// Command chardet guesses the character encoding of a file or stdin.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MeKo-Christian/chardet/diagnostics"
	"github.com/MeKo-Christian/chardet/stream"
)

var version = "dev"

// config holds the CLI configuration.
type config struct {
	tldHint       string
	transportHint string
	noUTF8        bool
	explain       bool
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, inputPath, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	// Empty inputPath means version or help was shown.
	if inputPath == "" {
		return nil
	}

	input, err := openInput(inputPath, stdin)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer input.Close()

	var opts []stream.Option
	if cfg.tldHint != "" {
		opts = append(opts, stream.WithTLDHint([]byte(cfg.tldHint)))
	}
	if cfg.transportHint != "" {
		opts = append(opts, stream.WithTransportHint(cfg.transportHint))
	}
	if cfg.noUTF8 {
		opts = append(opts, stream.WithAllowUTF8(false))
	}
	if cfg.explain {
		opts = append(opts, stream.WithCollectNotices())
	}

	enc, notices, err := stream.Detect(input, opts...)
	if err != nil {
		return fmt.Errorf("detecting encoding: %w", err)
	}

	fmt.Fprintln(stdout, enc.String())
	if cfg.explain {
		printNotices(stdout, notices)
	}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (*config, string, error) {
	fs := flag.NewFlagSet("chardet", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := &config{}
	var showVersion bool

	fs.StringVar(&cfg.tldHint, "tld-hint", "", "top-level domain the bytes were fetched from (e.g. \"jp\"), used only to break CJK ties")
	fs.StringVar(&cfg.transportHint, "transport-hint", "", "encoding label from outside the byte stream (e.g. an HTTP Content-Type charset), outranks <meta charset> but not a BOM")
	fs.BoolVar(&cfg.noUTF8, "no-utf8", false, "disable the UTF-8 gate, forcing a legacy single-byte or CJK guess even on valid UTF-8 input")
	fs.BoolVar(&cfg.explain, "explain", false, "print the notices collected during detection alongside the verdict")
	fs.BoolVar(&showVersion, "version", false, "show version")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: chardet [options] <file>\n\n")
		fmt.Fprintf(stderr, "Guess the character encoding of a file or stdin.\n\n")
		fmt.Fprintf(stderr, "Arguments:\n")
		fmt.Fprintf(stderr, "  file    input file path or '-' for stdin\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  chardet page.html                         Guess page.html's encoding\n")
		fmt.Fprintf(stderr, "  chardet -explain page.html                Guess and show how the verdict was reached\n")
		fmt.Fprintf(stderr, "  curl -s URL | chardet -tld-hint jp -       Guess piped bytes, with a CJK tie-break hint\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, "", nil
		}
		return nil, "", err
	}

	if showVersion {
		fmt.Fprintf(stderr, "chardet version %s\n", version)
		return nil, "", nil
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		fs.Usage()
		return nil, "", fmt.Errorf("missing input file")
	}

	return cfg, remaining[0], nil
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}

func printNotices(w io.Writer, notices diagnostics.Notices) {
	if len(notices) == 0 {
		fmt.Fprintln(w, "no notices")
		return
	}
	for _, n := range notices {
		fmt.Fprintf(w, "- %s: %s", n.Code, diagnostics.Message(n.Code))
		if n.Detail != "" {
			fmt.Fprintf(w, " (%s)", n.Detail)
		}
		fmt.Fprintln(w)
	}
}
