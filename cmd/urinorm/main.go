// Command urinorm normalizes URI references.
//
// URIs are taken from the arguments or, when there are none, read line by line from stdin.
// With -json-path the inputs are JSON documents and the URIs are picked by the gjson path.
//
//	urinorm -base http://a/b/c/d ../g ./h?x
//	echo '{"links":["HTTP://A/./b","../c"]}' | urinorm -json-path 'links' -base http://a/x/y
//	urinorm -os win32 'C:\Program Files\app'
package main

//go:generate go tool errtrace -w .

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"braces.dev/errtrace"
	"github.com/tidwall/gjson"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/log"
	"github.com/ghettovoice/gouri/uri"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Def.Error("urinorm failed", "error", err)
		os.Exit(1)
	}
}

type options struct {
	base     string
	relTo    string
	jsonPath string
	platform string
	jsonOut  bool
	verbose  bool
}

type result struct {
	Input string `json:"input"`
	URI   string `json:"uri,omitempty"`
	Kind  string `json:"kind,omitempty"`
	Error string `json:"error,omitempty"`
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("urinorm", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.base, "base", "", "Resolve relative references against the base URI.")
	fs.StringVar(&opts.relTo, "relative-to", "", "Relativize the results against the URI.")
	fs.BoolVar(&opts.jsonOut, "json", false, "Print results as JSON lines.")
	fs.StringVar(&opts.jsonPath, "json-path", "", "Read inputs as JSON documents and pick URIs with the gjson path.")
	fs.StringVar(&opts.platform, "os", "", "Read inputs as native paths of the platform (unix, win32).")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose logging.")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: urinorm [flags] [uri ...]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return errtrace.Wrap(err)
	}

	logger := log.NewConsole(stderr, slog.LevelWarn)
	if opts.verbose {
		logger = log.NewDev(stderr, slog.LevelDebug)
		uri.SetLogger(logger)
		defer uri.SetLogger(nil)
	}

	n, err := newNormalizer(&opts)
	if err != nil {
		return errtrace.Wrap(err)
	}

	inputs, err := readInputs(fs.Args(), stdin, opts.jsonPath)
	if err != nil {
		return errtrace.Wrap(err)
	}
	logger.Debug("inputs collected", "count", len(inputs), "base", n.base, "relative_to", n.relTo)

	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)

	var errs []error
	for _, in := range inputs {
		res := result{Input: in}
		u, err := n.normalize(in)
		if err != nil {
			logger.Debug("input rejected", "input", in, "error", err)
			errs = append(errs, fmt.Errorf("%q: %w", in, err))
			res.Error = err.Error()
		} else {
			res.URI, res.Kind = u.String(), u.Kind().String()
			logger.Debug("input normalized", "input", in, "uri", u)
		}

		switch {
		case opts.jsonOut:
			if err := enc.Encode(res); err != nil {
				return errtrace.Wrap(err)
			}
		case res.Error == "":
			if _, err := fmt.Fprintln(stdout, res.URI); err != nil {
				return errtrace.Wrap(err)
			}
		}
	}
	return errtrace.Wrap(errorutil.JoinPrefix("rejected inputs:", errs...))
}

type normalizer struct {
	base     *uri.URI
	relTo    *uri.URI
	platform string
}

func newNormalizer(opts *options) (*normalizer, error) {
	n := &normalizer{platform: opts.platform}
	if opts.base != "" {
		u, err := uri.Parse(opts.base)
		if err != nil {
			return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(fmt.Errorf("-base: %w", err)))
		}
		n.base = u
	}
	if opts.relTo != "" {
		u, err := uri.Parse(opts.relTo)
		if err != nil {
			return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(fmt.Errorf("-relative-to: %w", err)))
		}
		n.relTo = u
	}
	return n, nil
}

func (n *normalizer) normalize(in string) (*uri.URI, error) {
	var (
		u   *uri.URI
		err error
	)
	if n.platform != "" {
		u, err = uri.FromNativePath(in, n.platform)
	} else {
		u, err = uri.Parse(in)
	}
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	if n.base != nil {
		if err := u.Resolve(n.base); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	if n.relTo != nil {
		if err := u.Relativize(n.relTo); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return u, nil
}

// readInputs collects the input strings from args or stdin.
// With a JSON path every source is a JSON document, string results and string array items are taken.
func readInputs(args []string, stdin io.Reader, jsonPath string) ([]string, error) {
	if jsonPath == "" {
		if len(args) > 0 {
			return args, nil
		}
		return errtrace.Wrap2(readLines(stdin))
	}

	docs := args
	if len(docs) == 0 {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		docs = []string{string(b)}
	}

	var inputs []string
	for i, doc := range docs {
		if !gjson.Valid(doc) {
			return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("document %d is not valid JSON", i))
		}
		res := gjson.Get(doc, jsonPath)
		if !res.Exists() {
			continue
		}
		if !res.IsArray() {
			res = gjson.Parse("[" + res.Raw + "]")
		}
		for _, item := range res.Array() {
			if item.Type != gjson.String {
				return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("document %d: %s is not a string", i, item.Raw))
			}
			inputs = append(inputs, item.String())
		}
	}
	return inputs, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, errtrace.Wrap(sc.Err())
}
