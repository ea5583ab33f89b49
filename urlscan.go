// Package urlscan extracts the URLs (and e-mail addresses) referenced
// in a message body, surfacing each one together with enough
// surrounding text for a human to judge the link's relevance.
//
// Plain-text bodies:
//
//	windows := urlscan.New().Text(body)
//
// HTML bodies, with extra context:
//
//	windows := urlscan.New().Context(2, 2).HTML(body)
//
// Whole messages (multipart walking, charset decoding):
//
//	windows, err := urlscan.New().Message(strings.NewReader(raw))
//
// New uses the grammar compiled from the embedded IANA TLD list and one
// line of context on each side. A custom grammar, for example one built
// from a synthetic TLD set for tests, can be supplied with WithGrammar.
// For advanced use cases the lower-level grammar, textscan, htmlscan,
// window and mailscan packages are also available.
package urlscan

import (
	"io"

	"github.com/firecat53/urlscan/grammar"
	"github.com/firecat53/urlscan/htmlscan"
	"github.com/firecat53/urlscan/mailscan"
	"github.com/firecat53/urlscan/model"
	"github.com/firecat53/urlscan/textscan"
	"github.com/firecat53/urlscan/window"
)

// Window is a contiguous run of paragraphs (or lines) selected for
// display, with flags indicating whether truncation markers are needed
// at its edges.
type Window = window.Window[model.Paragraph]

// Scanner extracts URL context windows from message bodies. Scanners
// are immutable; configuration methods return a derived copy, so a
// scanner may be shared freely across goroutines.
type Scanner struct {
	grammar *grammar.Grammar
	options extractOptions
}

// New returns a scanner using the default grammar and options.
func New() *Scanner {
	return &Scanner{grammar: grammar.Default(), options: defaultOptions()}
}

// WithGrammar returns a scanner using g instead of the default grammar.
func WithGrammar(g *grammar.Grammar) *Scanner {
	return &Scanner{grammar: g, options: defaultOptions()}
}

// Context returns a copy of the scanner keeping before and after units
// of context around each URL.
func (s *Scanner) Context(before, after int) *Scanner {
	opts := s.options
	opts.before = before
	opts.after = after
	return &Scanner{grammar: s.grammar, options: opts}
}

// Text scans a plain-text body and returns the context windows around
// every line containing a URL. A body without URLs yields no windows.
func (s *Scanner) Text(body string) []Window {
	return textscan.ExtractURLs(s.grammar, body, s.options.config())
}

// HTML scans an HTML body and returns the context windows around every
// paragraph that links somewhere.
func (s *Scanner) HTML(body string) []Window {
	return htmlscan.Extract(body, s.options.config())
}

// Message reads a whole (possibly multipart) message from r and scans
// every text part, returning the windows in document order.
func (s *Scanner) Message(r io.Reader) ([]Window, error) {
	return mailscan.NewWalker(s.grammar, s.options.config()).Walk(r)
}

// URLs collects every link target in the given windows, in document
// order. Duplicates are kept; a URL referenced twice appears twice.
func URLs(windows []Window) []string {
	var urls []string
	for _, w := range windows {
		for _, p := range w.Units {
			for _, c := range p {
				if c.IsLink() {
					urls = append(urls, c.URL)
				}
			}
		}
	}
	return urls
}

// Must is a helper that wraps a call returning ([]Window, error) and
// panics if the error is non-nil. It is intended for use in scripts or
// tests where error handling would be cumbersome.
//
// Example:
//
//	windows := urlscan.Must(urlscan.New().Message(r))
func Must(windows []Window, err error) []Window {
	if err != nil {
		panic(err)
	}
	return windows
}
