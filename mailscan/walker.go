// Package mailscan walks mail messages, dispatching each text part to
// the matching tokenizer and collecting the context windows around
// every URL found.
//
// Multipart messages are walked recursively in document order, so the
// returned windows are numbered the way the parts appear. Parts with a
// content type the engine does not extract from are skipped.
package mailscan

import (
	"fmt"
	"io"

	"github.com/emersion/go-message"

	"github.com/firecat53/urlscan/format"
	"github.com/firecat53/urlscan/grammar"
	"github.com/firecat53/urlscan/htmlscan"
	"github.com/firecat53/urlscan/model"
	"github.com/firecat53/urlscan/textscan"
	"github.com/firecat53/urlscan/window"
)

// Walker extracts URL context windows from whole mail messages.
type Walker struct {
	grammar *grammar.Grammar
	cfg     window.Config
}

// NewWalker returns a walker using the given grammar and context
// configuration for every part.
func NewWalker(g *grammar.Grammar, cfg window.Config) *Walker {
	return &Walker{grammar: g, cfg: cfg}
}

// Extract reads one message from r and scans it with the default
// grammar and one line of context on each side.
func Extract(r io.Reader) ([]window.Window[model.Paragraph], error) {
	return NewWalker(grammar.Default(), window.DefaultConfig()).Walk(r)
}

// Walk reads one message from r and returns the context windows from
// all of its text parts, in document order. A message without URLs
// yields no windows and no error.
func (w *Walker) Walk(r io.Reader) ([]window.Window[model.Paragraph], error) {
	entity, err := message.Read(r)
	if err != nil && !message.IsUnknownCharset(err) {
		return nil, fmt.Errorf("mailscan: reading message: %w", err)
	}

	var windows []window.Window[model.Paragraph]
	w.walkEntity(entity, &windows)
	return windows, nil
}

func (w *Walker) walkEntity(e *message.Entity, out *[]window.Window[model.Paragraph]) {
	if mr := e.MultipartReader(); mr != nil {
		for {
			part, err := mr.NextPart()
			if err == io.EOF {
				return
			} else if err != nil && !message.IsUnknownCharset(err) {
				// Malformed inner part; keep whatever was readable.
				return
			}
			w.walkEntity(part, out)
		}
	}

	contentType, params, err := e.Header.ContentType()
	if err != nil {
		contentType = ""
	}
	kind := format.Detect(contentType)
	if kind == format.Unknown {
		return
	}

	// Best effort: a truncated part still gets scanned.
	raw, _ := io.ReadAll(e.Body)
	body := DecodeBytes(raw, params["charset"])

	switch kind {
	case format.PlainText:
		*out = append(*out, textscan.ExtractURLs(w.grammar, body, w.cfg)...)
	case format.HTML:
		*out = append(*out, htmlscan.Extract(body, w.cfg)...)
	}
}
