// Package textscan tokenizes plain-text message bodies into link and
// non-link chunks.
package textscan

import (
	"regexp"

	"github.com/firecat53/urlscan/grammar"
	"github.com/firecat53/urlscan/model"
	"github.com/firecat53/urlscan/window"
)

var newlineRE = regexp.MustCompile(`\r\n|\n|\r`)

// SplitLines splits s into lines on any newline convention.
func SplitLines(s string) []string {
	return newlineRE.Split(s, -1)
}

// ParseLine cuts one line into alternating link and non-link runs using
// the compiled grammar. Each match becomes a bare link chunk; each gap
// between matches, including leading and trailing unmatched text,
// becomes a plain text chunk. No state carries over between lines.
func ParseLine(g *grammar.Grammar, line string) model.Line {
	var rval model.Line

	loc := 0
	for _, m := range g.FindAll(line) {
		if loc < m.Start {
			rval = append(rval, model.Text(line[loc:m.Start]))
		}
		rval = append(rval, model.Link(m.URL))
		loc = m.End
	}
	if loc < len(line) {
		rval = append(rval, model.Text(line[loc:]))
	}

	return rval
}

// ExtractURLs tokenizes a whole plain-text body and returns the context
// windows around every line that contains a URL. A body without URLs
// yields no windows.
func ExtractURLs(g *grammar.Grammar, body string, cfg window.Config) []window.Window[model.Line] {
	lines := SplitLines(body)
	parsed := make([]model.Line, len(lines))
	for i, l := range lines {
		parsed[i] = ParseLine(g, l)
	}
	return window.Extract(parsed, lineHasURL, cfg)
}

// lineHasURL identifies tokenized lines worth showing: a line with more
// than one chunk mixes text and links, and a single-chunk line matches
// only if that chunk is a link.
func lineHasURL(l model.Line) bool {
	return len(l) > 1 || (len(l) == 1 && l[0].IsLink())
}
