// Package grammar compiles the URL and e-mail recognition pattern used
// by the tokenizers.
//
// A [Grammar] is built once from a set of known top-level domains and is
// immutable afterward; it may be shared freely across concurrent
// tokenization calls. The pattern recognizes, in priority order:
//
//  1. Explicit scheme URLs (http, https, ftp, ftps, file).
//  2. Bare domain-like tokens whose suffix is a known TLD ("guessed"
//     URLs such as "example.org").
//  3. Bare or mailto:-prefixed e-mail addresses.
//
// Optional <URL:...> or <...> delimiters around a match are stripped,
// and bare e-mail addresses are canonicalized to mailto: URLs.
package grammar

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Character classes are Unicode-aware so internationalized hostnames and
// paths match. The trailing class excludes sentence punctuation so a URL
// ending a sentence does not swallow the period.
const (
	wordClass   = `\p{L}\p{N}_`
	urlInternal = `[{}()@` + wordClass + `/\-%?!&.=:;+,#~]`
	urlTrailing = `[{}()@` + wordClass + `/\-%&=+#]`

	schemeURL    = `(?:(?:https?|file|ftps?)://` + urlInternal + `*` + urlTrailing + `)`
	emailPattern = `(?P<email>(?:mailto:)?[` + wordClass + `\-.]*@[` + wordClass + `\-.]*[` + wordClass + `\-])`
)

var tldCharset = regexp.MustCompile(`^[a-z0-9]+$`)

// Grammar is a compiled URL/e-mail matching pattern together with the
// TLD set it was built from. Read-only after construction.
type Grammar struct {
	re       *regexp.Regexp
	tlds     []string
	emailIdx int
}

// New compiles a grammar from the given TLD list. Entries are
// lower-cased; empty entries and Punycode/IDN markers (anything
// containing "--") are dropped. Any other entry that is not purely
// alphanumeric is a compilation error.
func New(tlds []string) (*Grammar, error) {
	cleaned := make([]string, 0, len(tlds))
	for _, tld := range tlds {
		tld = strings.ToLower(strings.TrimSpace(tld))
		if tld == "" || strings.Contains(tld, "--") {
			continue
		}
		if !tldCharset.MatchString(tld) {
			return nil, fmt.Errorf("grammar: invalid TLD %q", tld)
		}
		cleaned = append(cleaned, tld)
	}
	if len(cleaned) == 0 {
		return nil, errors.New("grammar: empty TLD set")
	}

	// A guessed URL is label(.label)* followed by a known TLD, anchored
	// at the end of the scanned text so "blah.com.notatld" never yields
	// a partial match.
	guessed := `(?:[` + wordClass + `\-%]+(?:\.[` + wordClass + `\-%]+)*\.(?:` +
		strings.Join(cleaned, "|") + `)$)`

	expr := `(?:<(?:URL:)?)?(` + schemeURL + `|` + guessed + `|` + emailPattern + `)>?`
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("grammar: compiling pattern: %w", err)
	}

	return &Grammar{re: re, tlds: cleaned, emailIdx: re.SubexpIndex("email")}, nil
}

// TLDs returns the TLD set the grammar was compiled from.
func (g *Grammar) TLDs() []string {
	out := make([]string, len(g.tlds))
	copy(out, g.tlds)
	return out
}

// A Match locates one recognized URL or e-mail address within a string.
// Start and End are byte offsets of the full match, including any
// bracket delimiters; URL is the canonical target with delimiters
// stripped and bare e-mail addresses prefixed with mailto:.
type Match struct {
	Start int
	End   int
	URL   string
}

// FindAll returns every match in s, left to right. Matching is
// leftmost-first per the grammar's priority order.
func (g *Grammar) FindAll(s string) []Match {
	idx := g.re.FindAllStringSubmatchIndex(s, -1)
	if len(idx) == 0 {
		return nil
	}

	out := make([]Match, 0, len(idx))
	for _, m := range idx {
		url := s[m[2]:m[3]]
		if e := m[2*g.emailIdx]; e >= 0 {
			email := s[e:m[2*g.emailIdx+1]]
			if !strings.Contains(email, "mailto") {
				url = "mailto:" + email
			}
		}
		out = append(out, Match{Start: m[0], End: m[1], URL: url})
	}
	return out
}
