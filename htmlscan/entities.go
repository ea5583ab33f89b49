package htmlscan

import (
	"strconv"
	"strings"
)

// extraChars maps character references above ASCII to a plain-text
// approximation. Anything not listed here is re-emitted as a literal
// numeric reference.
var extraChars = map[int]string{
	8212: "--",  // em dash
	8217: "'",   // right single quote
	8220: "``",  // left double quote
	8221: "''",  // right double quote
	8230: "...", // ellipsis
}

// namedEntities is the fixed set of named entities that are
// substituted; unknown names pass through verbatim.
var namedEntities = map[string]string{
	"nbsp":  " ",
	"lt":    "<",
	"gt":    ">",
	"amp":   "&",
	"ldquo": "``",
	"rdquo": "''",
	"apos":  "'",
}

// handleRawText splits a raw text run into plain segments and character
// or entity references, feeding each piece to the chunker separately so
// the whitespace bookkeeping sees the same segments the substitution
// tables do.
func (c *Chunker) handleRawText(raw string) {
	start := 0
	i := 0
	for i < len(raw) {
		if raw[i] != '&' {
			i++
			continue
		}
		sub, n := parseReference(raw[i:])
		if n == 0 {
			i++
			continue
		}
		if i > start {
			c.handleData(raw[start:i])
		}
		c.handleData(sub)
		i += n
		start = i
	}
	if start < len(raw) {
		c.handleData(raw[start:])
	}
}

// parseReference decodes one reference at the start of s (which begins
// with '&'). It returns the substituted text and the number of bytes
// consumed, or ("", 0) when s does not start with a well-formed
// reference.
func parseReference(s string) (string, int) {
	end := strings.IndexByte(s, ';')
	if end < 2 {
		return "", 0
	}
	body := s[1:end]

	if body[0] == '#' {
		return parseCharRef(body[1:], end+1)
	}
	if !isEntityName(body) {
		return "", 0
	}
	if sub, ok := namedEntities[body]; ok {
		return sub, end + 1
	}
	// Unknown named entity: pass it through verbatim.
	return s[:end+1], end + 1
}

// parseCharRef decodes a numeric reference body such as "8217" or
// "x2019". References below 128 become the literal character; known
// high references are substituted from extraChars; everything else is
// re-emitted as a literal numeric-reference string.
func parseCharRef(name string, consumed int) (string, int) {
	digits := name
	base := 10
	if len(digits) > 0 && (digits[0] == 'x' || digits[0] == 'X') {
		digits = digits[1:]
		base = 16
	}
	if digits == "" {
		return "", 0
	}

	n, err := strconv.ParseInt(digits, base, 32)
	switch {
	case err != nil || n < 0 || n > 0x10FFFF:
		return "&#" + name + ";", consumed
	case n < 128:
		return string(rune(n)), consumed
	default:
		if sub, ok := extraChars[int(n)]; ok {
			return sub, consumed
		}
		return "&#" + name + ";", consumed
	}
}

func isEntityName(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
