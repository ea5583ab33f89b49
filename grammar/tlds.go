package grammar

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	_ "embed"
)

//go:embed assets/tlds-alpha-by-domain.txt
var defaultTLDData string

// ParseTLDs reads a newline-delimited TLD list in the IANA file format:
// the first line is a header comment and is skipped, lines containing
// "--" (Punycode/IDN markers) are excluded, and all entries are
// lower-cased.
func ParseTLDs(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	var tlds []string
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if first {
			first = false
			continue
		}
		if line == "" || strings.Contains(line, "--") {
			continue
		}
		tlds = append(tlds, strings.ToLower(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grammar: reading TLD list: %w", err)
	}
	return tlds, nil
}

// Load parses a TLD list from r and compiles a grammar from it.
func Load(r io.Reader) (*Grammar, error) {
	tlds, err := ParseTLDs(r)
	if err != nil {
		return nil, err
	}
	return New(tlds)
}

var (
	defaultOnce    sync.Once
	defaultGrammar *Grammar
)

// Default returns the grammar compiled from the embedded IANA TLD list.
// It is built on first use and shared for the remainder of the process;
// the result is safe for concurrent use.
func Default() *Grammar {
	defaultOnce.Do(func() {
		g, err := Load(strings.NewReader(defaultTLDData))
		if err != nil {
			// The embedded list is part of the build; failing to
			// compile it is a programming error.
			panic(fmt.Sprintf("grammar: compiling embedded TLD list: %v", err))
		}
		defaultGrammar = g
	})
	return defaultGrammar
}
