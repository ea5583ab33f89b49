package grammar

import (
	"strings"
	"testing"
)

func testGrammar(t *testing.T) *Grammar {
	t.Helper()
	g, err := New([]string{"com", "org", "edu", "biz", "info"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g
}

func TestFindAllRecognition(t *testing.T) {
	g := testGrammar(t)

	tests := []struct {
		name  string
		input string
		want  []string // expected URLs, in order; nil means no match
	}{
		{"bracketed URL marker", "<URL:http://linuxtoday.com>", []string{"http://linuxtoday.com"}},
		{"angle brackets only", "<http://linuxtoday.com>", []string{"http://linuxtoday.com"}},
		{"plain scheme URL", "http://linuxtoday.com", []string{"http://linuxtoday.com"}},
		{"https", "https://example.org/a/b?q=1", []string{"https://example.org/a/b?q=1"}},
		{"ftp", "ftp://ftp.example.org/pub", []string{"ftp://ftp.example.org/pub"}},
		{"guessed URL", "example.biz", []string{"example.biz"}},
		{"guessed multi-label", "master.wizard.edu", []string{"master.wizard.edu"}},
		{"consecutive dots", "blah..org", nil},
		{"unknown TLD", "blah.baz.obviouslynotarealdomain", nil},
		{"trailing period excluded", "see http://example.com/page.", []string{"http://example.com/page"}},
		{"unicode path", "http://github.com/firecat53/ürlscan", []string{"http://github.com/firecat53/ürlscan"}},
		{"no url", "nothing to see here", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := g.FindAll(tt.input)
			if len(matches) != len(tt.want) {
				t.Fatalf("FindAll(%q) returned %d matches, want %d: %v", tt.input, len(matches), len(tt.want), matches)
			}
			for i, m := range matches {
				if m.URL != tt.want[i] {
					t.Errorf("match %d = %q, want %q", i, m.URL, tt.want[i])
				}
			}
		})
	}
}

func TestFindAllEmail(t *testing.T) {
	g := testGrammar(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare address", "write to user@example.com thanks", "mailto:user@example.com"},
		{"mailto prefixed", "mailto:user@example.com", "mailto:user@example.com"},
		{"dotted local part", "first.last@sub.example.org", "mailto:first.last@sub.example.org"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := g.FindAll(tt.input)
			if len(matches) != 1 {
				t.Fatalf("FindAll(%q) returned %d matches, want 1", tt.input, len(matches))
			}
			if matches[0].URL != tt.want {
				t.Errorf("URL = %q, want %q", matches[0].URL, tt.want)
			}
		})
	}
}

func TestFindAllOffsets(t *testing.T) {
	g := testGrammar(t)

	s := "before <URL:http://linuxtoday.com>"
	matches := g.FindAll(s)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	m := matches[0]
	if s[m.Start:m.End] != "<URL:http://linuxtoday.com>" {
		t.Errorf("match span = %q, want full bracketed token", s[m.Start:m.End])
	}
	if m.URL != "http://linuxtoday.com" {
		t.Errorf("URL = %q, want brackets stripped", m.URL)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("New(nil) should fail")
	}
	if _, err := New([]string{"xn--p1ai"}); err == nil {
		t.Error("New with only IDN markers should fail")
	}
	if _, err := New([]string{"not a tld"}); err == nil {
		t.Error("New with malformed entry should fail")
	}

	g, err := New([]string{" COM ", "xn--p1ai", "", "org"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	got := g.TLDs()
	want := []string{"com", "org"}
	if len(got) != len(want) {
		t.Fatalf("TLDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TLDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseTLDs(t *testing.T) {
	input := "# Version 1, header line\nCOM\nORG\nXN--P1AI\n\nBIZ\n"
	tlds, err := ParseTLDs(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTLDs() error: %v", err)
	}
	want := []string{"com", "org", "biz"}
	if len(tlds) != len(want) {
		t.Fatalf("ParseTLDs() = %v, want %v", tlds, want)
	}
	for i := range want {
		if tlds[i] != want[i] {
			t.Errorf("tlds[%d] = %q, want %q", i, tlds[i], want[i])
		}
	}
}

func TestDefault(t *testing.T) {
	g := Default()
	if g == nil {
		t.Fatal("Default() returned nil")
	}
	if g != Default() {
		t.Error("Default() should return the same grammar on every call")
	}

	if got := g.FindAll("linuxtoday.com"); len(got) != 1 {
		t.Errorf("embedded TLD list should recognize .com, got %v", got)
	}
	if got := g.FindAll("testurl.smile.smile"); len(got) != 1 {
		t.Errorf("embedded TLD list should recognize .smile, got %v", got)
	}
}
