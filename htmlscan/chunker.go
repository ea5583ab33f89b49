// Package htmlscan tokenizes HTML message bodies into paragraphs of
// link and non-link chunks.
//
// The chunker consumes the event stream of the golang.org/x/net/html
// tokenizer and tracks nested anchors, text styles and list numbering.
// It is permissive by construction: unknown tags and attributes are
// silently ignored and unbalanced end tags never underflow the state
// stacks, so pathological input degrades the chunking but never fails.
package htmlscan

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/firecat53/urlscan/model"
	"github.com/firecat53/urlscan/window"
)

// tagStyles maps style tags to the modifier they contribute. Heading
// tags contribute "bold" as well.
var tagStyles = map[string]string{"b": "bold", "i": "italic"}

// bulletGlyphs cycle by unordered-list nesting depth.
var bulletGlyphs = [...]string{"*", "+", "-"}

type listEntry struct {
	kind    string // "ul" or "ol"
	counter int    // next ordinal, "ol" only
}

// Chunker is a stateful HTML tokenizer that emits paragraphs of chunks.
// A Chunker is good for a single Parse call.
type Chunker struct {
	paragraphs []model.Paragraph

	// atParaStart means the next chunk starts a new paragraph;
	// trailingSpace means it is joined to the current paragraph with an
	// inserted space. Deferring boundary whitespace this way keeps it
	// from leaking into adjacent anchors.
	atParaStart   bool
	trailingSpace bool

	anchorStack []string // open hyperlink targets; "" sentinel at the bottom
	styleStack  [][]string
	listStack   []listEntry
}

// NewChunker returns a chunker ready to consume one document.
func NewChunker() *Chunker {
	return &Chunker{
		atParaStart: true,
		anchorStack: []string{""},
		styleStack:  [][]string{nil},
	}
}

// Parse consumes HTML from r until the event stream ends and returns
// the accumulated paragraphs in document order. Malformed input is
// chunked on a best-effort basis; Parse never fails.
func (c *Chunker) Parse(r io.Reader) []model.Paragraph {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or an unreadable stream; either way this document
			// is done.
			return c.paragraphs
		case html.StartTagToken:
			t := z.Token()
			c.handleStartTag(t.Data, t.Attr)
		case html.SelfClosingTagToken:
			t := z.Token()
			c.handleSelfClosingTag(t.Data, t.Attr)
		case html.EndTagToken:
			name, _ := z.TagName()
			c.handleEndTag(string(name))
		case html.TextToken:
			// Raw bytes, so the reference substitution tables below see
			// the original entities rather than x/net's expansion.
			c.handleRawText(string(z.Raw()))
		}
	}
}

// Extract tokenizes an HTML body and returns the context windows around
// every paragraph that links somewhere. A body without links yields no
// windows.
func Extract(body string, cfg window.Config) []window.Window[model.Paragraph] {
	paragraphs := NewChunker().Parse(strings.NewReader(body))
	return window.Extract(paragraphs, model.Paragraph.HasLink, cfg)
}

func (c *Chunker) curURL() string {
	return c.anchorStack[len(c.anchorStack)-1]
}

// styledChunk builds a chunk of text carrying the current anchor and
// the composed style label.
func (c *Chunker) styledChunk(text string) model.Chunk {
	base := model.StyleDefault
	if c.curURL() != "" {
		base = model.StyleAnchor
	}
	style := base
	if mods := c.styleStack[len(c.styleStack)-1]; len(mods) > 0 {
		style = model.Style(string(base) + ":" + strings.Join(mods, ""))
	}
	return model.Chunk{
		Markup: &model.Markup{Style: style, Text: text},
		URL:    c.curURL(),
	}
}

func (c *Chunker) appendToLast(ch model.Chunk) {
	last := len(c.paragraphs) - 1
	c.paragraphs[last] = append(c.paragraphs[last], ch)
}

func (c *Chunker) addChunk(ch model.Chunk) {
	if c.atParaStart {
		c.paragraphs = append(c.paragraphs, model.Paragraph{})
	} else if c.trailingSpace {
		c.appendToLast(c.styledChunk(" "))
	}
	c.appendToLast(ch)
	c.atParaStart = false
	c.trailingSpace = false
}

// breakParagraph ends the current paragraph without re-emitting list
// indentation.
func (c *Chunker) breakParagraph() {
	if c.atParaStart {
		c.paragraphs = append(c.paragraphs, model.Paragraph{})
	} else {
		c.atParaStart = true
	}
	c.trailingSpace = false
}

// endParagraph ends the current paragraph; inside a list it re-emits
// the enclosing indentation so continuation text stays aligned.
func (c *Chunker) endParagraph() {
	c.breakParagraph()
	if len(c.listStack) > 0 {
		c.addChunk(c.styledChunk(strings.Repeat(" ", 3*len(c.listStack))))
	}
}

// endListParagraph starts a list item: a paragraph break unless already
// at one, then the bullet or ordinal chunk, which shares the current
// anchor if any.
func (c *Chunker) endListParagraph() {
	if len(c.listStack) == 0 {
		c.endParagraph()
		return
	}
	if !c.atParaStart {
		c.breakParagraph()
	}

	top := &c.listStack[len(c.listStack)-1]
	var label string
	if top.kind == "ul" {
		depth := 0
		for _, e := range c.listStack {
			if e.kind == "ul" {
				depth++
			}
		}
		label = bulletGlyphs[depth%len(bulletGlyphs)] + "  "
	} else {
		label = fmt.Sprintf("%2d.", top.counter)
		top.counter++
	}
	c.addChunk(c.styledChunk(label))
}

func (c *Chunker) pushStyle(mod string) {
	top := c.styleStack[len(c.styleStack)-1]
	combined := make([]string, 0, len(top)+1)
	combined = append(combined, top...)
	seen := false
	for _, m := range top {
		if m == mod {
			seen = true
			break
		}
	}
	if !seen {
		combined = append(combined, mod)
		sort.Strings(combined)
	}
	c.styleStack = append(c.styleStack, combined)
}

func (c *Chunker) popStyle() {
	if len(c.styleStack) > 1 {
		c.styleStack = c.styleStack[:len(c.styleStack)-1]
	}
}

// isHeaderTag reports whether tag is h1..h9.
func isHeaderTag(tag string) bool {
	return len(tag) == 2 && tag[0] == 'h' && tag[1] >= '0' && tag[1] <= '9'
}

func findAttr(attrs []html.Attribute, key string) string {
	for _, a := range attrs {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func (c *Chunker) handleStartTag(tag string, attrs []html.Attribute) {
	switch {
	case tag == "a":
		c.anchorStack = append(c.anchorStack, findAttr(attrs, "href"))
	case tag == "ul" || tag == "ol":
		c.listStack = append(c.listStack, listEntry{kind: tag, counter: 1})
		c.endParagraph()
	case tagStyles[tag] != "":
		c.pushStyle(tagStyles[tag])
	case isHeaderTag(tag):
		c.pushStyle("bold")
	case tag == "p" || tag == "br":
		c.endParagraph()
	case tag == "img":
		c.handleImg(attrs)
	case tag == "li":
		c.endListParagraph()
	}
}

// handleSelfClosingTag treats the void forms of p, br, li and img like
// their start tags; any other self-closing tag is ignored.
func (c *Chunker) handleSelfClosingTag(tag string, attrs []html.Attribute) {
	switch tag {
	case "p", "br", "li", "img":
		c.handleStartTag(tag, attrs)
	}
}

func (c *Chunker) handleEndTag(tag string) {
	switch {
	case tag == "a":
		if len(c.anchorStack) > 1 {
			c.anchorStack = c.anchorStack[:len(c.anchorStack)-1]
		}
	case tagStyles[tag] != "":
		c.popStyle()
	case tag == "ul" || tag == "ol":
		if len(c.listStack) > 0 {
			c.listStack = c.listStack[:len(c.listStack)-1]
		}
		c.endParagraph()
	case isHeaderTag(tag):
		c.popStyle()
		c.endParagraph()
	}
}

// handleImg treats an image's alt text as if it were anchored to the
// image source. This is mail, so only external http:// sources count;
// anything else falls back to the alt text alone.
func (c *Chunker) handleImg(attrs []html.Attribute) {
	alt := findAttr(attrs, "alt")
	if alt == "" {
		alt = "[IMG]"
	}
	src := findAttr(attrs, "src")
	if !strings.HasPrefix(src, "http://") {
		src = ""
	}

	if src != "" {
		c.anchorStack = append(c.anchorStack, src)
		c.handleData(alt)
		c.anchorStack = c.anchorStack[:len(c.anchorStack)-1]
	} else {
		c.handleData(alt)
	}
}

// handleData emits one run of character data. Whitespace runs collapse
// to a single space; whitespace at either end is recorded via the
// trailing-space flag instead of being emitted directly.
func (c *Chunker) handleData(data string) {
	futureTrailing := false
	if data != "" {
		if first, _ := utf8.DecodeRuneInString(data); unicode.IsSpace(first) {
			c.trailingSpace = true
		}
		if last, _ := utf8.DecodeLastRuneInString(data); unicode.IsSpace(last) {
			futureTrailing = true
		}
	}

	collapsed := strings.Join(strings.Fields(data), " ")
	c.addChunk(c.styledChunk(collapsed))
	c.trailingSpace = futureTrailing
}
