package model

// Style identifies how a chunk's text should be rendered. Composite
// styles append a colon-separated, alphabetically sorted modifier list
// to a base style, e.g. "msgtext:bolditalic" or "anchor:bold".
type Style string

const (
	// StyleDefault is unadorned message text.
	StyleDefault Style = "msgtext"
	// StyleAnchor is text inside a hyperlink.
	StyleAnchor Style = "anchor"
)

// Markup is styled display text.
type Markup struct {
	Style Style
	Text  string
}

// Chunk is the atomic unit of extracted content: a piece of (possibly
// styled) text that may or may not be linked to a URL.
//
// Markup may be nil only when URL is set, indicating a bare link with no
// display text of its own. URL is empty for plain narrative text.
type Chunk struct {
	Markup *Markup
	URL    string
}

// Text returns a chunk of plain narrative text with the default style.
func Text(s string) Chunk {
	return Chunk{Markup: &Markup{Style: StyleDefault, Text: s}}
}

// Link returns a bare link chunk with no display text.
func Link(url string) Chunk {
	return Chunk{URL: url}
}

// IsLink reports whether the chunk is associated with a URL.
func (c Chunk) IsLink() bool {
	return c.URL != ""
}

// DisplayText returns the chunk's markup text, or "" for a bare link.
func (c Chunk) DisplayText() string {
	if c.Markup == nil {
		return ""
	}
	return c.Markup.Text
}

// Paragraph is an ordered sequence of chunks representing one rendering
// unit: a logical HTML paragraph, list item or heading.
type Paragraph []Chunk

// Line is one tokenized line of a plain-text message. It has the same
// representation as a Paragraph.
type Line = Paragraph

// HasLink reports whether any chunk in the paragraph links to a URL.
func (p Paragraph) HasLink() bool {
	for _, c := range p {
		if c.IsLink() {
			return true
		}
	}
	return false
}

// PlainText returns the concatenated display text of the paragraph,
// substituting placeholder for the display text of each bare link. With
// an empty placeholder it reconstructs the visible layout of the
// original text.
func (p Paragraph) PlainText(placeholder string) string {
	var out []byte
	for _, c := range p {
		if c.Markup != nil {
			out = append(out, c.Markup.Text...)
		} else {
			out = append(out, placeholder...)
		}
	}
	return string(out)
}
