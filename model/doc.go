// Package model provides the intermediate representation for extracted
// message content.
//
// This package defines the user-facing data structures produced by the
// tokenizers. The atomic unit is the [Chunk], a piece of display text
// that may be linked to a URL. Chunks are grouped into rendering units:
//
//   - [Line] - one line of a plain-text message
//   - [Paragraph] - one logical paragraph, list item or heading of an
//     HTML message
//
// Both are ordered chunk sequences and are interchangeable as far as
// downstream windowing is concerned; Line is an alias of Paragraph.
//
// # Chunks
//
// A chunk carries markup, a URL, or both:
//
//   - Markup set, URL empty: plain narrative text.
//   - Markup nil, URL set: a bare link; consumers are expected to render
//     an auto-numbered footnote for it.
//   - Both set: styled text that links somewhere (anchor text).
//
// Chunks are created during tokenization and are not modified afterward.
package model
