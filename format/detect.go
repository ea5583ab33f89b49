// Package format provides content-type classification for message parts.
package format

import (
	"mime"
	"strings"
)

// Kind represents a recognized message part content type.
type Kind int

const (
	// Unknown indicates a part the engine does not extract from.
	Unknown Kind = iota
	// PlainText indicates a text/plain part.
	PlainText
	// HTML indicates a text/html part.
	HTML
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case PlainText:
		return "PlainText"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// MediaType returns the canonical media type for the kind.
func (k Kind) MediaType() string {
	switch k {
	case PlainText:
		return "text/plain"
	case HTML:
		return "text/html"
	default:
		return ""
	}
}

// Detect classifies a Content-Type value. Parameters are ignored; an
// empty value defaults to text/plain per the message conventions.
func Detect(contentType string) Kind {
	if strings.TrimSpace(contentType) == "" {
		return PlainText
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		// Malformed headers happen; fall back to a best-effort match on
		// the bare value.
		mediaType = contentType
	}

	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case "text/plain":
		return PlainText
	case "text/html":
		return HTML
	default:
		return Unknown
	}
}
