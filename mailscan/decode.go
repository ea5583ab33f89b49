package mailscan

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// DecodeBytes decodes raw part bytes using the declared charset hint.
// An empty hint defaults to UTF-8.
//
// Decoding never fails outward: when the charset is unknown or the
// bytes do not decode, the result is a placeholder diagnostic string
// embedding the raw bytes and the error, so extraction continues on
// that text instead of dropping the part.
func DecodeBytes(b []byte, charsetHint string) string {
	if charsetHint == "" {
		charsetHint = "utf-8"
	}

	enc, name := charset.Lookup(charsetHint)
	if enc == nil {
		return decodeFailure(b, fmt.Errorf("unknown charset %q", charsetHint))
	}

	if name == "utf-8" {
		if !utf8.Valid(b) {
			return decodeFailure(b, errors.New("invalid UTF-8 data"))
		}
		return string(b)
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), b)
	if err != nil {
		return decodeFailure(b, err)
	}
	return string(decoded)
}

func decodeFailure(b []byte, err error) string {
	return fmt.Sprintf("Unable to decode message:\n%q\n%v", b, err)
}
