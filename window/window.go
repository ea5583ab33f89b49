// Package window selects contextual regions around matching units in an
// ordered sequence.
//
// The extractor is generic over the unit type: it works the same whether
// the units are tokenized lines of a plain-text message or paragraphs of
// an HTML message. Callers supply a predicate identifying the units
// worth showing; the extractor returns contiguous runs of units around
// each match, with nearby runs coalesced so windows never overlap.
package window

// Window is a contiguous run of units selected for display.
//
// UsedFirst is true when the window starts at the first unit of the
// document, UsedLast when it reaches the final unit; consumers are
// expected to render a truncation marker (such as an ellipsis) at each
// edge where the flag is false.
type Window[T any] struct {
	Units     []T
	UsedFirst bool
	UsedLast  bool
}

// Config controls how much context is kept around each match.
type Config struct {
	// Before is the number of non-matching units retained ahead of a
	// match.
	Before int
	// After is the number of non-matching units retained following a
	// match.
	After int
}

// DefaultConfig returns one unit of context on each side.
func DefaultConfig() Config {
	return Config{Before: 1, After: 1}
}

// Extract scans units in a single forward pass and returns the windows
// around each unit satisfying match, in document order. Overlapping
// regions are merged into a single window. A sequence with no matching
// unit yields no windows.
func Extract[T any](units []T, match func(T) bool, cfg Config) []Window[T] {
	before := cfg.Before
	if before < 0 {
		before = 0
	}
	after := cfg.After
	if after < 0 {
		after = 0
	}

	var windows []Window[T]

	start := 0
	length := 0
	for start < len(units) {
		// Accumulate up to before units of read-ahead while looking for
		// the next match.
		for start+length < len(units) && length < before && !match(units[start+length]) {
			length++
		}

		// Slide until the trailing edge is a match.
		for start+length < len(units) && !match(units[start+length]) {
			start++
		}

		// No further match anywhere.
		if start+length == len(units) {
			break
		}

		// Extend repeatedly while the trailing edge keeps matching.
		for start+length < len(units) && match(units[start+length]) {
			// Absorb the trailing context, and any further match that
			// appears within it.
			extend := 1
			for extend < after+1 && start+length+extend < len(units) && !match(units[start+length+extend]) {
				extend++
			}
			length += extend

			if before > 0 && start+length < len(units) && !match(units[start+length]) {
				// The trailing context is exhausted without another
				// match. Look ahead up to before more units: if a match
				// appears, keep the lead-up as the next match's leading
				// context; otherwise discard the read-ahead.
				extend = 1
				for extend < before && start+length+extend < len(units) && !match(units[start+length+extend]) {
					extend++
				}
				if start+length+extend < len(units) && match(units[start+length+extend]) {
					length += extend
				}
			}
		}

		if length > 0 && start+length <= len(units) {
			windows = append(windows, Window[T]{
				Units:     units[start : start+length],
				UsedFirst: start == 0,
				UsedLast:  start+length == len(units),
			})
		}

		start += length
		length = 0
	}

	return windows
}
