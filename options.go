package urlscan

import "github.com/firecat53/urlscan/window"

// extractOptions holds the per-scan configuration. Negative context
// counts are clamped to zero by the window package.
type extractOptions struct {
	before int
	after  int
}

func defaultOptions() extractOptions {
	return extractOptions{before: 1, after: 1}
}

func (o extractOptions) config() window.Config {
	return window.Config{Before: o.before, After: o.after}
}
