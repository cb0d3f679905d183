// Package assets holds the built-in style fragments and the default
// configuration template, embedded at compile time.
//
// # Layout
//
//	assets/
//	├── config.yaml      # written to the user's config path on first run
//	└── styles/
//	    ├── plain.html   # minimal margins
//	    └── pypi.html    # PyPI-like look (always available)
//
// A style fragment is raw HTML (usually <link> and <style> elements) that is
// spliced into the rendered page right before </head>.
package assets
