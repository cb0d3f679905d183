package pipeline

import "strings"

// HeadClose is the marker a style fragment is spliced in front of.
const HeadClose = "</head>"

// StyleInjector defines the contract for style injection into HTML.
type StyleInjector interface {
	InjectStyle(htmlContent, fragment string) string
}

// HeadInjection splices style fragments before the closing head tag.
type HeadInjection struct{}

// InjectStyle implements StyleInjector with ApplyStyle.
func (HeadInjection) InjectStyle(htmlContent, fragment string) string {
	return ApplyStyle(htmlContent, fragment)
}

// ApplyStyle inserts fragment immediately before the first literal "</head>".
// Without that marker the HTML is returned unchanged. The fragment is raw
// HTML and is not escaped.
func ApplyStyle(htmlContent, fragment string) string {
	idx := strings.Index(htmlContent, HeadClose)
	if idx < 0 {
		return htmlContent
	}
	return htmlContent[:idx] + fragment + htmlContent[idx:]
}
