package services

import (
	"strings"

	"learning-web/internal/core/domain"
)

// Placeholder names the layout document understands
const (
	PlaceholderTitle       = "TITLE"
	PlaceholderSubtitle    = "SUBTITLE"
	PlaceholderContent     = "CONTENT"
	PlaceholderStylesheets = "STYLESHEETS"
	PlaceholderScripts     = "SCRIPTS"
)

// Placeholder wraps a name in the {{NAME}} marker syntax
func Placeholder(name string) string {
	return "{{" + name + "}}"
}

// RenderTemplate replaces every {{KEY}} in tmpl with values[KEY].
// Substitution is a single pass: a value containing another marker is
// emitted verbatim. Markers with no key in values are left untouched.
// Values are injected as raw HTML, callers must only pass trusted content.
func RenderTemplate(tmpl string, values map[string]string) string {
	if len(values) == 0 {
		return tmpl
	}

	pairs := make([]string, 0, len(values)*2)
	for key, value := range values {
		pairs = append(pairs, Placeholder(key), value)
	}

	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// RenderPage composes the shared layout with one page's content fragment.
// Every page placeholder is always supplied, so empty page fields render as "".
func RenderPage(layout, content string, page domain.PageEntry) string {
	return RenderTemplate(layout, map[string]string{
		PlaceholderTitle:       page.Title,
		PlaceholderSubtitle:    page.Subtitle,
		PlaceholderContent:     content,
		PlaceholderStylesheets: page.Stylesheets,
		PlaceholderScripts:     page.Scripts,
	})
}
