package components

import (
	"html"
	"sort"
	"strings"
)

// Attrs are HTML attributes. An empty value renders as a bare boolean attribute.
type Attrs map[string]string

// Tag renders an element with escaped attributes in sorted order. children
// must already be safe markup.
func Tag(name string, attrs Attrs, children ...string) string {
	var b strings.Builder
	openTag(&b, name, attrs)
	for _, child := range children {
		b.WriteString(child)
	}
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
	return b.String()
}

// VoidTag renders an element without content or closing tag.
func VoidTag(name string, attrs Attrs) string {
	var b strings.Builder
	openTag(&b, name, attrs)
	return b.String()
}

// Escape escapes plain text for inclusion as element content.
func Escape(s string) string {
	return html.EscapeString(s)
}

func openTag(b *strings.Builder, name string, attrs Attrs) {
	b.WriteString("<")
	b.WriteString(name)

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		if v := attrs[k]; v != "" {
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(v))
			b.WriteString(`"`)
		}
	}
	b.WriteString(">")
}
