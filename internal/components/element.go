package components

// HTMLElement renders an arbitrary HTML tag. It backs registrations loaded from
// catalog files, which cannot bind Go code.
type HTMLElement struct {
	Tag  string
	Void bool
}

// NewHTMLElement returns a generic component for tag.
func NewHTMLElement(tag string, void bool) HTMLElement {
	if tag == "" {
		tag = "div"
	}
	return HTMLElement{Tag: tag, Void: void}
}

func (h HTMLElement) Render(ctx RenderContext, el Element) string {
	attrs := baseAttrs(ctx, el)
	if title := el.Props.String("title", ""); title != "" {
		attrs["title"] = title
	}
	if h.Void {
		return VoidTag(h.Tag, attrs)
	}
	children := el.Children
	if text := el.Props.String("text", ""); text != "" {
		children = append([]string{Escape(text)}, children...)
	}
	return Tag(h.Tag, attrs, children...)
}
