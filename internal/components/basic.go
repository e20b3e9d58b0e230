package components

// Text renders a run of text in a configurable tag.
type Text struct{}

var textTags = map[string]struct{}{"p": {}, "span": {}, "h1": {}, "h2": {}, "h3": {}, "h4": {}, "blockquote": {}}

func (Text) Render(ctx RenderContext, el Element) string {
	tag := el.Props.String("tag", "p")
	if _, ok := textTags[tag]; !ok {
		tag = "p"
	}
	return Tag(tag, baseAttrs(ctx, el), Escape(el.Props.String("content", "")))
}

// Button renders a visual button.
type Button struct{}

func (Button) Render(ctx RenderContext, el Element) string {
	attrs := baseAttrs(ctx, el)
	attrs["class"] += " " + ctx.ClassFor(el.Type) + "-" + el.Props.String("variant", "default")
	if size := el.Props.String("size", ""); size != "" && size != "middle" {
		attrs["class"] += " " + ctx.ClassFor(el.Type) + "-" + size
	}
	attrs["type"] = el.Props.String("htmlType", "button")
	if el.Props.Bool("disabled", false) {
		attrs["disabled"] = ""
	}
	return Tag("button", attrs, Escape(el.Props.String("text", "")))
}

// Image renders an img element.
type Image struct{}

func (Image) Render(ctx RenderContext, el Element) string {
	attrs := baseAttrs(ctx, el)
	attrs["src"] = el.Props.String("src", "")
	attrs["alt"] = el.Props.String("alt", "")
	if fit := el.Props.String("fit", ""); fit != "" {
		if style, ok := attrs["style"]; ok {
			attrs["style"] = style + ";object-fit:" + fit
		} else {
			attrs["style"] = "object-fit:" + fit
		}
	}
	return VoidTag("img", attrs)
}

// Link renders an anchor.
type Link struct{}

func (Link) Render(ctx RenderContext, el Element) string {
	attrs := baseAttrs(ctx, el)
	attrs["href"] = el.Props.String("href", "#")
	if target := el.Props.String("target", "_self"); target != "_self" {
		attrs["target"] = target
		if target == "_blank" {
			attrs["rel"] = "noopener noreferrer"
		}
	}
	return Tag("a", attrs, Escape(el.Props.String("text", "")))
}

// Divider renders a horizontal or vertical rule.
type Divider struct{}

func (Divider) Render(ctx RenderContext, el Element) string {
	attrs := baseAttrs(ctx, el)
	attrs["class"] += " " + ctx.ClassFor(el.Type) + "-" + el.Props.String("orientation", "horizontal")
	if el.Props.Bool("dashed", false) {
		attrs["class"] += " " + ctx.ClassFor(el.Type) + "-dashed"
	}
	return VoidTag("hr", attrs)
}
