package components

import (
	"fmt"
	"strconv"
)

// Form wraps form controls.
type Form struct{}

func (Form) Render(ctx RenderContext, el Element) string {
	attrs := baseAttrs(ctx, el)
	attrs["class"] += " " + ctx.ClassFor(el.Type) + "-" + el.Props.String("layout", "vertical")
	if action := el.Props.String("action", ""); action != "" {
		attrs["action"] = action
	}
	attrs["method"] = el.Props.String("method", "post")
	return Tag("form", attrs, el.Children...)
}

// Input renders a labelled single-line input.
type Input struct{}

func (Input) Render(ctx RenderContext, el Element) string {
	input := Attrs{
		"type": el.Props.String("inputType", "text"),
		"name": el.Props.String("name", el.ID),
	}
	if placeholder := el.Props.String("placeholder", ""); placeholder != "" {
		input["placeholder"] = placeholder
	}
	if el.Props.Bool("required", false) {
		input["required"] = ""
	}
	if el.Props.Bool("disabled", false) {
		input["disabled"] = ""
	}
	return labelled(ctx, el, VoidTag("input", input))
}

// Textarea renders a labelled multi-line input.
type Textarea struct{}

func (Textarea) Render(ctx RenderContext, el Element) string {
	area := Attrs{
		"name": el.Props.String("name", el.ID),
		"rows": strconv.Itoa(el.Props.Int("rows", 4)),
	}
	if placeholder := el.Props.String("placeholder", ""); placeholder != "" {
		area["placeholder"] = placeholder
	}
	if el.Props.Bool("required", false) {
		area["required"] = ""
	}
	return labelled(ctx, el, Tag("textarea", area))
}

// Select renders a labelled drop-down. Options are strings or
// {label, value} maps.
type Select struct{}

func (Select) Render(ctx RenderContext, el Element) string {
	var options []string
	if placeholder := el.Props.String("placeholder", ""); placeholder != "" {
		options = append(options, Tag("option", Attrs{"disabled": "", "selected": ""}, Escape(placeholder)))
	}
	for _, raw := range el.Props.List("options") {
		value, label := optionParts(raw)
		options = append(options, Tag("option", Attrs{"value": value}, Escape(label)))
	}

	sel := Attrs{"name": el.Props.String("name", el.ID)}
	if el.Props.Bool("multiple", false) {
		sel["multiple"] = ""
	}
	return labelled(ctx, el, Tag("select", sel, options...))
}

func optionParts(raw any) (value, label string) {
	switch opt := raw.(type) {
	case string:
		return opt, opt
	case map[string]any:
		value = fmt.Sprint(opt["value"])
		label = value
		if l, ok := opt["label"].(string); ok {
			label = l
		}
		return value, label
	default:
		s := fmt.Sprint(opt)
		return s, s
	}
}

// Checkbox renders a checkbox with an inline label.
type Checkbox struct{}

func (Checkbox) Render(ctx RenderContext, el Element) string {
	box := Attrs{"type": "checkbox", "name": el.Props.String("name", el.ID)}
	if el.Props.Bool("checked", false) {
		box["checked"] = ""
	}
	if el.Props.Bool("disabled", false) {
		box["disabled"] = ""
	}
	return Tag("label", baseAttrs(ctx, el), VoidTag("input", box), Escape(el.Props.String("label", "")))
}

func labelled(ctx RenderContext, el Element, control string) string {
	label := el.Props.String("label", "")
	if label == "" {
		return Tag("div", baseAttrs(ctx, el), control)
	}
	return Tag("div", baseAttrs(ctx, el),
		Tag("label", Attrs{"class": ctx.ClassFor(el.Type) + "-label"}, Escape(label)),
		control,
	)
}
