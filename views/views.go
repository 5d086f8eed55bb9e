// Package views renders the upload and company pages as templ components.
//
// Components are plain templ.ComponentFunc values so they can be patched
// into a page through datastar or rendered as a whole document.
package views

import (
	"context"
	"encoding/json"
	"io"

	"github.com/a-h/templ"
)

// Translate resolves a message key in the language of the current request.
type Translate func(key string, args ...string) string

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// htmlWriter keeps the first write error so components read top to bottom.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (hw *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if hw.err != nil {
			return
		}
		_, hw.err = io.WriteString(hw.w, s)
	}
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) attr(name, value string) {
	hw.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (hw *htmlWriter) flag(name string, on bool) {
	if on {
		hw.raw(" ", name)
	}
}

// hidden writes an inline display:none for elements toggled by data-show.
func (hw *htmlWriter) hidden(hide bool) {
	if hide {
		hw.attr("style", "display: none")
	}
}

func (hw *htmlWriter) signals(v map[string]any) {
	data, err := json.Marshal(v)
	if err != nil {
		if hw.err == nil {
			hw.err = err
		}
		return
	}
	hw.attr("data-signals", string(data))
}

func (hw *htmlWriter) component(c templ.Component) {
	if hw.err == nil {
		hw.err = c.Render(hw.ctx, hw.w)
	}
}

// Layout wraps body in the service page shell.
func Layout(lang, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.raw("<!DOCTYPE html>\n<html")
		hw.attr("lang", lang)
		hw.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		hw.text(title)
		hw.raw(`</title><script type="module"`)
		hw.attr("src", datastarScript)
		hw.raw(`></script></head><body><div id="toast-container" aria-live="polite"></div><main id="content">`)
		hw.component(body)
		hw.raw("</main></body></html>")
		return hw.err
	})
}
