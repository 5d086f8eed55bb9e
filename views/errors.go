package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/ers-returns/fileupload/handler"
)

// ErrorPage returns the full error page renderer for the error handler.
// The language is read from the request context by t.
func ErrorPage(lang func(context.Context) string, t func(ctx context.Context, key string) string) func(handler.ErrorPageParams) templ.Component {
	return func(p handler.ErrorPageParams) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			title := t(ctx, "error.title")
			return Layout(lang(ctx), title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
				hw := newWriter(ctx, w)
				hw.raw(`<h1 class="heading-large">`)
				hw.text(title)
				hw.raw(`</h1><p class="error-message">`)
				hw.text(p.Error)
				hw.raw("</p>")
				if p.RequestID != "" {
					hw.raw(`<p class="request-id"><small>`)
					hw.text(strconv.Itoa(p.StatusCode) + " " + p.RequestID)
					hw.raw("</small></p>")
				}
				hw.raw("<p><a")
				hw.attr("href", p.RetryURL)
				hw.raw(">")
				hw.text(p.RetryURL)
				hw.raw("</a></p>")
				return hw.err
			})).Render(ctx, w)
		})
	}
}

// ErrorToast renders the toast patched into #toast-container.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.raw("<div")
		hw.attr("class", "toast toast-"+p.Type)
		hw.attr("role", "alert")
		if p.RequestID != "" {
			hw.attr("data-request-id", p.RequestID)
		}
		hw.raw(">")
		hw.text(p.Message)
		hw.raw("</div>")
		return hw.err
	})
}
