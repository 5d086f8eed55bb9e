package views

import (
	"context"
	"io"
	"slices"

	"github.com/a-h/templ"

	"github.com/ers-returns/fileupload/pkg/declared"
)

// DeclarePage is the data of the "which files do you need to upload" page.
type DeclarePage struct {
	Lang   string
	T      Translate
	Action string
	// ClearAction, when set, adds a form that forgets a saved declaration.
	ClearAction string
	Scheme      string
	Selected    []string
	// Errors maps form fields to translated messages.
	Errors map[string]string
}

func fieldError(hw *htmlWriter, msg string) {
	if msg == "" {
		return
	}
	hw.raw(`<p class="error-notification">`)
	hw.text(msg)
	hw.raw("</p>")
}

// DeclarePageView renders the scheme and file selection form.
func DeclarePageView(p DeclarePage) templ.Component {
	title := p.T("upload.declare.title")
	return Layout(p.Lang, title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.raw(`<h1 class="heading-large">`)
		hw.text(title)
		hw.raw("</h1><form")
		hw.attr("id", "declare-form")
		hw.attr("method", "post")
		hw.attr("action", p.Action)
		hw.signals(map[string]any{"scheme": p.Scheme})
		hw.raw(">")

		hw.raw(`<fieldset class="form-group scheme-group"><legend>`)
		hw.text(p.T("upload.declare.scheme"))
		hw.raw("</legend>")
		fieldError(hw, p.Errors["scheme"])
		for _, s := range declared.Schemes {
			id := "scheme-" + string(s)
			hw.raw(`<label class="block-label"`)
			hw.attr("for", id)
			hw.raw(`><input type="radio" name="scheme" data-bind-scheme`)
			hw.attr("id", id)
			hw.attr("value", string(s))
			hw.flag("checked", p.Scheme == string(s))
			hw.raw(">")
			hw.text(string(s))
			hw.raw("</label>")
		}
		hw.raw("</fieldset>")

		fieldError(hw, p.Errors["files"])
		for _, s := range declared.Schemes {
			hw.raw(`<fieldset class="form-group files-group"`)
			hw.attr("id", "files-"+string(s))
			hw.attr("data-show", "$scheme == '"+string(s)+"'")
			hw.hidden(p.Scheme != "" && p.Scheme != string(s))
			hw.raw("><legend>")
			hw.text(string(s))
			hw.raw("</legend>")
			for _, name := range s.Files() {
				hw.raw(`<label class="block-label"><input type="checkbox" name="files"`)
				hw.attr("value", name)
				hw.flag("checked", p.Scheme == string(s) && slices.Contains(p.Selected, name))
				hw.raw(">")
				hw.text(name)
				hw.raw("</label>")
			}
			hw.raw("</fieldset>")
		}

		hw.raw(`<button type="submit" class="button">`)
		hw.text(p.T("upload.declare.continue"))
		hw.raw("</button></form>")

		if p.ClearAction != "" && len(p.Selected) > 0 {
			hw.raw(`<form id="clear-form" method="post"`)
			hw.attr("action", p.ClearAction)
			hw.raw(`><button type="submit" class="button-secondary">`)
			hw.text(p.T("upload.declare.clear"))
			hw.raw("</button></form>")
		}
		return hw.err
	}))
}
