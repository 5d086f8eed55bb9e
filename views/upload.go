package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/ers-returns/fileupload/pkg/fileselect"
	"github.com/ers-returns/fileupload/pkg/formstate"
)

const (
	FormID          = "uploadForm"
	UploadButtonID  = "upload-button"
	SummaryLinkID   = "summary-message"
	FileHeaderBarID = "file-header-bar"
	// ODSInputID is the id of the single ODS file input.
	ODSInputID = "file"
)

// UploadInput is one file input of an upload form.
type UploadInput struct {
	ID string
	// Expected is the declared file name the input is meant for, if any.
	Expected string
}

// UploadPage is the data of the CSV and ODS upload pages.
type UploadPage struct {
	Lang   string
	T      Translate
	Flow   string
	Action string
	// IE is the legacy browser version indicator, empty for modern browsers.
	IE     string
	Inputs []UploadInput
	State  formstate.State
	// FileName is the chosen ODS file name shown in the header bar.
	FileName string
}

// WrapperID returns the id of the element wrapping input id. The error
// banner is placed directly before it.
func WrapperID(inputID string) string {
	return inputID + "-wrapper"
}

// CSVInputID returns the id of the n-th CSV input, counting from 1.
func CSVInputID(n int) string {
	return fmt.Sprintf("file_%d", n)
}

// collectInputs reads every file input into the inputs signal before the
// change event is posted. Nothing but names, sizes and path values leaves
// the browser.
const collectInputs = `$inputs = Array.from(document.querySelectorAll('input.files')).map(el => ({` +
	`id: el.id, ` +
	`name: el.files && el.files.length ? el.files[0].name : '', ` +
	`size: el.files && el.files.length ? el.files[0].size : 0, ` +
	`path: el.value}))`

func postChange(action string) string {
	return collectInputs + "; @post('" + action + "')"
}

// UploadSignals returns the client signals mirroring s for the given inputs.
func UploadSignals(s formstate.State, inputIDs []string) map[string]any {
	alerts := make(map[string]any, len(inputIDs))
	for _, id := range inputIDs {
		alerts[id] = s.Marked(id)
	}
	return map[string]any{
		"submitDisabled": s.SubmitDisabled,
		"summaryVisible": s.SummaryVisible,
		"formErrored":    s.FormErrored,
		"alerts":         alerts,
	}
}

// InputIDs returns the ids of p's inputs in page order.
func (p UploadPage) InputIDs() []string {
	ids := make([]string, len(p.Inputs))
	for i, in := range p.Inputs {
		ids[i] = in.ID
	}
	return ids
}

// Banner is the error message placed before the owning input's wrapper.
// The message is trusted translation markup.
func Banner(b formstate.Banner) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.raw("<p")
		hw.attr("id", b.ID)
		hw.raw(` class="field-error clear" tabindex="-1" role="alert" aria-labelledby="error-heading">`, b.Message, "</p>")
		return hw.err
	})
}

// SummaryLink is the link inside the validation summary. Its text mirrors
// the banner message and it points at the owning input.
func SummaryLink(s formstate.State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		href := "#" + FormID
		if s.Banner != nil {
			href = "#" + WrapperID(s.Banner.InputID)
		}
		hw := newWriter(ctx, w)
		hw.raw("<a")
		hw.attr("id", SummaryLinkID)
		hw.attr("href", href)
		hw.raw(">", s.SummaryLink, "</a>")
		return hw.err
	})
}

// FileHeader shows the chosen ODS file name with a link to remove it.
func FileHeader(t Translate, action, fileName string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.raw("<div")
		hw.attr("id", FileHeaderBarID)
		hw.attr("class", "file-header-bar")
		hw.hidden(fileName == "")
		hw.raw(`><span id="file-name">`)
		hw.text(fileName)
		hw.raw(`</span> <a id="remove-file-link" href="#"`)
		hw.attr("data-on-click__prevent", "document.getElementById('"+ODSInputID+"').value = ''; "+postChange(action))
		hw.hidden(fileName == "")
		hw.raw(">")
		hw.text(t("upload.remove_file"))
		hw.raw("</a></div>")
		return hw.err
	})
}

func uploadInput(hw *htmlWriter, p UploadPage, in UploadInput) {
	hw.raw("<div")
	hw.attr("id", WrapperID(in.ID))
	class := "file-wrapper"
	if p.State.Marked(in.ID) {
		class += " fileAlert"
	}
	hw.attr("class", class)
	hw.attr("data-class", "{'fileAlert': $alerts."+in.ID+"}")
	hw.raw(`><input type="hidden" name="input"`)
	hw.attr("value", in.ID)
	hw.raw("><label")
	hw.attr("for", in.ID)
	hw.raw(">")
	if in.Expected != "" {
		hw.text(in.Expected)
	} else {
		hw.text(p.T("upload.choose_file"))
	}
	hw.raw(`</label><input type="file" class="files" name="path"`)
	hw.attr("id", in.ID)
	hw.attr("accept", "."+p.Flow)
	if in.Expected != "" {
		hw.attr("data-file-name", in.Expected)
	}
	hw.attr("data-on-change", postChange(p.Action))
	hw.raw("></div>")
}

// UploadForm renders the upload form with the validation summary.
func UploadForm(p UploadPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s := p.State
		hw := newWriter(ctx, w)

		hw.raw(`<div id="errors" class="validation-summary" tabindex="-1" role="alert" aria-labelledby="error-heading" data-show="$summaryVisible"`)
		hw.hidden(!s.SummaryVisible)
		hw.raw(`><h2 id="error-heading" class="heading-medium">`)
		hw.text(p.T("upload.error_heading"))
		hw.raw(`</h2><ul class="error-summary-list"><li class="validation-summary-message">`)
		hw.component(SummaryLink(s))
		hw.raw("</li></ul></div>")

		hw.raw("<form")
		hw.attr("id", FormID)
		hw.attr("method", "post")
		hw.attr("action", p.Action)
		if s.FormErrored {
			hw.attr("class", "error")
		}
		hw.attr("data-class", "{'error': $formErrored}")
		signals := UploadSignals(s, p.InputIDs())
		signals["ie"] = p.IE
		signals["inputs"] = []fileselect.Input{}
		hw.signals(signals)
		hw.raw(`><div id="file-uploader">`)

		if p.Flow == fileselect.FlowODS {
			hw.raw(`<button type="button" id="choose-file-button" class="button-secondary"`)
			hw.attr("data-on-click", "document.getElementById('"+ODSInputID+"').click()")
			hw.raw(">")
			hw.text(p.T("upload.choose_file"))
			hw.raw("</button>")
			hw.component(FileHeader(p.T, p.Action, p.FileName))
		}

		for _, in := range p.Inputs {
			if s.Banner != nil && s.Banner.InputID == in.ID {
				hw.component(Banner(*s.Banner))
			}
			uploadInput(hw, p, in)
		}

		hw.raw(`<button type="submit" class="button"`)
		hw.attr("id", UploadButtonID)
		hw.attr("data-attr-disabled", "$submitDisabled")
		hw.flag("disabled", s.SubmitDisabled)
		hw.raw(">")
		hw.text(p.T("upload.upload"))
		hw.raw("</button></div></form>")
		return hw.err
	})
}

// UploadPageView renders the whole upload page.
func UploadPageView(p UploadPage) templ.Component {
	title := p.T("upload." + p.Flow + ".title")
	return Layout(p.Lang, title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.raw(`<h1 class="heading-large">`)
		hw.text(title)
		hw.raw("</h1>")
		hw.component(UploadForm(p))
		return hw.err
	}))
}
