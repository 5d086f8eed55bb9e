// Package upload serves the CSV and ODS upload pages and validates file
// selections as the user makes them.
//
// Each change event posts the names, sizes and path values of the page's
// file inputs. The response removes any previous error banner and then
// applies the new form state: banner, submit control, validation summary,
// alert markers and focus. Plain form posts get the whole page back with
// the same state.
package upload

import (
	"context"
	"net/http"
	"slices"
	"strconv"

	"github.com/ers-returns/fileupload/handler"
	"github.com/ers-returns/fileupload/pkg/fileselect"
	"github.com/ers-returns/fileupload/pkg/formstate"
	"github.com/ers-returns/fileupload/pkg/i18n"
	"github.com/ers-returns/fileupload/pkg/useragent"
	"github.com/ers-returns/fileupload/views"
)

// ValidateRequest is a change event from an upload page.
type ValidateRequest struct {
	IE     string             `json:"ie" form:"-"`
	Inputs []fileselect.Input `json:"inputs" form:"-"`
	// Plain form posts carry the input ids and path values in page order.
	InputIDs []string `json:"-" form:"input"`
	Paths    []string `json:"-" form:"path"`
}

// selection returns the extractor for req and its inputs limited to the
// ids the page rendered. Plain posts only carry path values.
func (req ValidateRequest) selection(datastar bool, known []string) (fileselect.Extractor, []fileselect.Input) {
	if !datastar {
		inputs := make([]fileselect.Input, 0, len(req.InputIDs))
		for i, id := range req.InputIDs {
			in := fileselect.Input{ID: id}
			if i < len(req.Paths) {
				in.Path = req.Paths[i]
			}
			inputs = append(inputs, in)
		}
		return fileselect.LegacyExtractor, onlyKnown(inputs, known)
	}
	ext := fileselect.ExtractorFor(fileselect.CapabilityFromIndicator(req.IE))
	return ext, onlyKnown(req.Inputs, known)
}

func onlyKnown(inputs []fileselect.Input, known []string) []fileselect.Input {
	seen := make(map[string]bool, len(inputs))
	out := make([]fileselect.Input, 0, len(inputs))
	for _, in := range inputs {
		if seen[in.ID] || !slices.Contains(known, in.ID) {
			continue
		}
		seen[in.ID] = true
		out = append(out, in)
	}
	return out
}

// legacyIndicator returns the major version of an Internet Explorer older
// than 10, or "" for every other browser.
func legacyIndicator(userAgent string) string {
	b, err := useragent.Parse(userAgent)
	if err != nil || !b.IsLegacyIE() {
		return ""
	}
	return strconv.Itoa(b.Major())
}

func translate(ctx context.Context, tr *i18n.Translator) views.Translate {
	return func(key string, args ...string) string {
		return tr.Tc(ctx, key, args...)
	}
}

func pageStatus(s formstate.State) int {
	if s.Banner != nil {
		return http.StatusUnprocessableEntity
	}
	return http.StatusOK
}

// patchUploadForm writes the mutations of p.State. The previous banner is
// always removed first so at most one exists afterwards.
func patchUploadForm(p views.UploadPage) handler.SSEHandler {
	return func(stream handler.StreamContext) error {
		if err := stream.Remove("#" + formstate.BannerID); err != nil {
			return err
		}
		if err := stream.SendSignals(views.UploadSignals(p.State, p.InputIDs())); err != nil {
			return err
		}
		patches := []handler.TemplPatch{handler.Patch(views.SummaryLink(p.State))}
		if p.Flow == fileselect.FlowODS {
			patches = append(patches, handler.Patch(views.FileHeader(p.T, p.Action, p.FileName)))
		}
		if b := p.State.Banner; b != nil {
			patches = append(patches, handler.Patch(views.Banner(*b),
				handler.WithTarget("#"+views.WrapperID(b.InputID)),
				handler.WithPatchMode(handler.PatchBefore),
			))
		}
		if err := stream.SendMultiple(patches...); err != nil {
			return err
		}
		if p.State.Focus != "" {
			return stream.Focus(p.State.Focus)
		}
		return nil
	}
}
