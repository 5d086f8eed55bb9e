package upload

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ers-returns/fileupload/handler"
	"github.com/ers-returns/fileupload/modules"
	"github.com/ers-returns/fileupload/pkg/binder"
	"github.com/ers-returns/fileupload/pkg/fileselect"
	"github.com/ers-returns/fileupload/pkg/formstate"
	"github.com/ers-returns/fileupload/pkg/i18n"
	"github.com/ers-returns/fileupload/views"
)

const odsValidatePath = modules.ODSPath + "/validate"

// ODSService serves the single-file ODS upload page.
type ODSService struct {
	limits       fileselect.Config
	validator    *fileselect.Validator
	tr           *i18n.Translator
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewODSService(
	limits fileselect.Config,
	v *fileselect.Validator,
	tr *i18n.Translator,
	errorHandler handler.ErrorHandler[handler.Context],
) *ODSService {
	return &ODSService{limits: limits, validator: v, tr: tr, errorHandler: errorHandler}
}

func (s *ODSService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Post("/validate", handler.Wrap(s.validate,
		handler.WithBinders[handler.Context, ValidateRequest](binder.Signals(), binder.Form()),
		handler.WithErrorHandler[handler.Context, ValidateRequest](s.errorHandler),
	))

	return r
}

func (s *ODSService) uploadPage(ctx handler.Context, ie string) views.UploadPage {
	return views.UploadPage{
		Lang:   i18n.GetLocale(ctx),
		T:      translate(ctx, s.tr),
		Flow:   fileselect.FlowODS,
		Action: odsValidatePath,
		IE:     ie,
		Inputs: []views.UploadInput{{ID: views.ODSInputID}},
		State:  formstate.Clean(),
	}
}

func (s *ODSService) page(ctx handler.Context, _ struct{}) handler.Response {
	p := s.uploadPage(ctx, legacyIndicator(ctx.Request().UserAgent()))
	return handler.Templ(views.UploadPageView(p))
}

func (s *ODSService) validate(ctx handler.Context, req ValidateRequest) handler.Response {
	p := s.uploadPage(ctx, req.IE)
	ext, inputs := req.selection(handler.IsDataStar(ctx.Request()), p.InputIDs())
	batch := s.validator.ValidateBatch(ctx, fileselect.ODSFlow(s.limits), ext, inputs)
	p.State = formstate.FromBatch(batch)
	if r, ok := batch.Result(views.ODSInputID); ok {
		p.FileName = r.File.Name
	}

	return handler.StreamStatus(pageStatus(p.State), views.UploadPageView(p), patchUploadForm(p))
}
