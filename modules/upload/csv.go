package upload

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ers-returns/fileupload/handler"
	"github.com/ers-returns/fileupload/modules"
	"github.com/ers-returns/fileupload/pkg/binder"
	"github.com/ers-returns/fileupload/pkg/declared"
	"github.com/ers-returns/fileupload/pkg/fileselect"
	"github.com/ers-returns/fileupload/pkg/formstate"
	"github.com/ers-returns/fileupload/pkg/i18n"
	"github.com/ers-returns/fileupload/pkg/validator"
	"github.com/ers-returns/fileupload/views"
)

const (
	csvDeclarePath  = modules.CSVPath + "/declare"
	csvClearPath    = csvDeclarePath + "/clear"
	csvValidatePath = modules.CSVPath + "/validate"
)

// CSVService serves the declaration page and the multi-file CSV upload page.
type CSVService struct {
	limits       fileselect.Config
	store        declared.Store
	sessions     *Sessions
	validator    *fileselect.Validator
	tr           *i18n.Translator
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewCSVService(
	limits fileselect.Config,
	store declared.Store,
	sessions *Sessions,
	v *fileselect.Validator,
	tr *i18n.Translator,
	errorHandler handler.ErrorHandler[handler.Context],
) *CSVService {
	return &CSVService{
		limits:       limits,
		store:        store,
		sessions:     sessions,
		validator:    v,
		tr:           tr,
		errorHandler: errorHandler,
	}
}

func (s *CSVService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Get("/declare", handler.Wrap(s.declarePage,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Post("/declare", handler.Wrap(s.declare,
		handler.WithBinders[handler.Context, DeclareRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, DeclareRequest](s.errorHandler),
	))
	r.Post("/declare/clear", handler.Wrap(s.clearDeclaration,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Post("/validate", handler.Wrap(s.validate,
		handler.WithBinders[handler.Context, ValidateRequest](binder.Signals(), binder.Form()),
		handler.WithErrorHandler[handler.Context, ValidateRequest](s.errorHandler),
	))

	return r
}

// declaration loads the files declared in the session of ctx.
// ErrNotDeclared is returned for new sessions.
func (s *CSVService) declaration(ctx handler.Context, sessionID string) (declared.Declaration, error) {
	d, err := s.store.Declared(ctx, sessionID)
	if err != nil && !errors.Is(err, declared.ErrNotDeclared) {
		return d, errors.Join(handler.ErrServiceUnavailable, err)
	}
	return d, err
}

func (s *CSVService) uploadPage(ctx handler.Context, d declared.Declaration, state formstate.State, ie string) views.UploadPage {
	inputs := make([]views.UploadInput, len(d.Files))
	for i, name := range d.Files {
		inputs[i] = views.UploadInput{ID: views.CSVInputID(i + 1), Expected: name}
	}
	return views.UploadPage{
		Lang:   i18n.GetLocale(ctx),
		T:      translate(ctx, s.tr),
		Flow:   fileselect.FlowCSV,
		Action: csvValidatePath,
		IE:     ie,
		Inputs: inputs,
		State:  state,
	}
}

func (s *CSVService) page(ctx handler.Context, _ struct{}) handler.Response {
	sessionID := s.sessions.Ensure(ctx.ResponseWriter(), ctx.Request())
	d, err := s.declaration(ctx, sessionID)
	if errors.Is(err, declared.ErrNotDeclared) {
		return handler.Redirect(csvDeclarePath)
	}
	if err != nil {
		return handler.Error(err)
	}

	p := s.uploadPage(ctx, d, formstate.Clean(), legacyIndicator(ctx.Request().UserAgent()))
	return handler.Templ(views.UploadPageView(p))
}

func (s *CSVService) validate(ctx handler.Context, req ValidateRequest) handler.Response {
	sessionID, ok := s.sessions.Lookup(ctx.Request())
	if !ok {
		return handler.Redirect(csvDeclarePath)
	}
	d, err := s.declaration(ctx, sessionID)
	if errors.Is(err, declared.ErrNotDeclared) {
		return handler.Redirect(csvDeclarePath)
	}
	if err != nil {
		return handler.Error(err)
	}

	p := s.uploadPage(ctx, d, formstate.Clean(), req.IE)
	ext, inputs := req.selection(handler.IsDataStar(ctx.Request()), p.InputIDs())
	batch := s.validator.ValidateBatch(ctx, fileselect.CSVFlow(s.limits, d.Files), ext, inputs)
	p.State = formstate.FromBatch(batch)

	return handler.StreamStatus(pageStatus(p.State), views.UploadPageView(p), patchUploadForm(p))
}

// DeclareRequest is the posted declaration form.
type DeclareRequest struct {
	Scheme string   `form:"scheme"`
	Files  []string `form:"files"`
}

func (s *CSVService) declarePage(ctx handler.Context, _ struct{}) handler.Response {
	p := views.DeclarePage{
		Lang:        i18n.GetLocale(ctx),
		T:           translate(ctx, s.tr),
		Action:      csvDeclarePath,
		ClearAction: csvClearPath,
	}
	if sessionID, ok := s.sessions.Lookup(ctx.Request()); ok {
		d, err := s.declaration(ctx, sessionID)
		if err != nil && !errors.Is(err, declared.ErrNotDeclared) {
			return handler.Error(err)
		}
		p.Scheme, p.Selected = string(d.Scheme), d.Files
	}
	return handler.Templ(views.DeclarePageView(p))
}

func (s *CSVService) declare(ctx handler.Context, req DeclareRequest) handler.Response {
	d, err := declared.NewDeclaration(req.Scheme, req.Files)
	if err != nil {
		if !validator.IsValidationError(err) {
			return handler.Error(err)
		}
		t := translate(ctx, s.tr)
		msgs := declarationErrors(t, validator.ExtractValidationErrors(err))
		return handler.TemplStatus(http.StatusUnprocessableEntity, views.DeclarePageView(views.DeclarePage{
			Lang:     i18n.GetLocale(ctx),
			T:        t,
			Action:   csvDeclarePath,
			Scheme:   req.Scheme,
			Selected: req.Files,
			Errors:   msgs,
		}))
	}

	sessionID := s.sessions.Ensure(ctx.ResponseWriter(), ctx.Request())
	if err := s.store.Declare(ctx, sessionID, d); err != nil {
		return handler.Error(errors.Join(handler.ErrServiceUnavailable, err))
	}
	return handler.Redirect(modules.CSVPath)
}

// clearDeclaration forgets the declared files and ends the session.
func (s *CSVService) clearDeclaration(ctx handler.Context, _ struct{}) handler.Response {
	if sessionID, ok := s.sessions.Lookup(ctx.Request()); ok {
		if err := s.store.Clear(ctx, sessionID); err != nil {
			return handler.Error(errors.Join(handler.ErrServiceUnavailable, err))
		}
	}
	s.sessions.End(ctx.ResponseWriter())
	return handler.Redirect(csvDeclarePath)
}

// declarationErrors maps declaration rule failures to one message per field.
func declarationErrors(t views.Translate, verrs validator.ValidationErrors) map[string]string {
	msgs := make(map[string]string, 2)
	for _, e := range verrs {
		if _, set := msgs[e.Field]; set {
			continue
		}
		switch {
		case e.Field == "scheme":
			msgs[e.Field] = t("upload.declare.scheme_required")
		case e.TranslationKey == "validation.required":
			msgs[e.Field] = t("upload.declare.none_selected")
		default:
			msgs[e.Field] = t("upload.declare.invalid_file")
		}
	}
	return msgs
}
