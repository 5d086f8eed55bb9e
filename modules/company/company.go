// Package company serves the company details page and toggles its UK and
// overseas sections as the user picks where the company is registered.
package company

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ers-returns/fileupload/handler"
	"github.com/ers-returns/fileupload/modules"
	"github.com/ers-returns/fileupload/pkg/binder"
	"github.com/ers-returns/fileupload/pkg/i18n"
	"github.com/ers-returns/fileupload/pkg/residence"
	"github.com/ers-returns/fileupload/views"
)

const residencePath = modules.CompanyPath + "/residence"

type Service struct {
	tr           *i18n.Translator
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewService(tr *i18n.Translator, errorHandler handler.ErrorHandler[handler.Context]) *Service {
	return &Service{tr: tr, errorHandler: errorHandler}
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithBinders[handler.Context, PageRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, PageRequest](s.errorHandler),
	))
	r.Post("/residence", handler.Wrap(s.residence,
		handler.WithBinders[handler.Context, ResidenceRequest](binder.Signals(), binder.Form()),
		handler.WithErrorHandler[handler.Context, ResidenceRequest](s.errorHandler),
	))

	return r
}

// PageRequest prefills the form, for example when returning from a later page.
type PageRequest struct {
	Country  string `query:"country"`
	Postcode string `query:"postcode"`
}

// ResidenceRequest is a click on one of the residence radios.
type ResidenceRequest struct {
	// Choice is the clicked radio value.
	Choice string `json:"choice" form:"residence"`
	// State is the residence before the click.
	State    string `json:"residence" form:"state"`
	Country  string `json:"country" form:"country"`
	Postcode string `json:"postcode" form:"postcode"`
}

func (s *Service) companyPage(ctx handler.Context, t *residence.Toggler) views.CompanyPage {
	return views.CompanyPage{
		Lang: i18n.GetLocale(ctx),
		T: func(key string, args ...string) string {
			return s.tr.Tc(ctx, key, args...)
		},
		Action:    residencePath,
		Residence: t,
	}
}

func (s *Service) page(ctx handler.Context, req PageRequest) handler.Response {
	t, err := residence.New(ctx, residence.Form{Country: req.Country, Postcode: req.Postcode})
	if err != nil {
		return handler.Error(err)
	}
	return handler.Templ(views.CompanyPageView(s.companyPage(ctx, t)))
}

func (s *Service) residence(ctx handler.Context, req ResidenceRequest) handler.Response {
	ev, err := residence.ParseChoice(req.Choice)
	if err != nil {
		verr := handler.NewValidationError()
		verr.Add("residence", "company.choose_residence")
		return handler.Error(errors.Join(verr, err))
	}

	t := residence.Restore(residence.ParseState(req.State), residence.Form{Country: req.Country, Postcode: req.Postcode})
	if err := t.Click(ctx, ev); err != nil {
		if errors.Is(err, residence.ErrImpossibleClick) {
			err = errors.Join(handler.ErrBadRequest, err)
		}
		return handler.Error(err)
	}

	return handler.Stream(views.CompanyPageView(s.companyPage(ctx, t)), func(stream handler.StreamContext) error {
		return stream.SendSignals(views.ResidenceSignals(t))
	})
}
