// Package handler wraps typed request handlers into http.HandlerFunc values
// and renders their responses for both plain requests and datastar requests.
//
// A handler binds the request into a struct, runs, and returns a Response:
//
//	func (h *Handler) residence(ctx handler.Context, req ResidenceRequest) handler.Response {
//		return handler.Stream(views.CompanyPage(page), func(stream handler.StreamContext) error {
//			return stream.SendComponent(views.Sections(page))
//		})
//	}
//
//	r.Post("/company/residence", handler.Wrap(h.residence,
//		handler.WithBinders[handler.Context, ResidenceRequest](binder.Signals(), binder.Form()),
//		handler.WithErrorHandler[handler.Context, ResidenceRequest](errorHandler),
//	))
//
// Responses adapt to the request. Templ renders HTML for plain requests and a
// single element patch for datastar requests. Stream renders the full page for
// plain requests and runs an SSEHandler that writes any number of patches,
// removals, signal updates and focus moves for datastar requests.
//
// Errors returned by binders and renderers go to the ErrorHandler.
// NewErrorHandler classifies HTTPError and ValidationError values, logs them
// with the request id, and renders an error page or a toast patch.
package handler
