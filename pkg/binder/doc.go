// Package binder fills request structs from HTTP requests.
//
// Pages are served to browsers with and without JavaScript, so an event
// endpoint accepts either datastar signals or a plain form post. Each binder
// returns ErrBinderNotApplicable for the other kind of request, which lets
// them be chained:
//
//	handler.Wrap(h, handler.WithBinders[handler.Context, Request](
//	    binder.Signals(),
//	    binder.Form(),
//	))
//
// Form reads `form:"name"` tags; Signals decodes the datastar signals JSON
// into `json` tags.
package binder
