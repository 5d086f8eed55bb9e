package binder

import "net/http"

// Query binds URL query parameters into fields tagged `query:"name"`.
//
//	type PageRequest struct {
//		Country  string `query:"country"`
//		Postcode string `query:"postcode"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
