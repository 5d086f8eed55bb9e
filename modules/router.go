// Package modules mounts the page modules of the service.
package modules

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mountable is a module serving its routes below a mount path.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions lists the modules to mount. Nil modules are skipped.
type RouterOptions struct {
	CSV     Mountable
	ODS     Mountable
	Company Mountable
}

// Router mounts the configured modules.
//
//	r.Mount("/", modules.Router(modules.RouterOptions{
//		CSV:     upload.NewCSVService(deps),
//		ODS:     upload.NewODSService(deps),
//		Company: company.NewService(tr, errorHandler),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	if opts.CSV != nil {
		r.Mount(CSVPath, opts.CSV.Handle())
	}
	if opts.ODS != nil {
		r.Mount(ODSPath, opts.ODS.Handle())
	}
	if opts.Company != nil {
		r.Mount(CompanyPath, opts.Company.Handle())
	}
	return r
}

const (
	CSVPath     = "/csv"
	ODSPath     = "/ods"
	CompanyPath = "/company"
)
