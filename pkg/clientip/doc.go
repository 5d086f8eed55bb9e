// Package clientip resolves the address of the browser behind the proxies
// in front of the service and attaches it to request contexts and log records.
//
// Forwarding headers are read in the order True-Client-IP, X-Forwarded-For
// (first valid entry), X-Real-IP, then RemoteAddr. Invalid values are skipped.
//
//	r.Use(clientip.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
