// Package response provides the response actions the dispatch pipeline
// emits: JSON and plain-text constructors, empty-status responses, a
// structured HTTPError type, error handlers, and decorators.
//
// Every constructor returns a handler.Response, the deferred action the
// result normalizer either produces itself (serialized values, 404s) or
// receives directly from handler methods:
//
//	func (h ReportHandler) Download(id string) handler.Response {
//		return response.WithHeaders(
//			response.JSON(h.store.Report(id)),
//			map[string]string{"X-Report-Id": id},
//		)
//	}
//
// # Errors
//
// HTTPError carries a status, a machine-readable code, a message, and
// optional details, and serializes cleanly as JSON. Predefined values cover
// the common 4xx/5xx statuses:
//
//	return response.Error(response.ErrNotFound.WithMessage("unknown report"))
//
// ErrorHandler and JSONErrorHandler convert arbitrary errors at the
// transport edge: HTTPError values pass through, errors implementing
// StatusCode() int map to their status, anything else becomes a 500 with
// the original error recorded as cause. JSONErrorHandler is the dispatch
// default.
//
// # Decorators
//
// WithHeaders, WithCookie, and WithCache wrap an existing Response without
// executing it, applying their headers before the wrapped action renders.
package response
