// Package binder produces method arguments from HTTP requests: string-keyed
// lookups over the request's value regions, string-to-type conversion, and
// the body formatter capability.
//
// # Lookup sources
//
// Each binding source is a Lookup over one region of the request:
//
//	binder.Query()  // URL query parameters
//	binder.Header() // request headers
//	binder.Route()  // route values from the routing engine
//	binder.Cookie() // named cookies
//	binder.Form()   // parsed form fields
//
// Compile pairs a Lookup with a key and a target type into a Step, the
// per-parameter unit the dispatch compiler assembles into binding plans:
//
//	step, err := binder.Compile(binder.Query(), "page", reflect.TypeFor[int]())
//
// An absent key binds the zero value; absence is never an error. Pointer
// parameters therefore bind nil when the key is missing, which lets handlers
// distinguish "not provided" from "provided as zero". Conversion failures
// fail the request they occur on, never the build.
//
// # Conversion
//
// Convert resolves string values in a fixed order: pointer targets allocate
// and convert their element; types whose pointer implements
// encoding.TextUnmarshaler parse themselves (uuid.UUID, time.Time, net.IP);
// remaining types convert by kind with strconv, with time.Duration, slices
// (repeated keys or comma-separated), and forgiving bools ("on", "yes", "1")
// handled as well. Strings apply as-is. Types outside this set are rejected
// by Compile at build time.
//
// # Body formatter
//
// Formatter is the injected body-reading capability. JSON() is the default
// implementation; the dispatch layer resolves an override from the request's
// service scope when one is registered. Formatters expect a ready body and
// rewind seekable bodies before decoding, so two body-bound parameters both
// see the full buffered payload.
package binder
