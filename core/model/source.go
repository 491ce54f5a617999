package model

// Source identifies where a parameter's value comes from at request time.
type Source int

const (
	// SourceNone selects context matching by declared type. Parameters with
	// no recognized context type receive their zero value.
	SourceNone Source = iota

	// SourceQuery looks the value up in the URL query string.
	SourceQuery

	// SourceHeader looks the value up in the request headers.
	SourceHeader

	// SourceRoute looks the value up in the route values extracted by the
	// routing engine.
	SourceRoute

	// SourceCookie looks the value up in the named request cookie.
	SourceCookie

	// SourceForm looks the value up in the parsed form fields.
	SourceForm

	// SourceService resolves the value from the request's service scope by
	// declared type.
	SourceService

	// SourceBody deserializes the value from the request body via the
	// configured formatter.
	SourceBody
)

var sourceNames = [...]string{
	SourceNone:    "none",
	SourceQuery:   "query",
	SourceHeader:  "header",
	SourceRoute:   "route",
	SourceCookie:  "cookie",
	SourceForm:    "form",
	SourceService: "service",
	SourceBody:    "body",
}

// String returns the source name, or "unknown" for out-of-range values.
func (s Source) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return sourceNames[s]
}

// Valid reports whether s is one of the defined sources.
func (s Source) Valid() bool {
	return s >= SourceNone && int(s) < len(sourceNames)
}
