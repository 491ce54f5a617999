// Package model defines the declarative handler model consumed by the
// dispatch compiler. A Handler groups Methods sharing a declaring type and an
// optional constructor; each Method carries a routing template, metadata, and
// Params describing where every argument comes from at request time.
//
// The model is pure data. It performs no I/O and holds no request state;
// building one is cheap and the same model can be compiled any number of
// times.
//
// # Describing a handler
//
//	users := model.Handler{
//		Type:        reflect.TypeOf(UserHandler{}),
//		Constructor: NewUserHandler,
//		Methods: []model.Method{
//			{
//				Name:  "Get",
//				Func:  (*UserHandler).Get,
//				Route: "GET /users/{id}",
//				Params: []model.Param{
//					{Name: "id", Source: model.SourceRoute},
//				},
//			},
//		},
//	}
//
// # Binding sources
//
// Each parameter names one Source: query, header, route, cookie, or form
// values are looked up by key and converted to the declared type; service
// parameters are resolved from the request's service scope; body parameters
// are deserialized by the configured formatter. SourceNone selects context
// matching by declared type and falls back to the zero value.
//
// # Validation
//
// Validate catches structural defects (non-func values, missing names,
// unknown sources). Signature-level checks are performed by the compiler;
// in both cases a malformed model fails the whole build before any endpoint
// is produced.
package model
