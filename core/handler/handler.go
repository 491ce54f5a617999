package handler

import "net/http"

// Response is a deferred response-writing action. Handler methods may return
// one directly to take full control of status, headers, and body; the result
// normalizer invokes it with the request context instead of serializing it.
// Rendering errors are routed to the endpoint's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error
