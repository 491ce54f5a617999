package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Proxy headers in priority order.
var proxyHeaders = [...]string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP extracts the real client IP address from the request. Proxy headers
// are checked in priority order before falling back to RemoteAddr. The raw
// RemoteAddr is returned when no candidate validates.
func GetIP(r *http.Request) string {
	for _, header := range proxyHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}
		// X-Forwarded-For may hold a chain; the leftmost entry is the client.
		if i := strings.IndexByte(value, ','); i >= 0 {
			value = value[:i]
		}
		if ip := normalize(strings.TrimSpace(value)); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := normalize(host); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// normalize validates and canonicalizes an IP string. Unspecified addresses
// (0.0.0.0, ::) are rejected.
func normalize(value string) string {
	ip := net.ParseIP(value)
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
