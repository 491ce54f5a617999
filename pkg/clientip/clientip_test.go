package clientip_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/dispatchkit/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "direct connection",
			remoteAddr: "203.0.113.5:51234",
			want:       "203.0.113.5",
		},
		{
			name:       "cloudflare header wins",
			remoteAddr: "10.0.0.1:443",
			headers: map[string]string{
				"CF-Connecting-IP": "198.51.100.7",
				"X-Forwarded-For":  "192.0.2.44",
			},
			want: "198.51.100.7",
		},
		{
			name:       "digitalocean header",
			remoteAddr: "10.0.0.1:443",
			headers:    map[string]string{"DO-Connecting-IP": "198.51.100.9"},
			want:       "198.51.100.9",
		},
		{
			name:       "forwarded chain uses leftmost",
			remoteAddr: "10.0.0.1:443",
			headers:    map[string]string{"X-Forwarded-For": "192.0.2.44, 10.0.0.2, 10.0.0.3"},
			want:       "192.0.2.44",
		},
		{
			name:       "forwarded chain with spaces",
			remoteAddr: "10.0.0.1:443",
			headers:    map[string]string{"X-Forwarded-For": " 192.0.2.44 , 10.0.0.2"},
			want:       "192.0.2.44",
		},
		{
			name:       "x-real-ip fallback",
			remoteAddr: "10.0.0.1:443",
			headers:    map[string]string{"X-Real-IP": "192.0.2.99"},
			want:       "192.0.2.99",
		},
		{
			name:       "invalid header falls through to remote addr",
			remoteAddr: "203.0.113.5:51234",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip"},
			want:       "203.0.113.5",
		},
		{
			name:       "unspecified address rejected",
			remoteAddr: "203.0.113.5:51234",
			headers:    map[string]string{"X-Real-IP": "0.0.0.0"},
			want:       "203.0.113.5",
		},
		{
			name:       "ipv6 client",
			remoteAddr: "[2001:db8::1]:51234",
			want:       "2001:db8::1",
		},
		{
			name:       "ipv6 in forwarded header",
			remoteAddr: "10.0.0.1:443",
			headers:    map[string]string{"X-Forwarded-For": "2001:db8::2"},
			want:       "2001:db8::2",
		},
		{
			name:       "unparsable remote addr returned raw",
			remoteAddr: "pipe",
			want:       "pipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, clientip.GetIP(r))
		})
	}
}
