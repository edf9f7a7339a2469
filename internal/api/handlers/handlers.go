// Package handlers maps the farmdesk HTTP API onto the domain services.
// Every handler depends on a small interface declared next to it, so tests
// can substitute fakes and the services stay free of HTTP concerns.
package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"farmdesk/internal/farm"
)

// pathParam returns the unescaped URL parameter. Field names contain spaces,
// so clients send them percent-encoded.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// queryFilter reads a list filter; "All" and blanks mean no filter.
func queryFilter(r *http.Request, name string) string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == farm.FilterAll {
		return ""
	}
	return v
}
