// Package site serves the landing page and the written report files.
package site

import (
	"context"
	"net/http"
)

// Register attaches the site routes to mux.
// Routes:
//
//	GET /          -> Embedded landing page
//	GET /reports/  -> Files under reportDir
//
// An empty reportDir leaves /reports/ unregistered.
func Register(_ context.Context, mux *http.ServeMux, reportDir string) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.Handle("GET /{$}", http.FileServer(FS()))

	if reportDir != "" {
		mux.Handle("GET /reports/", http.StripPrefix("/reports/", http.FileServer(http.Dir(reportDir))))
	}
}
