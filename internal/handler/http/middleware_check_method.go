// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path matches but the method does not. The API
// instead treats an unregistered method like an unknown path and answers
// 404 with {"error":"Endpoint not found"}. If the method turns out to be
// registered for the exact pattern, the request is handed back to the router.
//
// Only exact pattern matches are considered; parameterised segments are not
// expanded. Routes mounted under a sub-router are found through their
// sub-routes.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		route, ok := findRoute(router.Routes(), "", r.URL.Path)
		if !ok {
			endpointNotFound(w, r)
			return
		}

		if _, ok := route.Handlers[r.Method]; !ok {
			endpointNotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func findRoute(routes []chi.Route, prefix, path string) (chi.Route, bool) {
	for _, route := range routes {
		pattern := prefix + trimWildcard(route.Pattern)
		if route.SubRoutes != nil {
			if found, ok := findRoute(route.SubRoutes.Routes(), pattern, path); ok {
				return found, true
			}
			continue
		}
		if pattern == path {
			return route, true
		}
	}
	return chi.Route{}, false
}

// trimWildcard strips the "/*" chi appends to mounted sub-router patterns.
func trimWildcard(pattern string) string {
	if len(pattern) >= 2 && pattern[len(pattern)-2:] == "/*" {
		return pattern[:len(pattern)-2]
	}
	return pattern
}
