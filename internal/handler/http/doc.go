// Package http implements the REST transport of the bookmarks server.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, bearer-token authorization, panic recovery and response
// compression are applied to every request before it is delegated to the
// service layer. All error bodies are JSON.
package http
