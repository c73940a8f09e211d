// Package server wires and runs the bookmarks transport servers.
//
// It starts the HTTP server (optionally with autocert TLS) and the gRPC
// health server, keeps the health status current and shuts everything down
// gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
