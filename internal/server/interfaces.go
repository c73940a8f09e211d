package server

// Server defines the lifecycle contract of the transport servers managed by
// this package.
//
// RunServer blocks until SIGTERM, SIGINT or SIGQUIT is received or a
// transport fails, and then shuts every transport down.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
