package server

// Server defines the common lifecycle contract for the transport servers
// managed by this package.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives and every transport has shut down.
	RunServer() error

	// Shutdown gracefully stops the servers and frees associated resources.
	Shutdown()
}
