package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives
	// and shutdown completes. It returns an error if the server could not
	// start or stopped on its own.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
