// Package server binds the HEFIN HTTP and gRPC listeners, serves them until
// SIGINT, SIGTERM or SIGQUIT arrives and then shuts both down within the
// configured shutdown timeout.
package server
