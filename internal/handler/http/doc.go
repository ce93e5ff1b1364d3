// Package http implements the HTTP transport layer of the HEFIN server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API and the static site. Cross-cutting concerns such as CORS, panic
// recovery, authentication, request tracing, access logging, metrics, rate
// limiting, response compression, and integrity checks are handled in this
// package before requests are delegated to the service layer.
//
// Every API response is a JSON envelope with a "success" flag.
package http
