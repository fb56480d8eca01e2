// Package server runs the transports of the TIN server.
//
// HTTP and gRPC listeners start together with the background workers and
// stop together on SIGINT, SIGTERM or SIGQUIT, or when one of them fails.
package server
