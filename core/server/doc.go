// Package server holds the HTTP server configuration.
//
// The `start` command serves the schedule workflows over HTTP; this package defines the port,
// the optional API key and the shutdown bound it uses.
package server
