// Package server holds the HTTP server configuration.
//
// While the serve command handles the actual server startup, this package
// defines the configuration structure for server settings such as the listen
// port and the request body size limit.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the serve command to build the Fiber application.
package server
