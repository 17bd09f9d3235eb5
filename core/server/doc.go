// Package server holds the status HTTP server and scheduler configuration.
//
// While the start command handles the server startup, this package defines
// the configuration structure for it: the listen port and the interval at
// which unattended reconciliation runs are started.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the start command to size the scheduler ticker.
package server
