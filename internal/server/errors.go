package server

import "errors"

// errNoServersAreCreated is returned by NewServer when there is no HTTP
// handler or no listen address to serve it on.
var errNoServersAreCreated = errors.New("no HTTP server to run: handler or address is missing")
