// Package http implements the control panel's HTTP front end.
//
// It wires five fixed routes (health, status, accounts, keystroke injection
// and the dashboard page) onto a chi router. Cross-cutting concerns such as
// request tracing, access logging, open CORS and response compression are
// handled here before requests are delegated to the service layer. No route
// is authenticated.
package http
