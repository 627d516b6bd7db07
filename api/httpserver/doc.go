// Package httpserver provides the base HTTP server shared by the OTPNet
// service binaries.
//
// It wraps a chi router with standard middleware (request ID, real IP,
// panic recovery, structured request logging), health and drain endpoints
// for load-balancer coordination, an optional pprof surface, an optional
// CORS policy for browser demos, and a side-channel metrics listener.
// Components plug their routes in through the RouteRegistrar interface.
package httpserver
