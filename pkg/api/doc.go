// Package api implements the mock cloud-platform management API.
//
// The package serves a fixed set of HTTP routes (deployments, organizations,
// account, API keys) with deterministic canned responses shaped like the
// real service's, so client integrations can be tested without a live
// backend. Handlers are stateless and pure given their input, clock, and
// randomness source: nothing is provisioned, persisted, or authenticated,
// and no state survives a request.
package api
