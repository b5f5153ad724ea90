// Package environment names the deployment environment (development,
// staging, production) and carries it through request contexts.
//
// Parse accepts the long names and the usual short aliases (dev, stage,
// prod); anything else is development. Middleware stores the environment in
// the request context so handlers can decide, for example, whether internal
// error details may be shown.
package environment
