// Package driving provides interfaces for user-facing adapters
// (primary/inbound ports). The CLI drives the core exclusively through
// these interfaces.
package driving
