// Package dispatch orchestrates the daily jobs.
//
// The Dispatcher implements the same-day policy: an index's selection is
// bundled only when its resolved expiry equals the run date, unless the
// operator force switch is set. Zero bundled files means the delivery
// collaborator is never invoked.
//
// Indices are resolved sequentially in configuration order; the only effect
// of that order is the ordering of files inside the bundle.
package dispatch
