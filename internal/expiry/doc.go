// Package expiry resolves the next applicable expiry date for an index.
//
// Resolution filters a symbol master to one index's option rows, parses their
// DD-MMM-YYYY expiry strings in the exchange timezone, and picks the minimum
// date on or after the reference day. The dispatcher then applies the
// same-day policy: a selection only ships when its expiry is the run date,
// unless the force switch is on.
package expiry
