// Package stock is the inventory bookkeeping engine behind the konsut CLI.
//
// It keeps a catalog of priced line items in three fixed category buckets
// (products, mobilization, services), merges duplicate adds by name, keeps a
// dollar price in lock-step with the authoritative shilling price through a
// manually set exchange rate, and round-trips the whole catalog through a
// flat CSV table for backup and import.
//
// All state lives on a local key-value medium behind the TextStore adapter.
// Every mutation writes the whole catalog back synchronously, so there is no
// partial-write window to reason about within a single process.
package stock
