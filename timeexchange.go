// Package timeexchange holds the copy of the Time Exchange landing page and
// the rules for choosing which language a visitor sees.
package timeexchange

const Version = "v0.1.0"

// Name is used for telemetry, metrics namespaces and the CLI.
const Name = "timeexchange"
