// Package flow reads and writes camflow project documents: YAML files
// whose top level maps section identifiers to named entity descriptions.
// A Flow wraps a types.Registry and offers Parse, Dump, and Validate over
// it. Parsing isolates per-item failures; validation is fail-fast and
// meant to gate actions such as export.
package flow
