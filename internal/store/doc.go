// Package store keeps a durable history of fluidcss generation runs.
//
// Each time the CLI emits a stylesheet it can record a run: the UUIDv7
// run id, the canonical hash and raw YAML of the scale definition, and
// the CSS that was produced. The history answers two questions design
// tooling keeps asking: "what configuration produced the tokens
// currently in the repo?" and "did this config change actually change
// the output?".
//
// Storage is a single SQLite file opened in WAL mode with a
// single-writer connection pool. Writes are idempotent: re-recording a
// run id is a no-op. The computation packages never import this one;
// persistence is strictly a CLI concern.
package store
