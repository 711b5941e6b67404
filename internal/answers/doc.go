// Package answers collects the project name and feature toggles that drive a
// scaffold run. Questions are asked in a fixed order; each may carry a
// default, a visibility predicate over earlier answers, and a validator.
// Answers can also come from defaults (--yes) or a YAML answers file.
package answers
