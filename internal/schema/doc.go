// Package schema validates documents against the JSON Schemas embedded in
// the binary: the answers file accepted by "expressgen create --answers"
// and the subset of package.json fields the scaffolder manages.
package schema
