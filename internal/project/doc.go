// Package project runs the full scaffold of a new Express project:
// validating the answers, creating the root directory, installing
// dependencies, patching package.json, emitting templates, and optionally
// creating the React client.
package project
