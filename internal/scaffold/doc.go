// Package scaffold generates the files of a new Express project from
// embedded templates. It powers "expressgen create": Plan turns a set of
// answers into a deterministic list of artifacts, and Generate renders and
// writes them under the project root.
package scaffold
