// Package manifest reads, patches, and rewrites package.json manifests.
//
// The document is kept as an ordered object so that fields written by npm,
// and fields the scaffolder does not manage, survive a round trip with
// their original order. Managed fields are validated against the embedded
// package schema from the schema package.
package manifest
